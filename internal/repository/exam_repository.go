package repository

import (
	"olympus_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) WithTx(tx *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: tx}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

// FindUpcoming returns published exams scheduled strictly after now, soonest first.
func (r *ExamRepository) FindUpcoming(now time.Time) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Where("is_published = ? AND scheduled_date > ?", true, now.UTC()).
		Order("scheduled_date ASC").
		Find(&exams).Error
	return exams, err
}

func (r *ExamRepository) FindByIDs(ids []uint) ([]model.Exam, error) {
	exams := []model.Exam{}
	if len(ids) == 0 {
		return exams, nil
	}
	err := r.DB.Where("id IN ?", ids).Order("id ASC").Find(&exams).Error
	return exams, err
}
