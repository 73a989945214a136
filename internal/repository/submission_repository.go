package repository

import (
	"olympus_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) WithTx(tx *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: tx}
}

func (r *SubmissionRepository) Create(s *model.Submission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindByUser(userID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("user_id = ?", userID).Order("submitted_at ASC, id ASC").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindRecentByUser(userID uint, limit int) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) ExamIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Submission{}).
		Where("user_id = ?", userID).
		Distinct("exam_id").
		Pluck("exam_id", &ids).Error
	return ids, err
}

// ScoreTotals holds the raw aggregates behind a user's average score.
type ScoreTotals struct {
	Count int64
	Sum   int64
}

func (r *SubmissionRepository) ScoreTotalsByUser(userID uint) (ScoreTotals, error) {
	var totals ScoreTotals
	err := r.DB.Model(&model.Submission{}).
		Select("COUNT(*) AS count, COALESCE(SUM(score), 0) AS sum").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return totals, err
}
