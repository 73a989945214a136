package repository

import (
	"olympus_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) WithTx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: tx}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// List returns courses in insertion order.
func (r *CourseRepository) List(publishedOnly bool) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Model(&model.Course{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("id ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountPublished() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

func (r *CourseRepository) UpdateImage(id uint, url string) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Update("image_url", url).Error
}

// DeleteAll removes every course. Exams survive, detached from their course,
// so recorded submissions keep pointing at a real exam.
func (r *CourseRepository) DeleteAll() error {
	if err := r.DB.Model(&model.Exam{}).
		Where("course_id IS NOT NULL").
		Update("course_id", nil).Error; err != nil {
		return err
	}
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Course{}).Error
}
