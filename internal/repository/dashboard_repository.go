package repository

import (
	"olympus_backend/internal/model"

	"gorm.io/gorm"
)

// PlatformCounts are the aggregate numbers shown on the teacher panel.
type PlatformCounts struct {
	TotalStudents  int64 `json:"total_students"`
	TotalCourses   int64 `json:"total_courses"`
	TotalQuestions int64 `json:"total_questions"`
	ActiveClasses  int64 `json:"active_classes"`
}

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// PlatformCounts is recomputed on every call.
func (r *DashboardRepository) PlatformCounts() (PlatformCounts, error) {
	var counts PlatformCounts

	if err := r.DB.Model(&model.User{}).Where("role = ?", model.Student).Count(&counts.TotalStudents).Error; err != nil {
		return counts, err
	}
	if err := r.DB.Model(&model.Course{}).Count(&counts.TotalCourses).Error; err != nil {
		return counts, err
	}
	if err := r.DB.Model(&model.Question{}).Count(&counts.TotalQuestions).Error; err != nil {
		return counts, err
	}
	if err := r.DB.Model(&model.LiveClass{}).Where("is_live = ?", true).Count(&counts.ActiveClasses).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
