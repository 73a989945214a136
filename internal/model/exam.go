package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model Exam
type Exam struct {
	BaseModel
	CourseID        *uint      `gorm:"index" json:"course_id"`
	Title           string     `gorm:"size:200;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	DurationMinutes int        `gorm:"default:90" json:"duration_minutes"`
	TotalQuestions  int        `gorm:"default:0" json:"total_questions"`
	PassingScore    int        `gorm:"default:60" json:"passing_score"`
	ScheduledDate   *time.Time `gorm:"index" json:"scheduled_date"`
	IsPublished     bool       `gorm:"index;default:false" json:"is_published"`
}

func (Exam) TableName() string {
	return "exams"
}

func (e *Exam) BeforeSave(tx *gorm.DB) error {
	e.ScheduledDate = utc(e.ScheduledDate)
	return nil
}

// IsUpcoming reports whether the exam is listed as upcoming at the given instant.
func (e *Exam) IsUpcoming(now time.Time) bool {
	return e.IsPublished && e.ScheduledDate != nil && e.ScheduledDate.After(now)
}
