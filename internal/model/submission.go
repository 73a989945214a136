package model

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is one recorded attempt of a user at an exam.
// Nothing stops a user from submitting the same exam twice.
// swagger:model Submission
type Submission struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	ExamID           uint           `gorm:"index;not null" json:"exam_id"`
	User             *User          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Exam             *Exam          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Score            int            `gorm:"default:0" json:"score"`
	TotalScore       int            `gorm:"default:100" json:"total_score"`
	Answers          datatypes.JSON `json:"answers,omitempty"`
	SubmittedAt      time.Time      `gorm:"index" json:"submitted_at"`
	TimeTakenMinutes *int           `json:"time_taken_minutes,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
