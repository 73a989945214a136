package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model LiveClass
type LiveClass struct {
	BaseModel
	Title          string     `gorm:"size:200;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	InstructorID   *uint      `gorm:"index" json:"instructor_id,omitempty"`
	Instructor     *User      `gorm:"foreignKey:InstructorID" json:"-"`
	ChannelName    string     `gorm:"size:100;uniqueIndex;not null" json:"channel_name"`
	ScheduledStart *time.Time `gorm:"index" json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	ActualEnd      *time.Time `json:"actual_end,omitempty"`
	RecordingURL   string     `gorm:"size:500" json:"recording_url,omitempty"`
	IsLive         bool       `gorm:"index;default:false" json:"is_live"`
}

func (LiveClass) TableName() string {
	return "live_classes"
}

func (c *LiveClass) BeforeSave(tx *gorm.DB) error {
	c.ScheduledStart = utc(c.ScheduledStart)
	c.ScheduledEnd = utc(c.ScheduledEnd)
	c.ActualStart = utc(c.ActualStart)
	c.ActualEnd = utc(c.ActualEnd)
	return nil
}

// LiveClassView is what clients see of a class; the instructor is resolved by name.
type LiveClassView struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Instructor     *string    `json:"instructor"`
	ChannelName    string     `json:"channel_name"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	IsLive         bool       `json:"is_live"`
}

func (c *LiveClass) View() LiveClassView {
	v := LiveClassView{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		ChannelName:    c.ChannelName,
		ScheduledStart: c.ScheduledStart,
		IsLive:         c.IsLive,
	}
	if c.Instructor != nil {
		name := c.Instructor.Name
		v.Instructor = &name
	}
	return v
}
