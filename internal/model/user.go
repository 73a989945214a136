package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// IsStaff reports whether the role may use the teacher panel.
func (r UserRole) IsStaff() bool {
	return r == Teacher || r == Admin
}

// swagger:model User
type User struct {
	BaseModel
	Email        string     `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Nickname     *string    `gorm:"size:50" json:"nickname,omitempty"`
	MobileNumber string     `gorm:"size:20" json:"mobile_number"`
	ClassLevel   string     `gorm:"size:20" json:"class_level"`
	SchoolName   string     `gorm:"size:200" json:"school_name"`
	Role         UserRole   `gorm:"size:20;index;default:'student'" json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the minimal projection of a User held for the length of a session.
type Identity struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
