package model

import "time"

// ChatMessage is an append-only entry of a live class chat.
type ChatMessage struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	LiveClassID *uint      `gorm:"index:idx_chat_class_created" json:"live_class_id"`
	LiveClass   *LiveClass `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time  `gorm:"index:idx_chat_class_created" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatMessageView is the wire projection of a message; sender name and role
// are read from the users table at query time.
type ChatMessageView struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (m *ChatMessage) View() ChatMessageView {
	v := ChatMessageView{
		ID:      m.ID,
		User:    "Unknown",
		Role:    string(Student),
		Message: m.Message,
	}
	if m.User != nil {
		v.User = m.User.Name
		v.Role = string(m.User.Role)
	}
	if !m.CreatedAt.IsZero() {
		v.Timestamp = m.CreatedAt.Format("15:04")
	}
	return v
}
