package repository

import (
	"olympus_backend/internal/model"

	"gorm.io/gorm"
)

// ChatRepository stores live class chat messages. Messages are never updated.
type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) WithTx(tx *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: tx}
}

func (r *ChatRepository) Create(msg *model.ChatMessage) error {
	return r.DB.Create(msg).Error
}

// FindByID loads a message together with its sender.
func (r *ChatRepository) FindByID(id uint) (*model.ChatMessage, error) {
	var msg model.ChatMessage
	err := r.DB.Preload("User").First(&msg, id).Error
	return &msg, err
}

// FindByClass returns the whole log of a class in display order.
func (r *ChatRepository) FindByClass(classID uint) ([]model.ChatMessage, error) {
	msgs := []model.ChatMessage{}
	err := r.DB.Preload("User").
		Where("live_class_id = ?", classID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// FindRecent returns the newest messages across all classes, newest first.
func (r *ChatRepository) FindRecent(limit int) ([]model.ChatMessage, error) {
	msgs := []model.ChatMessage{}
	err := r.DB.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
