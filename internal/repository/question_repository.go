package repository

import (
	"olympus_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionFilter struct {
	Topic      string
	Difficulty string
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) WithTx(tx *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: tx}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) ExistsByTitleAndSource(title, source string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).
		Where("title = ? AND source = ?", title, source).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) filtered(f QuestionFilter) *gorm.DB {
	query := r.DB.Model(&model.Question{})
	if f.Topic != "" {
		query = query.Where("topic = ?", f.Topic)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	return query
}

// List returns newest first. limit <= 0 returns every match.
func (r *QuestionRepository) List(f QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64

	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.filtered(f).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) DistinctTopics() ([]string, error) {
	var topics []string
	err := r.DB.Model(&model.Question{}).
		Distinct("topic").
		Order("topic ASC").
		Pluck("topic", &topics).Error
	return topics, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}
