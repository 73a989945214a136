package repository

import (
	"errors"
	"olympus_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LiveClassRepository struct {
	DB *gorm.DB
}

func NewLiveClassRepository(db *gorm.DB) *LiveClassRepository {
	return &LiveClassRepository{DB: db}
}

func (r *LiveClassRepository) WithTx(tx *gorm.DB) *LiveClassRepository {
	return &LiveClassRepository{DB: tx}
}

func (r *LiveClassRepository) Create(class *model.LiveClass) error {
	return r.DB.Create(class).Error
}

func (r *LiveClassRepository) Save(class *model.LiveClass) error {
	return r.DB.Omit(clause.Associations).Save(class).Error
}

func (r *LiveClassRepository) FindByID(id uint) (*model.LiveClass, error) {
	var class model.LiveClass
	err := r.DB.Preload("Instructor").First(&class, id).Error
	return &class, err
}

func (r *LiveClassRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LiveClass{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LiveClassRepository) ExistsByChannel(channel string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LiveClass{}).Where("channel_name = ?", channel).Count(&count).Error
	return count > 0, err
}

// FindLive returns the live class with the lowest id, or nil when none is live.
func (r *LiveClassRepository) FindLive() (*model.LiveClass, error) {
	return r.first(r.DB.Where("is_live = ?", true).Order("id ASC"))
}

// FindNextScheduled returns the earliest class scheduled after now, or nil.
func (r *LiveClassRepository) FindNextScheduled(now time.Time) (*model.LiveClass, error) {
	return r.first(r.DB.Where("scheduled_start > ?", now.UTC()).Order("scheduled_start ASC, id ASC"))
}

func (r *LiveClassRepository) first(query *gorm.DB) (*model.LiveClass, error) {
	var class model.LiveClass
	err := query.Preload("Instructor").First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *LiveClassRepository) FindUpcoming(now time.Time, limit int) ([]model.LiveClass, error) {
	classes := []model.LiveClass{}
	err := r.DB.Preload("Instructor").
		Where("scheduled_start > ?", now.UTC()).
		Order("scheduled_start ASC, id ASC").
		Limit(limit).
		Find(&classes).Error
	return classes, err
}

func (r *LiveClassRepository) CountLive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LiveClass{}).Where("is_live = ?", true).Count(&count).Error
	return count, err
}

func (r *LiveClassRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LiveClass{}).Count(&count).Error
	return count, err
}
