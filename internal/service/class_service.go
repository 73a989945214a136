package service

import (
	"olympus_backend/internal/config"
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ClassService manages the lifecycle of live classes. More than one class may
// be live at once; readers pick the one with the lowest id.
type ClassService struct {
	DB            *gorm.DB
	LiveClassRepo *repository.LiveClassRepository
	Streaming     config.StreamingConfig
	Now           func() time.Time
}

func NewClassService(db *gorm.DB, liveClassRepo *repository.LiveClassRepository, streaming config.StreamingConfig) *ClassService {
	return &ClassService{
		DB:            db,
		LiveClassRepo: liveClassRepo,
		Streaming:     streaming,
		Now:           time.Now,
	}
}

// CurrentOrNext returns the live class, else the earliest future one, else nil.
func (s *ClassService) CurrentOrNext() (*model.LiveClass, error) {
	live, err := s.LiveClassRepo.FindLive()
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find live class"))
	}
	if live != nil {
		return live, nil
	}

	next, err := s.LiveClassRepo.FindNextScheduled(s.Now())
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find next class"))
	}
	return next, nil
}

// ClassroomView is what a client needs to join the current channel.
type ClassroomView struct {
	LiveClass *model.LiveClassView `json:"live_class"`
	AppID     string               `json:"app_id,omitempty"`
}

func (s *ClassService) Classroom() (*ClassroomView, error) {
	class, err := s.CurrentOrNext()
	if err != nil {
		return nil, err
	}
	view := &ClassroomView{AppID: s.Streaming.AppID}
	if class != nil {
		v := class.View()
		view.LiveClass = &v
	}
	return view, nil
}

type LiveClassInput struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	ChannelName    string     `json:"channel_name"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
}

// CreateLiveClass schedules a class taught by the given user. A channel name
// is generated when none is given.
func (s *ClassService) CreateLiveClass(instructor model.Identity, in LiveClassInput) (*model.LiveClass, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, util.Validation("title is required")
	}
	if in.ScheduledStart != nil && in.ScheduledEnd != nil && in.ScheduledEnd.Before(*in.ScheduledStart) {
		return nil, util.Validation("scheduled end is before scheduled start")
	}

	channel := strings.TrimSpace(in.ChannelName)
	if channel == "" {
		channel = "olympus_" + strings.ReplaceAll(model.GenerateUUID(), "-", "")
	}

	instructorID := instructor.ID
	class := &model.LiveClass{
		Title:          title,
		Description:    in.Description,
		InstructorID:   &instructorID,
		ChannelName:    channel,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.LiveClassRepo.WithTx(tx)
		exists, err := repo.ExistsByChannel(channel)
		if err != nil {
			return err
		}
		if exists {
			return util.Conflict("channel name already in use")
		}
		return repo.Create(class)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, util.Conflict("channel name already in use")
	}
	if err != nil {
		if errors.Is(err, util.ErrConflict) {
			return nil, err
		}
		return nil, util.Internal(errors.Wrap(err, "create live class"))
	}
	return class, nil
}

func (s *ClassService) StartLiveClass(id uint) (*model.LiveClass, error) {
	return s.update(id, func(c *model.LiveClass) {
		now := s.Now()
		c.IsLive = true
		c.ActualStart = &now
		c.ActualEnd = nil
	})
}

func (s *ClassService) EndLiveClass(id uint, recordingURL string) (*model.LiveClass, error) {
	return s.update(id, func(c *model.LiveClass) {
		now := s.Now()
		c.IsLive = false
		c.ActualEnd = &now
		if recordingURL != "" {
			c.RecordingURL = recordingURL
		}
	})
}

func (s *ClassService) update(id uint, apply func(*model.LiveClass)) (*model.LiveClass, error) {
	var class *model.LiveClass
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.LiveClassRepo.WithTx(tx)
		var err error
		class, err = repo.FindByID(id)
		if err != nil {
			return err
		}
		apply(class)
		return repo.Save(class)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundError("live class not found")
	}
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "update live class"))
	}

	logger.Log.Info("Live class updated", zap.Uint("classId", class.ID), zap.Bool("isLive", class.IsLive))
	return class, nil
}
