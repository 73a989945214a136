package service

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ChatService is the append-only message log of live classes. Clients poll
// GetMessages; there is no push delivery.
type ChatService struct {
	DB            *gorm.DB
	ChatRepo      *repository.ChatRepository
	LiveClassRepo *repository.LiveClassRepository
}

func NewChatService(db *gorm.DB, chatRepo *repository.ChatRepository, liveClassRepo *repository.LiveClassRepository) *ChatService {
	return &ChatService{DB: db, ChatRepo: chatRepo, LiveClassRepo: liveClassRepo}
}

// GetMessages returns a class log oldest first. Without a class id the
// currently live class is used; with none live the result is empty.
func (s *ChatService) GetMessages(classID *uint) ([]model.ChatMessageView, error) {
	views := []model.ChatMessageView{}

	target := classID
	if target == nil {
		live, err := s.LiveClassRepo.FindLive()
		if err != nil {
			return nil, util.Internal(errors.Wrap(err, "find live class"))
		}
		if live == nil {
			return views, nil
		}
		target = &live.ID
	}

	msgs, err := s.ChatRepo.FindByClass(*target)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list chat messages"))
	}
	for i := range msgs {
		views = append(views, msgs[i].View())
	}
	return views, nil
}

// SendMessage appends a message to the given class, or to the live class
// when no id is given. With no class at all the message is stored unscoped.
func (s *ChatService) SendMessage(userID uint, text string, classID *uint) (*model.ChatMessageView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.Validation("message required")
	}

	var created *model.ChatMessage
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		classes := s.LiveClassRepo.WithTx(tx)
		chat := s.ChatRepo.WithTx(tx)

		target := classID
		if target != nil {
			exists, err := classes.Exists(*target)
			if err != nil {
				return err
			}
			if !exists {
				return util.NotFoundError("live class not found")
			}
		} else {
			live, err := classes.FindLive()
			if err != nil {
				return err
			}
			if live != nil {
				target = &live.ID
			}
		}

		msg := &model.ChatMessage{UserID: userID, LiveClassID: target, Message: text}
		if err := chat.Create(msg); err != nil {
			return err
		}

		var err error
		created, err = chat.FindByID(msg.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, util.Internal(errors.Wrap(err, "send chat message"))
	}

	view := created.View()
	return &view, nil
}
