package service

import (
	"encoding/json"
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamService struct {
	DB             *gorm.DB
	ExamRepo       *repository.ExamRepository
	SubmissionRepo *repository.SubmissionRepository
	Content        *ContentService
	Now            func() time.Time
}

func NewExamService(db *gorm.DB, examRepo *repository.ExamRepository, submissionRepo *repository.SubmissionRepository, content *ContentService) *ExamService {
	return &ExamService{
		DB:             db,
		ExamRepo:       examRepo,
		SubmissionRepo: submissionRepo,
		Content:        content,
		Now:            time.Now,
	}
}

// ExamsOverview is everything the exams page shows for one user.
// Submissions holds the latest submission per exam id.
type ExamsOverview struct {
	Upcoming    []model.Exam              `json:"upcoming_exams"`
	Completed   []model.Exam              `json:"completed_exams"`
	Submissions map[uint]model.Submission `json:"submissions"`
}

func (s *ExamService) Overview(userID uint) (*ExamsOverview, error) {
	upcoming, err := s.Content.ListUpcomingExams()
	if err != nil {
		return nil, err
	}
	completed, err := s.Content.ListCompletedExams(userID)
	if err != nil {
		return nil, err
	}
	subs, err := s.SubmissionRepo.FindByUser(userID)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list submissions"))
	}

	byExam := make(map[uint]model.Submission, len(subs))
	for _, sub := range subs {
		byExam[sub.ExamID] = sub
	}
	return &ExamsOverview{Upcoming: upcoming, Completed: completed, Submissions: byExam}, nil
}

type SubmitInput struct {
	Score            int             `json:"score" binding:"gte=0"`
	TotalScore       int             `json:"total_score" binding:"gte=0"`
	Answers          json.RawMessage `json:"answers"`
	TimeTakenMinutes *int            `json:"time_taken_minutes" binding:"omitempty,gte=0"`
}

// SubmitExam records an attempt. Repeated attempts at the same exam are kept.
func (s *ExamService) SubmitExam(identity model.Identity, examID uint, in SubmitInput) (*model.Submission, error) {
	if in.TotalScore == 0 {
		in.TotalScore = 100
	}
	if in.Score < 0 || in.Score > in.TotalScore {
		return nil, util.Validation("score must be between 0 and total score")
	}
	if len(in.Answers) > 0 && !json.Valid(in.Answers) {
		return nil, util.Validation("answers must be valid JSON")
	}

	sub := &model.Submission{
		UserID:           identity.ID,
		ExamID:           examID,
		Score:            in.Score,
		TotalScore:       in.TotalScore,
		Answers:          datatypes.JSON(in.Answers),
		SubmittedAt:      s.Now(),
		TimeTakenMinutes: in.TimeTakenMinutes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		exam, err := s.ExamRepo.WithTx(tx).FindByID(examID)
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !exam.IsPublished) {
			return util.NotFoundError("exam not found")
		}
		if err != nil {
			return err
		}
		return s.SubmissionRepo.WithTx(tx).Create(sub)
	})
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, util.Internal(errors.Wrap(err, "record submission"))
	}

	logger.Log.Info("Exam submitted",
		zap.Uint("userId", identity.ID),
		zap.Uint("examId", examID),
		zap.Int("score", sub.Score),
	)
	return sub, nil
}
