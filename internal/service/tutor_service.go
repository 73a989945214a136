package service

import (
	"context"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"olympus_backend/pkg/monitoring"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tutorPreamble = `You are "Olympus AI", a friendly and very knowledgeable math olympiad tutor.
Explain olympiad problems in informal Bangla, addressing the student as "তুমি".
Keep mathematical terms in English and explain them in Bangla.

Rules:
1. Explain the reasoning behind every step, not just the answer.
2. Restate the problem briefly, discuss the strategy, solve it step by step, then highlight the answer.
3. Use real-life examples or analogies for abstract ideas.
4. Encourage the student when they are wrong, and now and then ask a guiding question instead of giving everything away.

Structure: a short enthusiastic opening, what the problem really asks, the detailed solution, and a closing tip.`

var tutorTracer = otel.Tracer("olympus_backend/tutor")

// Turn is one earlier exchange of a tutoring conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TutorAnswer struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// TutorService wraps the external completion capability. A nil Completer
// means the tutor is not configured.
type TutorService struct {
	Completer    Completer
	QuestionRepo *repository.QuestionRepository
	Timeout      time.Duration
	Now          func() time.Time
}

func NewTutorService(completer Completer, questionRepo *repository.QuestionRepository, timeout time.Duration) *TutorService {
	return &TutorService{
		Completer:    completer,
		QuestionRepo: questionRepo,
		Timeout:      timeout,
		Now:          time.Now,
	}
}

// BuildPrompt lays out the preamble, the earlier turns and the question as
// one prompt.
func BuildPrompt(question string, history []Turn) string {
	var b strings.Builder
	b.WriteString(tutorPreamble)
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, t := range history {
			b.WriteString(t.Role)
			b.WriteString(": ")
			b.WriteString(t.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Student's question: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}

// Ask validates the question before anything leaves the process.
func (s *TutorService) Ask(ctx context.Context, question string, history []Turn) (*TutorAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, util.Validation("question required")
	}

	text, err := s.complete(ctx, "tutor.ask", BuildPrompt(question, history))
	if err != nil {
		return nil, err
	}
	return &TutorAnswer{Response: text, Timestamp: s.Now().UTC().Format(time.RFC3339)}, nil
}

// ExplainSolution asks for an informal Bangla walkthrough of a stored
// question's English solution.
func (s *TutorService) ExplainSolution(ctx context.Context, questionID uint) (*TutorAnswer, error) {
	q, err := s.QuestionRepo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundError("question not found")
	}
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find question"))
	}
	if strings.TrimSpace(q.Solution) == "" {
		return nil, util.Validation("question has no solution to explain")
	}

	var b strings.Builder
	b.WriteString(tutorPreamble)
	b.WriteString("\n\nProblem: ")
	b.WriteString(q.ProblemStatement)
	b.WriteString("\n\nEnglish solution: ")
	b.WriteString(q.Solution)
	b.WriteString("\n\nExplain this solution step by step in informal Bangla so that an olympiad student can follow it easily.\n")

	text, err := s.complete(ctx, "tutor.explain", b.String())
	if err != nil {
		return nil, err
	}
	return &TutorAnswer{Response: text, Timestamp: s.Now().UTC().Format(time.RFC3339)}, nil
}

func (s *TutorService) complete(ctx context.Context, op, prompt string) (string, error) {
	if s.Completer == nil {
		return "", util.Unavailable("AI tutor is not configured", nil)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	ctx, span := tutorTracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	text, err := s.Completer.Complete(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		monitoring.AIRequests.WithLabelValues("error").Inc()
		logger.Log.Error("AI completion failed", zap.String("op", op), zap.Error(err))
		return "", util.Unavailable("AI tutor failed to respond", err)
	}
	monitoring.AIRequests.WithLabelValues("ok").Inc()
	return text, nil
}
