package service

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"time"

	"github.com/pkg/errors"
)

// StatsService aggregates dashboard numbers. Nothing is cached; every call
// recomputes from storage.
type StatsService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	SubmissionRepo *repository.SubmissionRepository
	LiveClassRepo  *repository.LiveClassRepository
	ChatRepo       *repository.ChatRepository
	DashboardRepo  *repository.DashboardRepository
	Now            func() time.Time
}

func NewStatsService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	submissionRepo *repository.SubmissionRepository,
	liveClassRepo *repository.LiveClassRepository,
	chatRepo *repository.ChatRepository,
	dashboardRepo *repository.DashboardRepository,
) *StatsService {
	return &StatsService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		SubmissionRepo: submissionRepo,
		LiveClassRepo:  liveClassRepo,
		ChatRepo:       chatRepo,
		DashboardRepo:  dashboardRepo,
		Now:            time.Now,
	}
}

type UserStats struct {
	// EnrolledCourses counts every published course; enrollment is not tracked.
	EnrolledCourses int64   `json:"enrolled_courses"`
	CompletedExams  int64   `json:"completed_exams"`
	LearningHours   float64 `json:"learning_hours"`
	AvgScore        int     `json:"avg_score"`
}

func (s *StatsService) UserStats(userID uint) (*UserStats, error) {
	totals, err := s.SubmissionRepo.ScoreTotalsByUser(userID)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "aggregate submissions"))
	}
	published, err := s.CourseRepo.CountPublished()
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "count published courses"))
	}

	stats := &UserStats{
		EnrolledCourses: published,
		CompletedExams:  totals.Count,
		LearningHours:   float64(totals.Count) * util.HoursPerSubmission,
	}
	if totals.Count > 0 {
		stats.AvgScore = int(totals.Sum / totals.Count)
	}
	return stats, nil
}

func (s *StatsService) TeacherStats() (*repository.PlatformCounts, error) {
	counts, err := s.DashboardRepo.PlatformCounts()
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "count platform totals"))
	}
	return &counts, nil
}

type StudentSummary struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ClassLevel string    `json:"class_level"`
	SchoolName string    `json:"school_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type RecentActivity struct {
	Students []StudentSummary        `json:"recent_students"`
	Messages []model.ChatMessageView `json:"recent_messages"`
}

// RecentActivity lists the newest students and the newest chat messages,
// both newest first.
func (s *StatsService) RecentActivity(students, messages int) (*RecentActivity, error) {
	users, err := s.UserRepo.FindRecentByRole(model.Student, students)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list recent students"))
	}
	msgs, err := s.ChatRepo.FindRecent(messages)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list recent messages"))
	}

	activity := &RecentActivity{
		Students: make([]StudentSummary, 0, len(users)),
		Messages: make([]model.ChatMessageView, 0, len(msgs)),
	}
	for _, u := range users {
		activity.Students = append(activity.Students, StudentSummary{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			ClassLevel: u.ClassLevel,
			SchoolName: u.SchoolName,
			CreatedAt:  u.CreatedAt,
		})
	}
	for i := range msgs {
		activity.Messages = append(activity.Messages, msgs[i].View())
	}
	return activity, nil
}

type StudentDashboard struct {
	Stats             *UserStats            `json:"stats"`
	UpcomingClasses   []model.LiveClassView `json:"upcoming_classes"`
	RecentSubmissions []model.Submission    `json:"recent_submissions"`
}

func (s *StatsService) StudentDashboard(identity model.Identity) (*StudentDashboard, error) {
	stats, err := s.UserStats(identity.ID)
	if err != nil {
		return nil, err
	}
	classes, err := s.LiveClassRepo.FindUpcoming(s.Now(), util.DashboardListLimit)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list upcoming classes"))
	}
	subs, err := s.SubmissionRepo.FindRecentByUser(identity.ID, util.DashboardListLimit)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list recent submissions"))
	}

	dash := &StudentDashboard{
		Stats:             stats,
		UpcomingClasses:   make([]model.LiveClassView, 0, len(classes)),
		RecentSubmissions: subs,
	}
	for i := range classes {
		dash.UpcomingClasses = append(dash.UpcomingClasses, classes[i].View())
	}
	return dash, nil
}

type TeacherPanel struct {
	Stats *repository.PlatformCounts `json:"stats"`
	*RecentActivity
}

func (s *StatsService) TeacherPanel() (*TeacherPanel, error) {
	stats, err := s.TeacherStats()
	if err != nil {
		return nil, err
	}
	activity, err := s.RecentActivity(util.RecentStudentsLimit, util.RecentMessagesLimit)
	if err != nil {
		return nil, err
	}
	return &TeacherPanel{Stats: stats, RecentActivity: activity}, nil
}
