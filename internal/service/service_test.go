package service

import (
	"olympus_backend/internal/config"
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type testEnv struct {
	db      *gorm.DB
	cfg     *config.Config
	users   *repository.UserRepository
	courses *repository.CourseRepository
	qs      *repository.QuestionRepository
	exams   *repository.ExamRepository
	subs    *repository.SubmissionRepository
	classes *repository.LiveClassRepository
	chats   *repository.ChatRepository

	auth    *AuthService
	content *ContentService
	exam    *ExamService
	stats   *StatsService
	chat    *ChatService
	class   *ClassService
	bank    *QuestionBank
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.OpenDB(t)
	cfg := testutil.TestConfig()
	cfg.Storage.LocalPath = t.TempDir()

	e := &testEnv{
		db:      db,
		cfg:     cfg,
		users:   repository.NewUserRepository(db),
		courses: repository.NewCourseRepository(db),
		qs:      repository.NewQuestionRepository(db),
		exams:   repository.NewExamRepository(db),
		subs:    repository.NewSubmissionRepository(db),
		classes: repository.NewLiveClassRepository(db),
		chats:   repository.NewChatRepository(db),
	}

	storage, err := NewStorageService(&cfg.Storage)
	require.NoError(t, err)

	e.auth = NewAuthService(e.users, NewMemorySessionStore(), cfg)
	e.content = NewContentService(db, e.courses, e.qs, e.exams, e.subs, storage, cfg)
	e.content.Now = clock
	e.exam = NewExamService(db, e.exams, e.subs, e.content)
	e.exam.Now = clock
	e.stats = NewStatsService(e.users, e.courses, e.subs, e.classes, e.chats, repository.NewDashboardRepository(db))
	e.stats.Now = clock
	e.chat = NewChatService(db, e.chats, e.classes)
	e.class = NewClassService(db, e.classes, config.StreamingConfig{AppID: "agora-app"})
	e.class.Now = clock
	e.bank = NewQuestionBank(db, e.users, e.courses, e.qs, e.classes)
	e.bank.Now = clock
	return e
}

func (e *testEnv) user(t *testing.T, email string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{Email: email, Name: "User " + email, PasswordHash: "x", Role: role}
	require.NoError(t, e.users.Create(u))
	return u
}

func validRegistration(email string) RegisterInput {
	return RegisterInput{
		Email:           email,
		Name:            "Rahim",
		MobileNumber:    "01700000000",
		ClassLevel:      "9",
		SchoolName:      "Dhaka Residential",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}
