package service

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestionBank ingests problem sets and seeds a fresh installation.
type QuestionBank struct {
	DB            *gorm.DB
	UserRepo      *repository.UserRepository
	CourseRepo    *repository.CourseRepository
	QuestionRepo  *repository.QuestionRepository
	LiveClassRepo *repository.LiveClassRepository
	Now           func() time.Time
}

func NewQuestionBank(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	questionRepo *repository.QuestionRepository,
	liveClassRepo *repository.LiveClassRepository,
) *QuestionBank {
	return &QuestionBank{
		DB:            db,
		UserRepo:      userRepo,
		CourseRepo:    courseRepo,
		QuestionRepo:  questionRepo,
		LiveClassRepo: liveClassRepo,
		Now:           time.Now,
	}
}

// Import stores every record whose (title, source) pair is not present yet
// and reports how many were inserted. All or nothing.
func (b *QuestionBank) Import(records []QuestionInput) (int, error) {
	var saved int
	err := b.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = b.importTx(tx, records)
		return err
	})
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			return 0, err
		}
		return 0, util.Internal(errors.Wrap(err, "import questions"))
	}

	logger.Log.Info("Questions imported", zap.Int("saved", saved), zap.Int("received", len(records)))
	return saved, nil
}

func (b *QuestionBank) importTx(tx *gorm.DB, records []QuestionInput) (int, error) {
	repo := b.QuestionRepo.WithTx(tx)
	saved := 0
	for _, r := range records {
		q := r.toModel()
		if q.ProblemStatement == "" {
			return 0, util.Validation("problem statement is required")
		}
		if q.Title == "" {
			q.Title = q.Source + " Problem"
		}

		exists, err := repo.ExistsByTitleAndSource(q.Title, q.Source)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		if err := repo.Create(&q); err != nil {
			return 0, err
		}
		saved++
	}
	return saved, nil
}

type seedAccount struct {
	Email    string
	Name     string
	Password string
	Role     model.UserRole
}

var seedAccounts = []seedAccount{
	{Email: "admin@olympus.com", Name: "Admin User", Password: "admin123", Role: model.Admin},
	{Email: "student@olympus.com", Name: "ছাত্র/ছাত্রী", Password: "student123", Role: model.Student},
}

// Seed installs demo accounts, courses, questions and a live class. It is
// safe to run more than once.
func (b *QuestionBank) Seed() error {
	err := b.DB.Transaction(func(tx *gorm.DB) error {
		users := b.UserRepo.WithTx(tx)
		var instructorID *uint
		for _, acc := range seedAccounts {
			user, err := users.FindByEmail(acc.Email)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				digest, err := HashPassword(acc.Password)
				if err != nil {
					return err
				}
				user = &model.User{Email: acc.Email, Name: acc.Name, PasswordHash: digest, Role: acc.Role}
				if err := users.Create(user); err != nil {
					return err
				}
				logger.Log.Info("Seeded account", zap.String("email", acc.Email), zap.String("role", string(acc.Role)))
			} else if err != nil {
				return err
			}
			if acc.Role.IsStaff() && instructorID == nil {
				id := user.ID
				instructorID = &id
			}
		}

		courses := b.CourseRepo.WithTx(tx)
		for _, in := range sampleCourses() {
			exists, err := courses.ExistsByTitle(in.Title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			c := in.toModel()
			if err := courses.Create(&c); err != nil {
				return err
			}
		}

		if _, err := b.importTx(tx, SampleQuestions()); err != nil {
			return err
		}

		classes := b.LiveClassRepo.WithTx(tx)
		count, err := classes.Count()
		if err != nil {
			return err
		}
		if count == 0 {
			start := b.Now().Add(2 * time.Hour)
			end := b.Now().Add(3*time.Hour + 30*time.Minute)
			class := &model.LiveClass{
				Title:          "উচ্চতর গণিত - ক্যালকুলাসের মূলনীতি",
				Description:    "ডেরিভেটিভ, ইন্টিগ্রেশন, এবং লিমিট - প্রাকটিকাল এপ্লিকেশন সহ",
				InstructorID:   instructorID,
				ChannelName:    "olympus_calculus_101",
				ScheduledStart: &start,
				ScheduledEnd:   &end,
				IsLive:         true,
			}
			if err := classes.Create(class); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "seed database")
	}
	logger.Log.Info("Database seeded")
	return nil
}
