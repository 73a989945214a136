package service

import (
	"context"
	"fmt"
	"io"
	"olympus_backend/internal/config"
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContentService struct {
	DB             *gorm.DB
	CourseRepo     *repository.CourseRepository
	QuestionRepo   *repository.QuestionRepository
	ExamRepo       *repository.ExamRepository
	SubmissionRepo *repository.SubmissionRepository
	StorageService *StorageService
	Cfg            *config.Config
	Now            func() time.Time
}

func NewContentService(
	db *gorm.DB,
	courseRepo *repository.CourseRepository,
	questionRepo *repository.QuestionRepository,
	examRepo *repository.ExamRepository,
	submissionRepo *repository.SubmissionRepository,
	storageService *StorageService,
	cfg *config.Config,
) *ContentService {
	return &ContentService{
		DB:             db,
		CourseRepo:     courseRepo,
		QuestionRepo:   questionRepo,
		ExamRepo:       examRepo,
		SubmissionRepo: submissionRepo,
		StorageService: storageService,
		Cfg:            cfg,
		Now:            time.Now,
	}
}

func (s *ContentService) ListCourses(publishedOnly bool) ([]model.Course, error) {
	courses, err := s.CourseRepo.List(publishedOnly)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list courses"))
	}
	return courses, nil
}

// QuestionPage is a filtered slice of the catalog plus every topic in storage.
type QuestionPage struct {
	Questions []model.Question `json:"questions"`
	Topics    []string         `json:"topics"`
	Total     int64            `json:"total"`
	Page      int              `json:"page,omitempty"`
	Limit     int              `json:"limit,omitempty"`
}

// ListQuestions filters by exact topic and difficulty, newest first.
// A zero limit returns every match.
func (s *ContentService) ListQuestions(filter repository.QuestionFilter, page, limit int) (*QuestionPage, error) {
	questions, total, err := s.QuestionRepo.List(filter, page, limit)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list questions"))
	}
	topics, err := s.QuestionRepo.DistinctTopics()
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list topics"))
	}

	result := &QuestionPage{Questions: questions, Topics: topics, Total: total}
	if limit > 0 {
		result.Page = page
		result.Limit = limit
	}
	return result, nil
}

func (s *ContentService) GetQuestion(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundError("question not found")
	}
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find question"))
	}
	return q, nil
}

func (s *ContentService) ListUpcomingExams() ([]model.Exam, error) {
	exams, err := s.ExamRepo.FindUpcoming(s.Now())
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list upcoming exams"))
	}
	return exams, nil
}

// ListCompletedExams returns the exams the user has at least one submission for.
func (s *ContentService) ListCompletedExams(userID uint) ([]model.Exam, error) {
	ids, err := s.SubmissionRepo.ExamIDsByUser(userID)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list submitted exam ids"))
	}
	exams, err := s.ExamRepo.FindByIDs(ids)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "list completed exams"))
	}
	return exams, nil
}

type CourseInput struct {
	Title          string                 `json:"title" binding:"required"`
	Description    string                 `json:"description" binding:"required"`
	InstructorName string                 `json:"instructor_name" binding:"required"`
	DurationHours  int                    `json:"duration_hours" binding:"gte=0"`
	LessonCount    int                    `json:"lesson_count" binding:"gte=0"`
	Difficulty     model.CourseDifficulty `json:"difficulty"`
	Category       string                 `json:"category"`
	ImageURL       string                 `json:"image_url"`
	IsPublished    *bool                  `json:"is_published"`
}

func (in CourseInput) toModel() model.Course {
	course := model.Course{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		InstructorName: strings.TrimSpace(in.InstructorName),
		DurationHours:  in.DurationHours,
		LessonCount:    in.LessonCount,
		Difficulty:     in.Difficulty,
		Category:       in.Category,
		ImageURL:       in.ImageURL,
		IsPublished:    true,
	}
	if course.Difficulty == "" {
		course.Difficulty = model.Intermediate
	}
	if course.Category == "" {
		course.Category = "mathematics"
	}
	if in.IsPublished != nil {
		course.IsPublished = *in.IsPublished
	}
	return course
}

func (s *ContentService) CreateCourse(in CourseInput) (*model.Course, error) {
	course := in.toModel()
	if course.Title == "" || course.InstructorName == "" {
		return nil, util.Validation("title and instructor name are required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CourseRepo.WithTx(tx).Create(&course)
	})
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "create course"))
	}
	return &course, nil
}

// ReplaceCourses swaps the whole course catalog in one transaction.
func (s *ContentService) ReplaceCourses(inputs []CourseInput) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(inputs))
	for _, in := range inputs {
		c := in.toModel()
		if c.Title == "" || c.InstructorName == "" {
			return nil, util.Validation("title and instructor name are required")
		}
		courses = append(courses, c)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.CourseRepo.WithTx(tx)
		if err := repo.DeleteAll(); err != nil {
			return err
		}
		for i := range courses {
			if err := repo.Create(&courses[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "replace courses"))
	}

	logger.Log.Info("Course catalog replaced", zap.Int("count", len(courses)))
	return courses, nil
}

type QuestionInput struct {
	Title            string `json:"title" binding:"required"`
	ProblemStatement string `json:"problem_statement" binding:"required"`
	Solution         string `json:"solution"`
	SolutionBangla   string `json:"solution_bangla"`
	Difficulty       string `json:"difficulty"`
	Topic            string `json:"topic"`
	Source           string `json:"source"`
	Year             *int   `json:"year"`
	ProblemNumber    string `json:"problem_number"`
}

func (in QuestionInput) toModel() model.Question {
	q := model.Question{
		Title:            strings.TrimSpace(in.Title),
		ProblemStatement: strings.TrimSpace(in.ProblemStatement),
		Solution:         in.Solution,
		SolutionBangla:   in.SolutionBangla,
		Difficulty:       in.Difficulty,
		Topic:            in.Topic,
		Source:           in.Source,
		Year:             in.Year,
		ProblemNumber:    in.ProblemNumber,
	}
	if q.Difficulty == "" {
		q.Difficulty = "medium"
	}
	if q.Topic == "" {
		q.Topic = "general"
	}
	if q.Source == "" {
		q.Source = "Unknown"
	}
	return q
}

func (s *ContentService) CreateQuestion(in QuestionInput) (*model.Question, error) {
	q := in.toModel()
	if q.Title == "" || q.ProblemStatement == "" {
		return nil, util.Validation("title and problem statement are required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.QuestionRepo.WithTx(tx).Create(&q)
	})
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "create question"))
	}
	return &q, nil
}

type ExamInput struct {
	CourseID        *uint      `json:"course_id"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes" binding:"gte=0"`
	TotalQuestions  int        `json:"total_questions" binding:"gte=0"`
	PassingScore    int        `json:"passing_score" binding:"gte=0"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	IsPublished     bool       `json:"is_published"`
}

func (s *ContentService) CreateExam(in ExamInput) (*model.Exam, error) {
	exam := model.Exam{
		CourseID:        in.CourseID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		TotalQuestions:  in.TotalQuestions,
		PassingScore:    in.PassingScore,
		ScheduledDate:   in.ScheduledDate,
		IsPublished:     in.IsPublished,
	}
	if exam.Title == "" {
		return nil, util.Validation("title is required")
	}
	if exam.DurationMinutes == 0 {
		exam.DurationMinutes = 90
	}
	if exam.PassingScore == 0 {
		exam.PassingScore = 60
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if exam.CourseID != nil {
			if _, err := s.CourseRepo.WithTx(tx).FindByID(*exam.CourseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return util.NotFoundError("course not found")
				}
				return err
			}
		}
		return s.ExamRepo.WithTx(tx).Create(&exam)
	})
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, util.Internal(errors.Wrap(err, "create exam"))
	}
	return &exam, nil
}

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.ReadSeeker
}

// SetCourseImage stores the image and points the course at it. The stored
// object is removed again when the course cannot be updated.
func (s *ContentService) SetCourseImage(ctx context.Context, courseID uint, upload ImageUpload) (*model.Course, error) {
	if upload.Size > s.Cfg.MaxUploadBytes() {
		return nil, util.Validation(fmt.Sprintf("file exceeds %d MB", s.Cfg.App.MaxUploadMB))
	}
	if !util.HasAllowedExtension(upload.Filename, util.AllowedImageExtensions) {
		return nil, util.Validation("unsupported image type")
	}
	mime, err := util.ValidateMimeType(upload.Body, []string{util.MimeImage})
	if err != nil {
		return nil, util.Validation("file content is not an image")
	}
	if _, err := upload.Body.Seek(0, io.SeekStart); err != nil {
		return nil, util.Internal(errors.Wrap(err, "rewind upload"))
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundError("course not found")
	}
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find course"))
	}

	name := fmt.Sprintf("courses/%d/%s%s", courseID, model.GenerateUUID(), strings.ToLower(filepath.Ext(upload.Filename)))
	url, err := s.StorageService.Upload(ctx, name, upload.Body, upload.Size, mime)
	if err != nil {
		logger.Log.Error("Failed to store course image", zap.Error(err), zap.Uint("courseId", courseID))
		return nil, util.Unavailable("file storage unavailable", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CourseRepo.WithTx(tx).UpdateImage(courseID, url)
	})
	if err != nil {
		if delErr := s.StorageService.Delete(ctx, name); delErr != nil {
			logger.Log.Warn("Failed to remove orphaned upload", zap.Error(delErr), zap.String("object", name))
		}
		return nil, util.Internal(errors.Wrap(err, "update course image"))
	}

	course.ImageURL = url
	return course, nil
}
