package app

import (
	"context"
	"net/http"
	"olympus_backend/internal/config"
	"olympus_backend/internal/controller"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/service"
	"olympus_backend/pkg/configwatcher"
	"olympus_backend/pkg/database"
	"olympus_backend/pkg/logger"
	"olympus_backend/pkg/monitoring"
	"olympus_backend/pkg/tracing"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	repos           *repositories
	services        *services
	configCallbacks []func(*config.Config)
	shutdownHooks   []func(context.Context) error
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	question   *repository.QuestionRepository
	exam       *repository.ExamRepository
	submission *repository.SubmissionRepository
	liveClass  *repository.LiveClassRepository
	chat       *repository.ChatRepository
	dashboard  *repository.DashboardRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	content      *service.ContentService
	exam         *service.ExamService
	stats        *service.StatsService
	chat         *service.ChatService
	class        *service.ClassService
	tutor        *service.TutorService
	questionBank *service.QuestionBank
}

type controllers struct {
	auth      *controller.AuthController
	page      *controller.PageController
	dashboard *controller.DashboardController
	content   *controller.ContentController
	exam      *controller.ExamController
	class     *controller.ClassController
	chat      *controller.ChatController
	qa        *controller.QAController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		question:   repository.NewQuestionRepository(db),
		exam:       repository.NewExamRepository(db),
		submission: repository.NewSubmissionRepository(db),
		liveClass:  repository.NewLiveClassRepository(db),
		chat:       repository.NewChatRepository(db),
		dashboard:  repository.NewDashboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	var sessions service.SessionStore = service.NewMemorySessionStore()
	if rdb != nil {
		sessions = service.NewRedisSessionStore(rdb)
	}
	s.auth = service.NewAuthService(repos.user, sessions, cfg)

	s.content = service.NewContentService(db, repos.course, repos.question, repos.exam, repos.submission, s.storage, cfg)
	s.exam = service.NewExamService(db, repos.exam, repos.submission, s.content)
	s.stats = service.NewStatsService(repos.user, repos.course, repos.submission, repos.liveClass, repos.chat, repos.dashboard)
	s.chat = service.NewChatService(db, repos.chat, repos.liveClass)
	s.class = service.NewClassService(db, repos.liveClass, cfg.Streaming)
	s.questionBank = service.NewQuestionBank(db, repos.user, repos.course, repos.question, repos.liveClass)

	// the tutor stays unconfigured without an API key
	var completer service.Completer
	if cfg.AI.APIKey != "" {
		completer = service.NewAIClient(cfg.AI)
	} else {
		logger.Log.Warn("AI tutor disabled: no API key configured")
	}
	s.tutor = service.NewTutorService(completer, repos.question, cfg.AITimeout())

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, a.Config.Session),
		page:      controller.NewPageController(),
		dashboard: controller.NewDashboardController(s.stats, s.auth),
		content:   controller.NewContentController(s.content, s.questionBank, a.Config),
		exam:      controller.NewExamController(s.exam, s.content),
		class:     controller.NewClassController(s.class),
		chat:      controller.NewChatController(s.chat),
		qa:        controller.NewQAController(s.tutor),
		health:    controller.NewHealthController(db),
	}
}

// New wires an App around an open database. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	app.repos = app.initRepositories(db)
	s, err := app.initServices(app.repos, cfg, db, rdb)
	if err != nil {
		return nil, err
	}
	app.services = s
	c := app.initControllers(s, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, c, cfg)

	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath != "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.SetLevel)
	return app, nil
}

// NewApp initialises logging, storage and tracing from cfg and wires the App.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "initialize database")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, errors.Wrap(err, "initialize redis")
	}

	app, err := New(cfg, db, rdb)
	if err != nil {
		return nil, err
	}
	app.ConfigDir = "configs"

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("olympus-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, errors.Wrap(err, "initialize tracing")
		}
		app.shutdownHooks = append(app.shutdownHooks, tp.Shutdown)
	}

	return app, nil
}

// Seed installs demo accounts and sample content.
func (a *App) Seed() error {
	return a.services.questionBank.Seed()
}

// RefreshCourses replaces the course catalog with the current offering.
func (a *App) RefreshCourses() error {
	_, err := a.services.content.ReplaceCourses(service.CurrentCourses())
	return err
}

func (a *App) watchConfig(ctx context.Context) {
	if a.ConfigDir == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.ConfigDir, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
			logger.Log.Info("Configuration reloaded", zap.String("logLevel", logger.LevelFor(cfg).String()))
		})
		if err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	a.watchConfig(ctx)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait for an interrupt, then give in-flight requests 5 seconds
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}

// Close releases tracing, Redis and database handles.
func (a *App) Close(ctx context.Context) {
	for _, hook := range a.shutdownHooks {
		if err := hook(ctx); err != nil {
			logger.Log.Error("Shutdown hook failed", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	_ = logger.Log.Sync()
}
