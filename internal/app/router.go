package app

import (
	"context"
	"net/http"
	"olympus_backend/docs"
	"olympus_backend/internal/config"
	"olympus_backend/internal/middleware"
	"olympus_backend/internal/model"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/monitoring"
	"olympus_backend/pkg/security"
	"olympus_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	a.shutdownHooks = append(a.shutdownHooks, func(context.Context) error {
		stopLimiter()
		return nil
	})
	router.Use(security.RateLimiter(limiterCtx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())

	router.NoRoute(func(ctx *gin.Context) {
		util.Error(ctx, http.StatusNotFound, "Page not found")
	})
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	cookie := cfg.Session.CookieName
	requireLogin := middleware.RequireLogin(a.services.auth, cookie)
	optionalLogin := middleware.OptionalLogin(a.services.auth, cookie)

	// 1. public
	a.registerPublicRoutes(router, c, optionalLogin)

	// 2. any signed-in user
	student := router.Group("/")
	student.Use(requireLogin)
	a.registerStudentRoutes(student, c)

	// 3. teachers and admins
	teacher := router.Group("/")
	teacher.Use(requireLogin, middleware.RequireRole(a.services.auth, model.Teacher))
	a.registerTeacherRoutes(teacher, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, optionalLogin gin.HandlerFunc) {
	router.GET("/", optionalLogin, c.page.Index)
	router.GET("/about", optionalLogin, c.page.About)

	router.POST("/login", c.auth.Login)
	router.POST("/api/login", c.auth.Login)
	router.POST("/register", c.auth.Register)
	router.POST("/api/register", c.auth.Register)
	router.GET("/logout", optionalLogin, c.auth.Logout)

	router.GET("/courses", c.content.ListCourses)
	router.GET("/api/chat/messages", c.chat.Messages)
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/dashboard", c.dashboard.GetDashboard)

	group.GET("/exams", c.exam.ListExams)
	group.POST("/api/exams/:id/submit", c.exam.SubmitExam)

	group.GET("/questions", c.content.ListQuestions)
	group.GET("/questions/:id", c.content.GetQuestion)

	group.GET("/classes", c.class.Current)
	group.GET("/resources", c.page.Resources)

	group.GET("/ai_chat", c.page.AIChat)
	group.POST("/api/ai/ask", c.qa.Ask)
	group.POST("/api/ai/explain/:id", c.qa.Explain)

	group.POST("/api/chat/send", c.chat.Send)
}

func (a *App) registerTeacherRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/teacher", c.dashboard.GetTeacherPanel)

	api := group.Group("/api/teacher")
	{
		api.POST("/courses", c.content.CreateCourse)
		api.POST("/courses/:id/image", c.content.UploadCourseImage)
		api.POST("/questions", c.content.CreateQuestion)
		api.POST("/questions/import", c.content.ImportQuestions)
		api.POST("/exams", c.exam.CreateExam)
		api.POST("/classes", c.class.Create)
		api.POST("/classes/:id/start", c.class.Start)
		api.POST("/classes/:id/end", c.class.End)
	}
}
