package controller

import (
	"fmt"
	"net/http"
	"olympus_backend/internal/config"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const multipartOverhead = 64 << 10

type ContentController struct {
	ContentService *service.ContentService
	QuestionBank   *service.QuestionBank
	Cfg            *config.Config
}

func NewContentController(contentService *service.ContentService, questionBank *service.QuestionBank, cfg *config.Config) *ContentController {
	return &ContentController{
		ContentService: contentService,
		QuestionBank:   questionBank,
		Cfg:            cfg,
	}
}

// @Summary Published courses
// @Tags Courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *ContentController) ListCourses(ctx *gin.Context) {
	courses, err := c.ContentService.ListCourses(true)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Question bank
// @Description Filters by exact topic and difficulty, newest first. Without page the whole match set is returned.
// @Tags Questions
// @Produce json
// @Security ApiKeyAuth
// @Param topic query string false "topic"
// @Param difficulty query string false "difficulty"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response{data=service.QuestionPage}
// @Router /questions [get]
func (c *ContentController) ListQuestions(ctx *gin.Context) {
	filter := repository.QuestionFilter{
		Topic:      ctx.Query("topic"),
		Difficulty: ctx.Query("difficulty"),
	}

	page, limit := 1, 0
	if ctx.Query("page") != "" {
		page, limit = util.ParsePage(ctx.Query("page"), ctx.Query("limit"), c.Cfg.App.PageSize)
	}

	result, err := c.ContentService.ListQuestions(filter, page, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Question detail
// @Tags Questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *ContentController) GetQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	q, err := c.ContentService.GetQuestion(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary Create course
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "course"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/teacher/courses [post]
func (c *ContentController) CreateCourse(ctx *gin.Context) {
	var req service.CourseInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ContentService.CreateCourse(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary Upload course image
// @Tags Teacher
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param file formData file true "image"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/teacher/courses/{id}/image [post]
func (c *ContentController) UploadCourseImage(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	// room for the multipart framing around the file itself
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.Cfg.MaxUploadBytes()+multipartOverhead)
	file, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.RespondError(ctx, util.Validation(fmt.Sprintf("file exceeds %d MB", c.Cfg.App.MaxUploadMB)))
			return
		}
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	course, err := c.ContentService.SetCourseImage(ctx.Request.Context(), id, service.ImageUpload{
		Filename:    file.Filename,
		Size:        file.Size,
		ContentType: file.Header.Get("Content-Type"),
		Body:        src,
	})
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Create question
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionInput true "question"
// @Success 201 {object} util.Response{data=model.Question}
// @Router /api/teacher/questions [post]
func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ContentService.CreateQuestion(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// ImportQuestionsRequest carries the records to import. An empty body
// imports the built-in sample set.
type ImportQuestionsRequest struct {
	Questions []service.QuestionInput `json:"questions"`
}

// @Summary Import questions
// @Description Skips records whose title and source are already stored.
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ImportQuestionsRequest false "records"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/import [post]
func (c *ContentController) ImportQuestions(ctx *gin.Context) {
	var req ImportQuestionsRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	records := req.Questions
	if len(records) == 0 {
		records = service.SampleQuestions()
	}

	saved, err := c.QuestionBank.Import(records)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"saved": saved, "received": len(records)})
}
