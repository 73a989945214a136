package controller

import (
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService    *service.ExamService
	ContentService *service.ContentService
}

func NewExamController(examService *service.ExamService, contentService *service.ContentService) *ExamController {
	return &ExamController{ExamService: examService, ContentService: contentService}
}

// @Summary Exams overview
// @Description Upcoming published exams plus the exams the user has submitted.
// @Tags Exams
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ExamsOverview}
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	identity := util.GetIdentityFromContext(ctx)
	if identity == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ExamService.Overview(identity.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary Submit an exam
// @Tags Exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Param body body service.SubmitInput true "result"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/exams/{id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	identity := util.GetIdentityFromContext(ctx)
	if identity == nil {
		util.Unauthorized(ctx)
		return
	}

	examID := util.MustParseUint(ctx.Param("id"))
	if examID == 0 {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	var req service.SubmitInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.ExamService.SubmitExam(*identity, examID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary Create exam
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExamInput true "exam"
// @Success 201 {object} util.Response{data=model.Exam}
// @Router /api/teacher/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req service.ExamInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ContentService.CreateExam(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, exam)
}
