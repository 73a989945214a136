package controller

import (
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// @Summary Current or next live class
// @Description The live class if any, else the earliest future one. app_id is the streaming provider app id.
// @Tags Classes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ClassroomView}
// @Router /classes [get]
func (c *ClassController) Current(ctx *gin.Context) {
	view, err := c.ClassService.Classroom()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Schedule a live class
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.LiveClassInput true "class"
// @Success 201 {object} util.Response{data=model.LiveClassView}
// @Failure 409 {object} util.Response "channel already in use"
// @Router /api/teacher/classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	identity := util.GetIdentityFromContext(ctx)
	if identity == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LiveClassInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.CreateLiveClass(*identity, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	view := class.View()
	view.Instructor = &identity.Name
	util.Created(ctx, view)
}

func (c *ClassController) Start(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	class, err := c.ClassService.StartLiveClass(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, class.View())
}

type EndClassRequest struct {
	RecordingURL string `json:"recording_url"`
}

func (c *ClassController) End(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	var req EndClassRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	class, err := c.ClassService.EndLiveClass(id, req.RecordingURL)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, class.View())
}
