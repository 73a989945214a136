package controller

import (
	"olympus_backend/internal/middleware"
	"olympus_backend/internal/model"
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	StatsService *service.StatsService
	Roles        middleware.RoleLookup
}

func NewDashboardController(statsService *service.StatsService, roles middleware.RoleLookup) *DashboardController {
	return &DashboardController{StatsService: statsService, Roles: roles}
}

// DashboardResponse tells the client which panel it received.
type DashboardResponse struct {
	View string      `json:"view"`
	Data interface{} `json:"data"`
}

// @Summary Dashboard
// @Description Students get their stats, upcoming classes and recent submissions. Teachers and admins get the teacher panel.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=DashboardResponse}
// @Failure 401 {object} util.Response
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	identity := util.GetIdentityFromContext(ctx)
	if identity == nil {
		util.Unauthorized(ctx)
		return
	}

	role, err := c.Roles.CurrentRole(identity.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	if role.IsStaff() {
		panel, err := c.StatsService.TeacherPanel()
		if err != nil {
			util.RespondError(ctx, err)
			return
		}
		util.Success(ctx, DashboardResponse{View: string(model.Teacher), Data: panel})
		return
	}

	dash, err := c.StatsService.StudentDashboard(*identity)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, DashboardResponse{View: string(model.Student), Data: dash})
}

// @Summary Teacher panel
// @Tags Teacher
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TeacherPanel}
// @Failure 403 {object} util.Response
// @Router /teacher [get]
func (c *DashboardController) GetTeacherPanel(ctx *gin.Context) {
	panel, err := c.StatsService.TeacherPanel()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, panel)
}
