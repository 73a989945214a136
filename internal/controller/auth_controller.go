package controller

import (
	"net/http"
	"olympus_backend/internal/config"
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Session     config.SessionConfig
}

func NewAuthController(authService *service.AuthService, session config.SessionConfig) *AuthController {
	return &AuthController{AuthService: authService, Session: session}
}

// LoginRequest
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register godoc
// @Summary Register a student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "registration form"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "missing field, password mismatch or too short"
// @Failure 409 {object} util.Response "email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterInput
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, user.Identity())
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials, sets the session cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=service.Session}
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, "email and password are required")
		return
	}

	session, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Session.CookieName, session.Token, int(c.Session.ExpireTime.Seconds()), "/", "", c.Session.Secure, true)
	util.Success(ctx, session)
}

// Logout godoc
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), util.GetClaimsFromContext(ctx)); err != nil {
		util.RespondError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Session.CookieName, "", -1, "/", "", c.Session.Secure, true)
	util.Success(ctx, nil)
}
