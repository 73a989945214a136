package controller

import (
	"net/http"
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QAController exposes the AI tutor. Its endpoints answer with bare bodies,
// not the response envelope.
type QAController struct {
	tutor *service.TutorService
}

func NewQAController(tutor *service.TutorService) *QAController {
	return &QAController{tutor: tutor}
}

// AskRequest
// swagger:model AskRequest
type AskRequest struct {
	Message string         `json:"message"`
	Context []service.Turn `json:"context"`
}

// Ask godoc
// @Summary Ask the AI tutor
// @Description One blocking round trip to the completion service.
// @Tags AI
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AskRequest true "question and earlier turns"
// @Success 200 {object} service.TutorAnswer
// @Failure 400 {object} util.ErrorBody
// @Failure 503 {object} util.ErrorBody
// @Router /api/ai/ask [post]
func (c *QAController) Ask(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, util.ErrorBody{Error: "invalid request body", Details: err.Error()})
		return
	}

	answer, err := c.tutor.Ask(ctx.Request.Context(), req.Message, req.Context)
	if err != nil {
		util.RespondErrorBody(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// Explain godoc
// @Summary Explain a stored solution in Bangla
// @Tags AI
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} service.TutorAnswer
// @Failure 404 {object} util.ErrorBody
// @Router /api/ai/explain/{id} [post]
func (c *QAController) Explain(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		ctx.JSON(http.StatusBadRequest, util.ErrorBody{Error: "invalid question id"})
		return
	}

	answer, err := c.tutor.ExplainSolution(ctx.Request.Context(), id)
	if err != nil {
		util.RespondErrorBody(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}
