package controller

import (
	"net/http"
	"olympus_backend/internal/service"
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatController serves the live class chat log. Clients poll Messages.
type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// SendMessageRequest
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Message string `json:"message"`
	ClassID *uint  `json:"class_id"`
}

// @Summary Chat messages of a class
// @Description Without class_id the currently live class is used.
// @Tags Chat
// @Produce json
// @Param class_id query int false "live class id"
// @Success 200 {array} model.ChatMessageView
// @Router /api/chat/messages [get]
func (c *ChatController) Messages(ctx *gin.Context) {
	classID, err := util.ParseOptionalUint(ctx.Query("class_id"))
	if err != nil {
		util.RespondErrorBody(ctx, err)
		return
	}

	msgs, err := c.ChatService.GetMessages(classID)
	if err != nil {
		util.RespondErrorBody(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, msgs)
}

// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SendMessageRequest true "message"
// @Success 200 {object} model.ChatMessageView
// @Failure 400 {object} util.ErrorBody
// @Router /api/chat/send [post]
func (c *ChatController) Send(ctx *gin.Context) {
	identity := util.GetIdentityFromContext(ctx)
	if identity == nil {
		util.RespondErrorBody(ctx, util.AuthRequired())
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, util.ErrorBody{Error: "invalid request body"})
		return
	}

	msg, err := c.ChatService.SendMessage(identity.ID, req.Message, req.ClassID)
	if err != nil {
		util.RespondErrorBody(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, msg)
}
