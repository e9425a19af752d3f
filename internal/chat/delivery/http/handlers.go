package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omnixius-ai/pkg/response"
)

// Chat godoc
// @Summary     Answer a chat message
// @Description Classifies the message (English, Russian, French) and, when the caller supplied a token and backend URL, runs the matching backend action. Always answers 200 with reply text for a well-formed body.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body          body   chatReq true  "Chat message"
// @Param       Authorization header string  false "Bearer token used when the body has none"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.http.Chat: %v", err)
		response.Error(c, err, nil)
		return
	}

	out := h.uc.Reply(ctx, req.toInput())

	c.JSON(http.StatusOK, h.newChatResp(out))
}
