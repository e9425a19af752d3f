package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"omnixius-ai/internal/chat"
	"omnixius-ai/internal/middleware"
)

// processChatReq binds the chat body. A token missing from the body is taken from the
// request's bearer Authorization header.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", chat.ErrInvalidPayload, err)
	}
	if strings.TrimSpace(req.Token) == "" {
		req.Token = middleware.BearerToken(c.GetHeader("Authorization"))
	}
	return req, nil
}
