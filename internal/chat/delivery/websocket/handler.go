package websocket

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"omnixius-ai/internal/chat"
	"omnixius-ai/internal/middleware"
	"omnixius-ai/pkg/response"
)

// Serve godoc
// @Summary     Chat over WebSocket
// @Description Upgrades to a WebSocket. Every text frame {id, message, module, token, api_base} is answered with {id, reply, model, intent}; malformed or rate-limited frames get {id, error}. Frames are handled one at a time and share no state.
// @Tags        Chat
// @Param       Authorization header string false "Bearer token used when a frame has none"
// @Success     101
// @Router      /ws/chat [GET]
func (h *handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()
	headerToken := middleware.BearerToken(c.GetHeader("Authorization"))
	clientIP := c.ClientIP()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "%s: upgrade failed: %v", LogPrefixServe, err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxFrameBytes)
	h.l.Infof(ctx, "%s: connection opened from %s", LogPrefixServe, clientIP)

	for {
		conn.SetReadDeadline(time.Now().Add(idleTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "%s: read: %v", LogPrefixServe, err)
			}
			break
		}

		var frame chatFrame
		parseErr := json.Unmarshal(data, &frame)

		// Every frame is charged, malformed ones included.
		if err := h.limiter.AllowClient(clientIP); err != nil {
			h.l.Warnf(ctx, "%s: %v", LogPrefixServe, err)
			if !h.write(c, conn, replyFrame{ID: frame.ID, Error: response.TooManyRequestsMessage}) {
				break
			}
			continue
		}
		if parseErr != nil {
			if !h.write(c, conn, replyFrame{Error: chat.ErrInvalidPayload.Error()}) {
				break
			}
			continue
		}
		if strings.TrimSpace(frame.Token) == "" {
			frame.Token = headerToken
		}

		out := h.uc.Reply(ctx, frame.toInput())
		if !h.write(c, conn, replyFrame{
			ID:     frame.ID,
			Reply:  out.Text,
			Model:  out.Model,
			Intent: string(out.Intent),
		}) {
			break
		}
	}

	h.l.Infof(ctx, "%s: connection closed", LogPrefixServe)
}

func (h *handler) write(c *gin.Context, conn *websocket.Conn, frame replyFrame) bool {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(frame); err != nil {
		h.l.Warnf(c.Request.Context(), "%s: write: %v", LogPrefixServe, err)
		return false
	}
	return true
}
