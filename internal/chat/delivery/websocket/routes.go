package websocket

import (
	"github.com/gin-gonic/gin"

	"omnixius-ai/internal/middleware"
)

// RegisterRoutes exposes the WebSocket endpoint. The rate limit applies to the upgrade and, inside
// Serve, to every frame.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.GET("/ws/chat", mw.RateLimit(), h.Serve)
}
