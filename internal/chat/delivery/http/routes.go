package http

import (
	"omnixius-ai/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat is public: credentials travel inside each request.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
}
