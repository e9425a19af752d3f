package test

import (
	"github.com/gin-gonic/gin"

	"omnixius-ai/internal/router"
	pkgLog "omnixius-ai/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}

// RegisterRoutes mounts the debug endpoints under /test.
func RegisterRoutes(r *gin.Engine, h Handler) {
	g := r.Group("/test")
	g.POST("/classify", h.HandleClassify)
	g.GET("/health", h.HandleHealthCheck)
}
