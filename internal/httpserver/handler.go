package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "omnixius-ai/internal/chat/delivery/http"
	chatWS "omnixius-ai/internal/chat/delivery/websocket"
	"omnixius-ai/internal/test"
	"omnixius-ai/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "internal.httpserver.recovery: panic: %v", recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	}))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	srv.l.Infof(context.Background(), "CORS mode: %s, allowed origins: %v", srv.environment, srv.allowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat route registered at POST /chat")

	if srv.wsHandler != nil {
		chatWS.RegisterRoutes(srv.gin, srv.wsHandler, srv.mw)
		srv.l.Infof(ctx, "Chat WebSocket route registered at GET /ws/chat")
	}

	if srv.testHandler != nil {
		test.RegisterRoutes(srv.gin, srv.testHandler)
		srv.l.Infof(ctx, "Test routes registered under /test")
	} else {
		srv.l.Infof(ctx, "Test endpoints disabled")
	}
}
