package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "omnixius-ai/internal/chat/delivery/http"
	chatWS "omnixius-ai/internal/chat/delivery/websocket"
	"omnixius-ai/internal/middleware"
	"omnixius-ai/internal/test"
	"omnixius-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	serviceName    string
	allowedOrigins []string
	mw             middleware.Middleware

	// Chat domain
	chatHandler chatHTTP.Handler
	wsHandler   chatWS.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	ServiceName    string
	AllowedOrigins []string
	Middleware     middleware.Middleware

	// Chat domain
	ChatHandler chatHTTP.Handler
	WSHandler   chatWS.Handler

	// Test domain; nil disables /test routes
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		serviceName:    cfg.ServiceName,
		allowedOrigins: cfg.AllowedOrigins,
		mw:             cfg.Middleware,
		chatHandler:    cfg.ChatHandler,
		wsHandler:      cfg.WSHandler,
		testHandler:    cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
