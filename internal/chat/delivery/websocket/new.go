package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"omnixius-ai/internal/chat"
	"omnixius-ai/pkg/log"
)

// Handler serves chat over a WebSocket. Each frame is an independent chat request.
type Handler interface {
	Serve(c *gin.Context)
}

// Limiter spends one request from a client's budget. middleware.Middleware satisfies it.
type Limiter interface {
	AllowClient(key string) error
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	limiter  Limiter
	upgrader websocket.Upgrader
}

// New creates the WebSocket handler. Every frame is charged to the client's rate limit.
// allowedOrigins follows the CORS list: "*" or an empty list accepts every origin.
func New(l log.Logger, uc chat.UseCase, limiter Limiter, allowedOrigins []string) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		limiter: limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
