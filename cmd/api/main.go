package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"omnixius-ai/config"
	_ "omnixius-ai/docs" // Swagger docs
	chatHTTP "omnixius-ai/internal/chat/delivery/http"
	chatWS "omnixius-ai/internal/chat/delivery/websocket"
	chatUC "omnixius-ai/internal/chat/usecase"
	"omnixius-ai/internal/gateway"
	"omnixius-ai/internal/httpserver"
	"omnixius-ai/internal/middleware"
	"omnixius-ai/internal/router"
	"omnixius-ai/internal/test"
	"omnixius-ai/pkg/backend"
	"omnixius-ai/pkg/log"
)

// @title       Omnixius AI Chat API
// @description Multilingual chat front door for the marketplace: intent routing plus backend order and conversation actions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Omnixius AI chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Intent router
	lexicon, err := loadLexicon(cfg.Router.LexiconPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load lexicon: %v", err)
		os.Exit(1)
	}
	intentRouter, err := router.New(lexicon, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build intent router: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Intent router ready: %v", intentRouter.Intents())

	// 4. Backend gateway
	backendClient := backend.New(backend.Config{Timeout: cfg.Backend.Timeout})
	gw := gateway.New(backendClient, logger)

	// 5. Chat domain
	uc := chatUC.New(intentRouter, gw, logger, cfg.Chat.ModelTag)
	mw := middleware.New(logger, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
	})

	var testHandler test.Handler
	if cfg.TestEndpoints.Enabled {
		testHandler = test.New(logger, intentRouter)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ServiceName:    cfg.Chat.ServiceName,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Middleware:     mw,
		ChatHandler:    chatHTTP.New(logger, uc),
		WSHandler:      chatWS.New(logger, uc, mw, cfg.CORS.AllowedOrigins),
		TestHandler:    testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func loadLexicon(path string) (router.Lexicon, error) {
	if path == "" {
		return router.DefaultLexicon()
	}
	return router.LoadLexicon(path)
}
