package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-chat-bot/config"
	_ "ai-chat-bot/docs" // Swagger docs
	"ai-chat-bot/internal/chat/usecase"
	"ai-chat-bot/internal/httpserver"
	"ai-chat-bot/internal/router"
	"ai-chat-bot/internal/session"
	"ai-chat-bot/pkg/llmprovider"
	"ai-chat-bot/pkg/log"
)

// @title       AI Chat Bot API
// @description Web chat front-end for a Groq-hosted language model, with keyword-triggered image and ER diagram placeholders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (fails when no API key can be found)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
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

	logger.Info(ctx, "Starting AI Chat Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion provider
	provider, err := llmprovider.NewProvider(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM provider: ", err)
		os.Exit(1)
	}
	llm := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, logger)
	logger.Infof(ctx, "LLM provider: %s model=%s timeout=%s", llm.Name(), llm.Model(), cfg.LLM.Timeout)

	// 4. Chat domain
	sessions := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL)
	keywordRouter := router.New()
	chatUC := usecase.New(logger, llm, keywordRouter, sessions)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUseCase: chatUC,
		Router:      keywordRouter,
		Model:       llm.Model(),
		UI:          cfg.UI,
		Session:     cfg.Session,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
