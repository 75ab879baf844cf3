package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-ai-agent/config"
	_ "voice-ai-agent/docs" // Swagger docs
	chatHTTP "voice-ai-agent/internal/chat/delivery/http"
	"voice-ai-agent/internal/chat/usecase"
	"voice-ai-agent/internal/history"
	"voice-ai-agent/internal/httpserver"
	"voice-ai-agent/internal/middleware"
	"voice-ai-agent/pkg/assemblyai"
	"voice-ai-agent/pkg/gemini"
	"voice-ai-agent/pkg/log"
	"voice-ai-agent/pkg/murf"
)

// @title       Voice AI Agent API
// @description Session-oriented voice chat backend bridging speech-to-text, LLM generation, and speech synthesis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Voice AI Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "History dir: %s (limit %d)", cfg.History.Dir, cfg.History.Limit)

	// 3. Session history
	store, err := history.New(logger, history.Config{
		Dir:       cfg.History.Dir,
		Limit:     cfg.History.Limit,
		CacheSize: cfg.History.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize history store: ", err)
		return
	}
	locks := history.NewLockRegistry()

	// 4. Vendor clients
	sttClient := assemblyai.NewClient(cfg.STT.APIKey)
	llmClient := gemini.NewClient(cfg.LLM.APIKey, cfg.LLM.Model)
	ttsClient := murf.NewClient(cfg.TTS.APIKey)

	// 5. Chat domain
	chatUC := usecase.New(logger, sttClient, llmClient, ttsClient, store, locks, usecase.Config{
		PromptCharBudget: cfg.Prompt.CharBudget,
		TTSCharLimit:     cfg.TTS.CharLimit,
		VoiceID:          cfg.TTS.VoiceID,
	})
	chatHandler := chatHTTP.New(logger, chatUC)

	mw := middleware.New(logger, middleware.Config{
		AllowedOrigins:          cfg.CORS.AllowedOrigins,
		GenerateRateLimitPerMin: cfg.RateLimit.GeneratePerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
