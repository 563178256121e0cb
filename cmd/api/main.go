package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/server"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	appLog := logger.New(cfg.Log.Level, cfg.Log.Format)
	appLog.WithField("env", cfg.Server.Env).Info("✅ Config loaded successfully")

	if !cfg.LLM.HasAPIKey() {
		appLog.Warn("⚠️  LLM_API_KEY is not set, /analyze will return 500 until it is configured")
	}

	// Initialize LLM client
	completer, err := services.NewCompleter(&cfg.LLM, appLog)
	if err != nil {
		appLog.Fatalf("❌ Failed to initialize LLM client: %v", err)
	}
	appLog.WithFields(logrus.Fields{
		"provider":           cfg.LLM.Provider,
		"scoring_model":      cfg.LLM.ScoringModel,
		"cover_letter_chain": cfg.LLM.CoverLetterModels,
	}).Info("✅ LLM client initialized successfully")

	// Initialize services
	gateway := services.NewGateway(cfg.LLM.APIKey)
	analyzer := services.NewAnalyzerService(
		completer,
		cfg.LLM.ScoringModel,
		cfg.LLM.CoverLetterModels,
		appLog,
	)
	appLog.Info("✅ Services initialized successfully")

	app := server.New(cfg, gateway, analyzer, appLog)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		appLog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			appLog.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLog.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		appLog.Fatalf("❌ Failed to start server: %v", err)
	}
}
