package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/config"
)

// Completer sends one chat-style prompt to a model and returns its text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	// JSONMode asks the upstream for a machine-parseable object.
	JSONMode    bool
	Temperature float64
	MaxTokens   int64
}

// NewCompleter builds the provider selected in cfg, wrapped in a rate
// limiter when one is configured.
func NewCompleter(cfg *config.LLMConfig, log *logrus.Logger) (Completer, error) {
	var (
		completer Completer
		err       error
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		completer, err = NewGeminiCompleter(cfg.APIKey, cfg.GeminiBaseURL)
	case config.ProviderOpenAI, "":
		completer = NewOpenAICompleter(cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RequestsPerMinute > 0 {
		log.WithField("rpm", cfg.RequestsPerMinute).Info("LLM rate limiter enabled")
		completer = NewRateLimitedCompleter(completer, cfg.RequestsPerMinute)
	}

	return completer, nil
}
