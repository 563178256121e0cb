package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"3000"`
	Env          string        `envconfig:"ENV" default:"development"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	BodyLimit    int           `envconfig:"SERVER_BODY_LIMIT" default:"4194304"`
	AllowOrigins string        `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// LLMConfig holds the upstream credential and model selection. APIKey may be
// empty at startup; requests are rejected until it is configured.
type LLMConfig struct {
	Provider          string   `envconfig:"LLM_PROVIDER" default:"openai"`
	APIKey            string   `envconfig:"LLM_API_KEY"`
	BaseURL           string   `envconfig:"LLM_BASE_URL" default:"https://openrouter.ai/api/v1"`
	GeminiBaseURL     string   `envconfig:"GEMINI_BASE_URL"`
	ScoringModel      string   `envconfig:"LLM_SCORING_MODEL" default:"openai/gpt-4o-mini"`
	CoverLetterModels []string `envconfig:"LLM_COVER_LETTER_MODELS" default:"meta-llama/llama-3.3-70b-instruct,mistralai/mistral-small-3.1-24b-instruct,google/gemma-3-27b-it"`
	RequestsPerMinute int      `envconfig:"LLM_REQUESTS_PER_MINUTE" default:"0"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)
	cfg.LLM.CoverLetterModels = compact(cfg.LLM.CoverLetterModels)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}

	if strings.TrimSpace(c.LLM.ScoringModel) == "" {
		return fmt.Errorf("LLM_SCORING_MODEL must not be empty")
	}

	if len(c.LLM.CoverLetterModels) == 0 {
		return fmt.Errorf("LLM_COVER_LETTER_MODELS must list at least one model")
	}

	return nil
}

func (c *LLMConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// APIKeyPrefix returns the first four characters of the key, or an empty
// string when the key is too short to reveal a prefix without exposing it.
func (c *LLMConfig) APIKeyPrefix() string {
	key := []rune(c.APIKey)
	if len(key) <= 4 {
		return ""
	}
	return string(key[:4])
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
