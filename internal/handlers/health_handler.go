package handlers

import (
	"runtime"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type HealthHandler struct {
	port string
	llm  config.LLMConfig
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		port: cfg.Server.Port,
		llm:  cfg.LLM,
	}
}

// HandleHealth reports liveness and whether a credential is configured. Only
// a short prefix of the key is ever exposed.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:       "ok",
		Port:         h.port,
		HasAPIKey:    h.llm.HasAPIKey(),
		APIKeyPrefix: h.llm.APIKeyPrefix(),
		Runtime:      runtime.Version(),
	})
}
