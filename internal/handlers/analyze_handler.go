package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	gateway  services.Gateway
	analyzer services.AnalyzerService
	log      *logrus.Logger
}

func NewAnalyzeHandler(
	gateway services.Gateway,
	analyzer services.AnalyzerService,
	log *logrus.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		gateway:  gateway,
		analyzer: analyzer,
		log:      log,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	input, err := h.gateway.Accept(req)
	if err != nil {
		h.log.WithError(err).WithField("request_id", requestID(c)).Warn("Analysis request rejected")
		return respondError(c, err)
	}

	ctx := services.WithRequestID(c.UserContext(), requestID(c))

	result, err := h.analyzer.Analyze(ctx, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
