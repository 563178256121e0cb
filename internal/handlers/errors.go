package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// respondError maps service errors onto the public error contract. Every
// body carries an "error" key.
func respondError(c *fiber.Ctx, err error) error {
	var upstreamErr *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrMissingInput):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})

	case errors.Is(err, services.ErrMissingCredential):
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Server is missing the LLM API key",
		})

	case errors.As(err, &upstreamErr):
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error:  "Upstream scoring request failed",
			Status: upstreamErr.StatusCode,
			Detail: upstreamErr.Body,
		})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:  "Analysis failed",
			Detail: err.Error(),
		})
	}
}
