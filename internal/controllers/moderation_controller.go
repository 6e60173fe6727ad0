package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Priyankg101/content-moderator/pkg/domain"
	"github.com/Priyankg101/content-moderator/pkg/moderation"
)

// ModerationController exposes the moderation pipeline over HTTP.
type ModerationController struct {
	pipeline *moderation.Pipeline
}

func NewModerationController(pipeline *moderation.Pipeline) *ModerationController {
	return &ModerationController{pipeline: pipeline}
}

type ModerateRequest struct {
	Items       []domain.ContentItem `json:"items"`
	Policies    *domain.PolicyConfig `json:"policies,omitempty"`
	Sensitivity domain.Sensitivity   `json:"sensitivity,omitempty"`
}

// Moderate handles POST /moderate. The pipeline itself never fails; the only
// error responses here are for malformed requests.
func (c *ModerationController) Moderate(ctx fiber.Ctx) error {
	var req ModerateRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if len(req.Items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "items is required",
		})
	}

	if req.Sensitivity == "" {
		req.Sensitivity = domain.SensitivityMedium
	}

	result := c.pipeline.Moderate(ctx.RequestCtx(), req.Items, req.Policies, req.Sensitivity)

	return ctx.Status(fiber.StatusOK).JSON(result)
}
