package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nido/internal/models"
	"github.com/terraincognita07/nido/internal/services"
)

type tabInput struct {
	Tab string `json:"tab" form:"tab"`
}

func (handler *Handler) GetJourney(c *fiber.Ctx) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(handler.journeyService.Load(email))
}

// GetPlan recomputes the analysis and supplement protocol from the stored
// answers on every request; nothing derived is ever persisted.
func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.journeyService.Load(email)
	return c.JSON(fiber.Map{
		"analysis":    services.Analyze(snapshot.Data),
		"supplements": services.GenerateSupplements(snapshot.Data),
		"complete":    services.AssessmentComplete(snapshot.Data),
	})
}

func (handler *Handler) BeginAssessment(c *fiber.Ctx) error {
	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		services.BeginAssessment(snapshot)
		return nil
	})
}

func (handler *Handler) ContinueSection(c *fiber.Ctx) error {
	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		services.AdvanceSection(snapshot)
		return nil
	})
}

func (handler *Handler) BackSection(c *fiber.Ctx) error {
	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		services.RegressSection(snapshot)
		return nil
	})
}

func (handler *Handler) CompleteAssessment(c *fiber.Ctx) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.journeyService.Load(email)
	if err := services.CompleteAssessment(&snapshot); err != nil {
		if errors.Is(err, services.ErrAssessmentIncomplete) {
			return apiError(c, fiber.StatusConflict, "assessment incomplete")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to complete assessment")
	}

	return c.JSON(handler.journeyService.Save(email, snapshot))
}

func (handler *Handler) ReopenAssessment(c *fiber.Ctx) error {
	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		services.ReopenAssessment(snapshot)
		return nil
	})
}

func (handler *Handler) SelectTab(c *fiber.Ctx) error {
	input := tabInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		return services.SelectTab(snapshot, input.Tab)
	})
}

// applyTransition runs load -> pure transition -> persist and answers with
// the saved snapshot. A transition error leaves the stored state untouched.
func (handler *Handler) applyTransition(c *fiber.Ctx, transition func(snapshot *models.JourneySnapshot) error) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.journeyService.Load(email)
	if err := transition(&snapshot); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(handler.journeyService.Save(email, snapshot))
}
