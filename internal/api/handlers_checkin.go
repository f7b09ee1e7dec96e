package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nido/internal/services"
)

type checkinInput struct {
	Habit string `json:"habit" form:"habit"`
	Done  bool   `json:"done" form:"done"`
}

// UpdateCheckin flips one habit toggle. Credit is a ratchet: only the
// false-to-true edge increments the persisted counter, and unchecking never
// decrements it.
func (handler *Handler) UpdateCheckin(c *fiber.Ctx) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := checkinInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := services.ParseHabit(input.Habit)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown habit")
	}

	snapshot := handler.journeyService.Load(email)
	if handler.checkins.apply(email, habit, input.Done) {
		if err := services.RecordHabitCompletion(&snapshot.Data, habit); err != nil {
			return apiError(c, fiber.StatusBadRequest, "unknown habit")
		}
		snapshot = handler.journeyService.Save(email, snapshot)
	}

	return c.JSON(fiber.Map{
		"checkin":  handler.checkins.state(email),
		"progress": snapshot.Data.ProgressTracking,
	})
}

func (handler *Handler) GetCheckin(c *fiber.Ctx) error {
	email, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.journeyService.Load(email)
	return c.JSON(fiber.Map{
		"checkin":  handler.checkins.state(email),
		"progress": snapshot.Data.ProgressTracking,
	})
}
