package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nido/internal/models"
	"github.com/terraincognita07/nido/internal/services"
)

type loginInput struct {
	Email      string `json:"email" form:"email"`
	AccessCode string `json:"access_code" form:"access_code"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, err := services.ResolveIdentity(input.Email, input.AccessCode, handler.codeVerifier)
	if err != nil {
		if errors.Is(err, services.ErrAccessCodeRejected) {
			// The email survives the failed attempt so the client can keep
			// it in the form; only the code must be re-entered.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "incorrect access code",
				"email": strings.TrimSpace(input.Email),
			})
		}
		return apiError(c, fiber.StatusBadRequest, "enter a valid email and access code")
	}

	handler.ensureDependencies()
	snapshot := handler.ensureJourneyExists(email)

	if err := handler.setAuthCookie(c, email, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"email": email, "journey": snapshot})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if email, ok := currentIdentity(c); ok {
		snapshot := handler.journeyService.Load(email)
		services.ResetNavigation(&snapshot)
		handler.journeyService.Save(email, snapshot)
		handler.checkins.reset(email)
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ensureJourneyExists creates the identity's snapshot row on first login so
// every later load sees a record. Creation failure degrades to the in-memory
// default, consistent with the store's availability-first contract.
func (handler *Handler) ensureJourneyExists(email string) models.JourneySnapshot {
	exists, err := handler.repositories.Journeys.ExistsByEmail(email)
	if err != nil {
		log.Printf("journey existence check failed for %s: %v", email, err)
		return handler.journeyService.Load(email)
	}
	if exists {
		return handler.journeyService.Load(email)
	}
	return handler.journeyService.Save(email, models.DefaultSnapshot())
}
