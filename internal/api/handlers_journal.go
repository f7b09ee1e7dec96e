package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nido/internal/models"
	"github.com/terraincognita07/nido/internal/services"
)

type journalInput struct {
	Text string `json:"text" form:"text"`
}

func (handler *Handler) AddJournalEntry(c *fiber.Ctx) error {
	input := journalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entryDate := handler.journalEntryDate()
	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		if err := services.AddJournalEntry(&snapshot.Data, entryDate, input.Text); err != nil {
			if errors.Is(err, services.ErrJournalEntryEmpty) {
				return errors.New("journal entry is empty")
			}
			return err
		}
		return nil
	})
}

func (handler *Handler) journalEntryDate() string {
	return timeNow().In(handler.location).Format("2006-01-02")
}
