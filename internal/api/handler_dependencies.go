package api

import (
	"time"

	"github.com/terraincognita07/nido/internal/db"
	"github.com/terraincognita07/nido/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.journeyService == nil {
		handler.journeyService = services.NewJourneyService(handler.repositories.Journeys, time.Now)
	}
	if handler.checkins == nil {
		handler.checkins = newCheckinTracker()
	}
}
