package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	journey := api.Group("/journey", handler.AuthRequired)
	journey.Get("", handler.GetJourney)
	journey.Get("/plan", handler.GetPlan)
	journey.Post("/begin", handler.BeginAssessment)
	journey.Post("/section/continue", handler.ContinueSection)
	journey.Post("/section/back", handler.BackSection)
	journey.Post("/complete", handler.CompleteAssessment)
	journey.Post("/reopen", handler.ReopenAssessment)
	journey.Post("/tab", handler.SelectTab)

	assessment := api.Group("/assessment", handler.AuthRequired)
	assessment.Post("", handler.UpdateAssessment)
	assessment.Post("/toggle", handler.ToggleAssessmentOption)
	assessment.Post("/pregnancy", handler.TogglePregnancyFlag)

	checkin := api.Group("/checkin", handler.AuthRequired)
	checkin.Get("", handler.GetCheckin)
	checkin.Post("", handler.UpdateCheckin)

	api.Post("/journal", handler.AuthRequired, handler.AddJournalEntry)
}
