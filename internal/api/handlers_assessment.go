package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nido/internal/models"
	"github.com/terraincognita07/nido/internal/services"
)

// assessmentUpdateInput uses pointers so a partial update only touches the
// answers the request carries.
type assessmentUpdateInput struct {
	Age           *string `json:"age" form:"age"`
	Cycles        *string `json:"cycles" form:"cycles"`
	Stage         *string `json:"stage" form:"stage"`
	EmbryoOutcome *string `json:"embryo_outcome" form:"embryo_outcome"`
	HighStress    *string `json:"high_stress" form:"high_stress"`
	BiggestFear   *string `json:"biggest_fear" form:"biggest_fear"`
}

type toggleInput struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

type pregnancyInput struct {
	Flag string `json:"flag" form:"flag"`
}

func (handler *Handler) UpdateAssessment(c *fiber.Ctx) error {
	input := assessmentUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		return applyAssessmentUpdate(&snapshot.Data, input)
	})
}

func applyAssessmentUpdate(record *models.AssessmentRecord, input assessmentUpdateInput) error {
	if input.Age != nil {
		if err := services.SetAge(record, *input.Age); err != nil {
			return err
		}
	}
	if input.Cycles != nil {
		if err := services.SetCycles(record, *input.Cycles); err != nil {
			return err
		}
	}
	if input.Stage != nil {
		if err := services.SetStage(record, *input.Stage); err != nil {
			return err
		}
	}
	if input.EmbryoOutcome != nil {
		if err := services.SetEmbryoOutcome(record, *input.EmbryoOutcome); err != nil {
			return err
		}
	}
	if input.HighStress != nil {
		if err := services.SetHighStress(record, *input.HighStress); err != nil {
			return err
		}
	}
	if input.BiggestFear != nil {
		services.SetBiggestFear(record, *input.BiggestFear)
	}
	return nil
}

func (handler *Handler) ToggleAssessmentOption(c *fiber.Ctx) error {
	input := toggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		return services.ToggleMultiSelect(&snapshot.Data, services.MultiSelectField(input.Field), input.Value)
	})
}

func (handler *Handler) TogglePregnancyFlag(c *fiber.Ctx) error {
	input := pregnancyInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	return handler.applyTransition(c, func(snapshot *models.JourneySnapshot) error {
		return services.TogglePregnancyFlag(&snapshot.Data, input.Flag)
	})
}
