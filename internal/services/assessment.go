package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/nido/internal/models"
)

var (
	ErrAssessmentIncomplete = errors.New("assessment incomplete")
	ErrUnknownStage         = errors.New("unknown stage")
	ErrUnknownOutcome       = errors.New("unknown embryo outcome")
	ErrUnknownStressLevel   = errors.New("unknown stress level")
	ErrUnknownTab           = errors.New("unknown tab")
	ErrUnknownToggleField   = errors.New("unknown toggle field")
	ErrUnknownToggleValue   = errors.New("unknown toggle value")
	ErrUnknownPregnancyFlag = errors.New("unknown pregnancy flag")
	ErrValueNotNumeric      = errors.New("value must be numeric or empty")
)

// MultiSelectField names the three set-valued answers a user can toggle.
type MultiSelectField string

const (
	FieldDoctorComments  MultiSelectField = "doctorComments"
	FieldKnownFactors    MultiSelectField = "knownFactors"
	FieldCurrentApproach MultiSelectField = "currentApproach"
)

var multiSelectValues = map[MultiSelectField]map[string]bool{
	FieldDoctorComments: {
		models.CommentUnexplained: true,
		models.CommentNormal:      true,
		models.CommentEggQuality:  true,
		models.CommentMaleFactor:  true,
	},
	FieldKnownFactors: {
		models.FactorEndometriosis: true,
		models.FactorPCOS:          true,
		models.FactorLowAMH:        true,
		models.FactorAutoimmune:    true,
		models.FactorThyroid:       true,
	},
	FieldCurrentApproach: {
		models.ApproachSupplements: true,
		models.ApproachDiet:        true,
		models.ApproachEverything:  true,
		models.ApproachUnsure:      true,
	},
}

func BeginAssessment(snapshot *models.JourneySnapshot) {
	if snapshot.Step == models.StepWelcome {
		snapshot.Step = models.StepAssessment
		snapshot.Section = models.SectionMin
	}
}

func AdvanceSection(snapshot *models.JourneySnapshot) {
	if snapshot.Step != models.StepAssessment {
		return
	}
	if snapshot.Section < models.SectionMax {
		snapshot.Section++
	}
}

func RegressSection(snapshot *models.JourneySnapshot) {
	if snapshot.Step != models.StepAssessment {
		return
	}
	if snapshot.Section > models.SectionMin {
		snapshot.Section--
	}
}

// AssessmentComplete reports whether the record satisfies the sole structural
// invariant gating the dashboard: stage and embryo outcome both answered.
func AssessmentComplete(record models.AssessmentRecord) bool {
	return record.Stage != "" && record.EmbryoOutcome != ""
}

// CompleteAssessment moves the journey to the dashboard. An incomplete
// record withholds progression without touching the snapshot.
func CompleteAssessment(snapshot *models.JourneySnapshot) error {
	if !AssessmentComplete(snapshot.Data) {
		return ErrAssessmentIncomplete
	}
	snapshot.Step = models.StepDashboard
	snapshot.ActiveTab = models.TabPlan
	return nil
}

func ReopenAssessment(snapshot *models.JourneySnapshot) {
	if snapshot.Step == models.StepDashboard {
		snapshot.Step = models.StepAssessment
	}
}

// ResetNavigation returns the chrome to the welcome screen on logout. The
// assessment data itself stays persisted.
func ResetNavigation(snapshot *models.JourneySnapshot) {
	snapshot.Step = models.StepWelcome
	snapshot.Section = models.SectionMin
	snapshot.ActiveTab = models.TabPlan
}

func SelectTab(snapshot *models.JourneySnapshot, tab string) error {
	switch tab {
	case models.TabPlan, models.TabToday, models.TabProgress, models.TabAnswers, models.TabJournal, models.TabCommunity:
		snapshot.ActiveTab = tab
		return nil
	default:
		return ErrUnknownTab
	}
}

func SetStage(record *models.AssessmentRecord, stage string) error {
	switch stage {
	case models.StagePreparing, models.StageBetween, models.StageTransfer:
		record.Stage = stage
		return nil
	default:
		return ErrUnknownStage
	}
}

func SetEmbryoOutcome(record *models.AssessmentRecord, outcome string) error {
	switch outcome {
	case models.OutcomeNotYet, models.OutcomePoorFertilisation, models.OutcomeEarlyArrest,
		models.OutcomeFewBlast, models.OutcomeFailedImplantation:
		record.EmbryoOutcome = outcome
		return nil
	default:
		return ErrUnknownOutcome
	}
}

func SetHighStress(record *models.AssessmentRecord, level string) error {
	switch level {
	case models.StressYes, models.StressNo:
		record.HighStress = level
		return nil
	default:
		return ErrUnknownStressLevel
	}
}

func SetAge(record *models.AssessmentRecord, value string) error {
	cleaned, err := normalizeNumericAnswer(value)
	if err != nil {
		return err
	}
	record.Age = cleaned
	return nil
}

func SetCycles(record *models.AssessmentRecord, value string) error {
	cleaned, err := normalizeNumericAnswer(value)
	if err != nil {
		return err
	}
	record.Cycles = cleaned
	return nil
}

func SetBiggestFear(record *models.AssessmentRecord, text string) {
	record.BiggestFear = strings.TrimSpace(text)
}

// ToggleMultiSelect flips membership of value in the named set: present
// removes, absent appends. Insertion order is irrelevant downstream.
func ToggleMultiSelect(record *models.AssessmentRecord, field MultiSelectField, value string) error {
	allowed, ok := multiSelectValues[field]
	if !ok {
		return ErrUnknownToggleField
	}
	if !allowed[value] {
		return ErrUnknownToggleValue
	}

	target := multiSelectTarget(record, field)
	for index, existing := range *target {
		if existing == value {
			*target = append((*target)[:index], (*target)[index+1:]...)
			return nil
		}
	}
	*target = append(*target, value)
	return nil
}

func multiSelectTarget(record *models.AssessmentRecord, field MultiSelectField) *[]string {
	switch field {
	case FieldDoctorComments:
		return &record.DoctorComments
	case FieldKnownFactors:
		return &record.KnownFactors
	default:
		return &record.CurrentApproach
	}
}

func TogglePregnancyFlag(record *models.AssessmentRecord, flag string) error {
	switch flag {
	case "chemical":
		record.Pregnancies.Chemical = !record.Pregnancies.Chemical
	case "miscarriage":
		record.Pregnancies.Miscarriage = !record.Pregnancies.Miscarriage
	case "liveBirth":
		record.Pregnancies.LiveBirth = !record.Pregnancies.LiveBirth
	case "none":
		record.Pregnancies.None = !record.Pregnancies.None
	default:
		return ErrUnknownPregnancyFlag
	}
	return nil
}

func normalizeNumericAnswer(value string) (string, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return "", nil
	}
	for _, character := range cleaned {
		if character < '0' || character > '9' {
			return "", ErrValueNotNumeric
		}
	}
	return cleaned, nil
}

func HasKnownFactor(record models.AssessmentRecord, factor string) bool {
	for _, existing := range record.KnownFactors {
		if existing == factor {
			return true
		}
	}
	return false
}
