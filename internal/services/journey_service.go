package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/terraincognita07/nido/internal/models"
)

type JourneyRepository interface {
	FindPayloadByEmail(email string) (string, bool, error)
	SavePayload(email string, payload string) error
}

type JourneyService struct {
	journeys JourneyRepository
	now      func() time.Time
}

func NewJourneyService(journeys JourneyRepository, now func() time.Time) *JourneyService {
	if now == nil {
		now = time.Now
	}
	return &JourneyService{journeys: journeys, now: now}
}

// Load returns the identity's snapshot. It is total: a missing row, a read
// failure, or a corrupt payload all degrade to defaults so a bad record can
// never lock a user out.
func (service *JourneyService) Load(email string) models.JourneySnapshot {
	payload, found, err := service.journeys.FindPayloadByEmail(email)
	if err != nil {
		log.Printf("journey load failed for %s: %v", email, err)
		return models.DefaultSnapshot()
	}
	if !found {
		return models.DefaultSnapshot()
	}
	return DecodeSnapshot(payload)
}

// Save stamps lastUpdated and overwrites the stored snapshot wholesale.
// Write failures are logged and swallowed: the in-memory state remains the
// source of truth for the session even when durability fails.
func (service *JourneyService) Save(email string, snapshot models.JourneySnapshot) models.JourneySnapshot {
	snapshot.LastUpdated = service.now().UTC().Format(time.RFC3339)

	serialized, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("journey encode failed for %s: %v", email, err)
		return snapshot
	}
	if err := service.journeys.SavePayload(email, string(serialized)); err != nil {
		log.Printf("journey save failed for %s: %v", email, err)
	}
	return snapshot
}

// DecodeSnapshot parses a stored payload over a default-initialized snapshot,
// so fields absent from older payloads independently keep their defaults.
// Unparseable payloads fall back to defaults entirely.
func DecodeSnapshot(payload string) models.JourneySnapshot {
	snapshot := models.DefaultSnapshot()
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		log.Printf("journey payload unreadable, using defaults: %v", err)
		return models.DefaultSnapshot()
	}
	return NormalizeSnapshot(snapshot)
}

// NormalizeSnapshot repairs out-of-range values a stored payload may carry
// after schema drift. Unknown enum values reset to defaults; counters never
// go negative; nil sets become empty.
func NormalizeSnapshot(snapshot models.JourneySnapshot) models.JourneySnapshot {
	switch snapshot.Step {
	case models.StepWelcome, models.StepAssessment, models.StepDashboard:
	default:
		snapshot.Step = models.StepWelcome
	}

	if snapshot.Section < models.SectionMin {
		snapshot.Section = models.SectionMin
	}
	if snapshot.Section > models.SectionMax {
		snapshot.Section = models.SectionMax
	}

	switch snapshot.ActiveTab {
	case models.TabPlan, models.TabToday, models.TabProgress, models.TabAnswers, models.TabJournal, models.TabCommunity:
	default:
		snapshot.ActiveTab = models.TabPlan
	}

	snapshot.Data = normalizeRecord(snapshot.Data)
	return snapshot
}

func normalizeRecord(record models.AssessmentRecord) models.AssessmentRecord {
	if record.DoctorComments == nil {
		record.DoctorComments = []string{}
	}
	if record.KnownFactors == nil {
		record.KnownFactors = []string{}
	}
	if record.CurrentApproach == nil {
		record.CurrentApproach = []string{}
	}
	if record.JournalEntries == nil {
		record.JournalEntries = []models.JournalEntry{}
	}

	if record.ProgressTracking.SupplementDays < 0 {
		record.ProgressTracking.SupplementDays = 0
	}
	if record.ProgressTracking.MeditationDays < 0 {
		record.ProgressTracking.MeditationDays = 0
	}
	if record.ProgressTracking.ExerciseDays < 0 {
		record.ProgressTracking.ExerciseDays = 0
	}

	return record
}
