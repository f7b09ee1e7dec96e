package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/nido/internal/models"
)

var (
	ErrJournalEntryEmpty = errors.New("journal entry empty")
	ErrUnknownHabit      = errors.New("unknown habit")
)

// Habit names one of the daily check-in toggles.
type Habit string

const (
	HabitSupplements Habit = "supplements"
	HabitMeditation  Habit = "meditation"
	HabitExercise    Habit = "exercise"
)

func ParseHabit(raw string) (Habit, error) {
	switch Habit(strings.TrimSpace(raw)) {
	case HabitSupplements:
		return HabitSupplements, nil
	case HabitMeditation:
		return HabitMeditation, nil
	case HabitExercise:
		return HabitExercise, nil
	default:
		return "", ErrUnknownHabit
	}
}

// RecordHabitCompletion bumps the habit's streak counter. Counters only ever
// grow: unchecking a habit later in the day does not take the credit back.
func RecordHabitCompletion(record *models.AssessmentRecord, habit Habit) error {
	switch habit {
	case HabitSupplements:
		record.ProgressTracking.SupplementDays++
	case HabitMeditation:
		record.ProgressTracking.MeditationDays++
	case HabitExercise:
		record.ProgressTracking.ExerciseDays++
	default:
		return ErrUnknownHabit
	}
	return nil
}

// AddJournalEntry prepends a trimmed entry, newest first.
func AddJournalEntry(record *models.AssessmentRecord, date string, text string) error {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return ErrJournalEntryEmpty
	}

	entry := models.JournalEntry{Date: date, Text: cleaned}
	record.JournalEntries = append([]models.JournalEntry{entry}, record.JournalEntries...)
	return nil
}
