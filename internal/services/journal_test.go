package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/nido/internal/models"
)

func TestParseHabit(t *testing.T) {
	for _, raw := range []string{"supplements", "meditation", "exercise", " exercise "} {
		if _, err := ParseHabit(raw); err != nil {
			t.Errorf("ParseHabit(%q) unexpected error: %v", raw, err)
		}
	}

	if _, err := ParseHabit("doomscrolling"); !errors.Is(err, ErrUnknownHabit) {
		t.Fatalf("expected ErrUnknownHabit, got %v", err)
	}
}

func TestRecordHabitCompletion(t *testing.T) {
	record := models.DefaultAssessmentRecord()

	for day := 0; day < 3; day++ {
		if err := RecordHabitCompletion(&record, HabitSupplements); err != nil {
			t.Fatalf("RecordHabitCompletion() unexpected error: %v", err)
		}
	}
	if err := RecordHabitCompletion(&record, HabitMeditation); err != nil {
		t.Fatalf("RecordHabitCompletion() unexpected error: %v", err)
	}

	tracking := record.ProgressTracking
	if tracking.SupplementDays != 3 || tracking.MeditationDays != 1 || tracking.ExerciseDays != 0 {
		t.Fatalf("unexpected counters %+v", tracking)
	}

	if err := RecordHabitCompletion(&record, Habit("naps")); !errors.Is(err, ErrUnknownHabit) {
		t.Fatalf("expected ErrUnknownHabit, got %v", err)
	}
}

func TestAddJournalEntryPrependsNewestFirst(t *testing.T) {
	record := models.DefaultAssessmentRecord()

	if err := AddJournalEntry(&record, "2026-03-13", "retrieval went better than expected"); err != nil {
		t.Fatalf("AddJournalEntry() unexpected error: %v", err)
	}
	if err := AddJournalEntry(&record, "2026-03-14", "  feeling hopeful today  "); err != nil {
		t.Fatalf("AddJournalEntry() unexpected error: %v", err)
	}

	if len(record.JournalEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(record.JournalEntries))
	}
	if record.JournalEntries[0].Date != "2026-03-14" || record.JournalEntries[0].Text != "feeling hopeful today" {
		t.Fatalf("expected trimmed newest entry first, got %+v", record.JournalEntries[0])
	}
	if record.JournalEntries[1].Date != "2026-03-13" {
		t.Fatalf("expected older entry second, got %+v", record.JournalEntries[1])
	}
}

func TestAddJournalEntryRejectsBlankText(t *testing.T) {
	record := models.DefaultAssessmentRecord()

	if err := AddJournalEntry(&record, "2026-03-14", "   \n\t"); !errors.Is(err, ErrJournalEntryEmpty) {
		t.Fatalf("expected ErrJournalEntryEmpty, got %v", err)
	}
	if len(record.JournalEntries) != 0 {
		t.Fatalf("expected no entries, got %v", record.JournalEntries)
	}
}
