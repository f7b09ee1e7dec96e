package db

import (
	"path/filepath"
	"testing"
)

func TestJourneyRepositoryUpsertRoundTrip(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "nido-repo.db"))
	repo := NewJourneyRepository(database)

	payload, found, err := repo.FindPayloadByEmail("a@example.com")
	if err != nil {
		t.Fatalf("find before save: %v", err)
	}
	if found || payload != "" {
		t.Fatalf("expected no row yet, got found=%v payload=%q", found, payload)
	}

	if err := repo.SavePayload("a@example.com", `{"step":"welcome"}`); err != nil {
		t.Fatalf("save new payload: %v", err)
	}
	if err := repo.SavePayload("a@example.com", `{"step":"dashboard"}`); err != nil {
		t.Fatalf("overwrite payload: %v", err)
	}

	payload, found, err = repo.FindPayloadByEmail("a@example.com")
	if err != nil {
		t.Fatalf("find after save: %v", err)
	}
	if !found || payload != `{"step":"dashboard"}` {
		t.Fatalf("expected latest payload, got found=%v payload=%q", found, payload)
	}

	count, err := repo.CountJourneys()
	if err != nil {
		t.Fatalf("count journeys: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after overwrite, got %d", count)
	}
}

func TestJourneyRepositoryExistsByEmail(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "nido-exists.db"))
	repo := NewJourneyRepository(database)

	exists, err := repo.ExistsByEmail("a@example.com")
	if err != nil {
		t.Fatalf("exists before save: %v", err)
	}
	if exists {
		t.Fatal("expected no row yet")
	}

	if err := repo.SavePayload("a@example.com", "{}"); err != nil {
		t.Fatalf("save payload: %v", err)
	}

	exists, err = repo.ExistsByEmail("a@example.com")
	if err != nil {
		t.Fatalf("exists after save: %v", err)
	}
	if !exists {
		t.Fatal("expected row after save")
	}

	exists, err = repo.ExistsByEmail("b@example.com")
	if err != nil {
		t.Fatalf("exists other identity: %v", err)
	}
	if exists {
		t.Fatal("expected other identity to have no row")
	}
}
