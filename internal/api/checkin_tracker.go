package api

import (
	"sync"

	"github.com/terraincognita07/nido/internal/services"
)

// CheckinState mirrors the three toggles of one identity's current session.
type CheckinState struct {
	Supplements bool `json:"supplements"`
	Meditation  bool `json:"meditation"`
	Exercise    bool `json:"exercise"`
}

// checkinTracker keeps today's toggles in memory only. A restart clears it,
// which is the intended session scoping: the persisted record keeps the
// counter increments, never the toggles themselves.
type checkinTracker struct {
	mu       sync.Mutex
	sessions map[string]CheckinState
}

func newCheckinTracker() *checkinTracker {
	return &checkinTracker{
		sessions: make(map[string]CheckinState),
	}
}

// apply sets the habit toggle and reports whether a false-to-true transition
// happened, which is the only event that earns streak credit.
func (tracker *checkinTracker) apply(email string, habit services.Habit, done bool) bool {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	state := tracker.sessions[email]
	previous := habitValue(state, habit)
	if previous == done {
		return false
	}

	tracker.sessions[email] = withHabitValue(state, habit, done)
	return done && !previous
}

func (tracker *checkinTracker) state(email string) CheckinState {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.sessions[email]
}

func (tracker *checkinTracker) reset(email string) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	delete(tracker.sessions, email)
}

func habitValue(state CheckinState, habit services.Habit) bool {
	switch habit {
	case services.HabitSupplements:
		return state.Supplements
	case services.HabitMeditation:
		return state.Meditation
	default:
		return state.Exercise
	}
}

func withHabitValue(state CheckinState, habit services.Habit, done bool) CheckinState {
	switch habit {
	case services.HabitSupplements:
		state.Supplements = done
	case services.HabitMeditation:
		state.Meditation = done
	case services.HabitExercise:
		state.Exercise = done
	}
	return state
}
