package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/nido/internal/db"
	"github.com/terraincognita07/nido/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	secretKey      []byte
	location       *time.Location
	cookieSecure   bool
	codeVerifier   services.CodeVerifier
	repositories   *db.Repositories
	journeyService *services.JourneyService
	checkins       *checkinTracker
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

// timeNow is swapped in tests to pin journal entry dates.
var timeNow = time.Now

func NewHandler(database *gorm.DB, secret string, codeVerifier services.CodeVerifier, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if codeVerifier == nil {
		return nil, errors.New("access code verifier is required")
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		codeVerifier: codeVerifier,
		checkins:     newCheckinTracker(),
	}
	handler.ensureDependencies()
	return handler, nil
}
