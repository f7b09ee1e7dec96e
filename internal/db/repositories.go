package db

import "gorm.io/gorm"

type Repositories struct {
	Journeys *JourneyRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Journeys: NewJourneyRepository(database),
	}
}
