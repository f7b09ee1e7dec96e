package db

import (
	"github.com/terraincognita07/nido/internal/models"
	"gorm.io/gorm"
)

type JourneyRepository struct {
	database *gorm.DB
}

func NewJourneyRepository(database *gorm.DB) *JourneyRepository {
	return &JourneyRepository{database: database}
}

func (repo *JourneyRepository) FindPayloadByEmail(email string) (string, bool, error) {
	journey := models.Journey{}
	result := repo.database.
		Select("id", "email", "payload").
		Where("email = ?", email).
		Limit(1).
		Find(&journey)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return journey.Payload, true, nil
}

func (repo *JourneyRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Journey{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// SavePayload overwrites the identity's snapshot wholesale. Each identity has
// a single writer, so the update-then-create probe needs no locking.
func (repo *JourneyRepository) SavePayload(email string, payload string) error {
	result := repo.database.Model(&models.Journey{}).
		Where("email = ?", email).
		Update("payload", payload)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	return repo.database.Create(&models.Journey{Email: email, Payload: payload}).Error
}

func (repo *JourneyRepository) CountJourneys() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Journey{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
