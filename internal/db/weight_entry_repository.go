package db

import (
	"time"

	"github.com/StephanBK/sloth/internal/models"
	"gorm.io/gorm"
)

type WeightEntryRepository struct {
	database *gorm.DB
}

func NewWeightEntryRepository(database *gorm.DB) *WeightEntryRepository {
	return &WeightEntryRepository{database: database}
}

func (repo *WeightEntryRepository) ListByUser(userID uint) ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("measured_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeightEntryRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND measured_at >= ? AND measured_at < ?", userID, fromStart, toEnd).
		Order("measured_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeightEntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WeightEntry, bool, error) {
	entry := models.WeightEntry{}
	result := repo.database.
		Where("user_id = ? AND measured_at >= ? AND measured_at < ?", userID, dayStart, dayEnd).
		Order("measured_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightEntryRepository) FindByIDForUser(entryID uint, userID uint) (models.WeightEntry, bool, error) {
	entry := models.WeightEntry{}
	result := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightEntryRepository) FindLatestForUser(userID uint) (models.WeightEntry, bool, error) {
	entry := models.WeightEntry{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("measured_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightEntryRepository) FindEarliestForUser(userID uint) (models.WeightEntry, bool, error) {
	entry := models.WeightEntry{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("measured_at ASC, id ASC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightEntryRepository) Create(entry *models.WeightEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WeightEntryRepository) Save(entry *models.WeightEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *WeightEntryRepository) DeleteByIDForUser(entryID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WeightEntry{}).Error
}
