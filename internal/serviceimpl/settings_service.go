package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/DevFolio/go-client-referral/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingDiscountsEnabled = "discounts_enabled"

type settingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *settingsService {
	return &settingsService{DB: db}
}

// GetDiscountsEnabled reads the discounts feature flag. Discounts are on
// until the flag is explicitly turned off.
func (s *settingsService) GetDiscountsEnabled() (bool, error) {
	var setting models.Setting
	if err := s.DB.Where("key = ?", settingDiscountsEnabled).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read setting %s: %w", settingDiscountsEnabled, err)
	}
	return setting.Value == "true", nil
}

func (s *settingsService) SetDiscountsEnabled(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	setting := models.Setting{Key: settingDiscountsEnabled, Value: value}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("failed to write setting %s: %w", settingDiscountsEnabled, err)
	}
	return nil
}
