package migration

import (
	"github.com/DevFolio/go-client-referral/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202509011102-cr-118204",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Customer{}, &models.ReferralTransaction{}, &models.Setting{}, &models.Project{})
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Customer{}, &models.ReferralTransaction{}, &models.Setting{}, &models.Project{})
	},
}
