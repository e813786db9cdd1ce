package migration

import (
	"daily-diet-api/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		return fmt.Errorf("migrate meals: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
