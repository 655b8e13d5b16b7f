package database

import (
	"github.com/anjanx44/payment-system/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(&model.Payment{}); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
