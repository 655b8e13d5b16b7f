package database

import (
	"github.com/anjanx44/payment-system/internal/adapter/repository"
	domainRepo "github.com/anjanx44/payment-system/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Payment domainRepo.PaymentRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Payment: repository.NewPaymentRepository(db, logger),
	}
}
