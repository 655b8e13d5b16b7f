package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anjanx44/payment-system/internal/domain/model"
	domainRepo "github.com/anjanx44/payment-system/internal/domain/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface on postgres.
type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) Save(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		r.logger.Error("failed to save payment",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainRepo.ErrPaymentNotFound
	}
	if err != nil {
		r.logger.Error("failed to find payment",
			zap.String("payment_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	var payments []model.Payment

	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		r.logger.Error("failed to find payments by status",
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find payments by status: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, page, size int) ([]model.Payment, error) {
	var payments []model.Payment

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(size).
		Offset(page * size).
		Find(&payments).Error
	if err != nil {
		r.logger.Error("failed to list payments",
			zap.Int("page", page),
			zap.Int("size", size),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
