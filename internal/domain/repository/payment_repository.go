package repository

import (
	"context"
	"errors"

	"github.com/anjanx44/payment-system/internal/domain/model"
	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a lookup matches no record.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository is the store contract consumed by the orchestrator and
// the HTTP boundary.
type PaymentRepository interface {
	// Save assigns an identifier if absent and creates the record, or
	// updates an existing one.
	Save(ctx context.Context, payment *model.Payment) (*model.Payment, error)

	// FindByID returns ErrPaymentNotFound when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)

	// FindByStatus returns all payments in the given status, oldest first.
	FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error)

	// FindAll returns one zero-based page of payments ordered by identifier.
	FindAll(ctx context.Context, page, size int) ([]model.Payment, error)
}
