package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusSuccess    PaymentStatus = "SUCCESS"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// ParsePaymentStatus normalizes and validates a status string against the
// known set.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	status := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusSuccess, PaymentStatusFailed:
		return status, true
	}
	return "", false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// CanTransitionTo enforces the monotonic lifecycle: terminal states never
// regress and PROCESSING cannot move back to PENDING.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusProcessing || next == PaymentStatusSuccess || next == PaymentStatusFailed
	case PaymentStatusProcessing:
		return next == PaymentStatusSuccess || next == PaymentStatusFailed
	default:
		return false
	}
}

// Payment is the durable record of a routing attempt.
type Payment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Amount       decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	Currency     string          `gorm:"size:3;not null" json:"currency"`
	CustomerID   string          `gorm:"column:customer_id;size:100;not null;index" json:"customer_id"`
	Country      string          `gorm:"size:2;not null" json:"country"`
	Status       PaymentStatus   `gorm:"size:20;not null;index" json:"status"`
	ProviderName string          `gorm:"column:provider;size:50;not null" json:"provider_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns an identifier when none was set and stamps the
// creation time.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	return nil
}

// BeforeUpdate stamps the modification time.
func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().UTC()
	return nil
}
