package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the unvalidated input shape for a routing attempt.
type CreatePaymentRequest struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Currency   string          `json:"currency" validate:"required,len=3"`
	CustomerID string          `json:"customer_id" validate:"required"`
	Country    string          `json:"country" validate:"required,len=2"`
}

// Response status tags. These are wire values, distinct from the stored
// PaymentStatus lifecycle.
const (
	ResponseStatusSuccess = "SUCCESS"
	ResponseStatusPending = "PENDING"
	ResponseStatusFailed  = "FAILED"
)

// PaymentResponse is the transient result returned for a routing attempt.
// It is constructed once and never mutated.
type PaymentResponse struct {
	PaymentID     *uuid.UUID       `json:"payment_id,omitempty"`
	Status        string           `json:"status"`
	Message       string           `json:"message"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      string           `json:"currency,omitempty"`
	CustomerID    string           `json:"customer_id,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// PendingResponse reports a payment that has been accepted and handed to a
// provider.
func PendingResponse(paymentID uuid.UUID, amount decimal.Decimal, currency, customerID, transactionID string) PaymentResponse {
	return PaymentResponse{
		PaymentID:     &paymentID,
		Status:        ResponseStatusPending,
		Message:       "Payment is being processed",
		Amount:        &amount,
		Currency:      currency,
		CustomerID:    customerID,
		TransactionID: transactionID,
		Timestamp:     time.Now().UTC(),
	}
}

// FailedResponse reports a payment that was rejected before or during
// delegation.
func FailedResponse(message string) PaymentResponse {
	return PaymentResponse{
		Status:    ResponseStatusFailed,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}
