package paypal

import (
	"context"
	"strings"
	"testing"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func paypalConfig(enabled bool) config.PaypalConfig {
	return config.PaypalConfig{
		Enabled:             enabled,
		ClientID:            "client-id",
		ClientSecret:        "client-secret",
		SupportedCountries:  []string{"US"},
		SupportedCurrencies: []string{"USD"},
	}
}

func TestPaypalProvider_ProcessSimulatesSettlement(t *testing.T) {
	provider := NewPaypalProvider(paypalConfig(true), zap.NewNop())

	result := provider.Process(context.Background(), &dto.CreatePaymentRequest{
		Amount:     decimal.NewFromInt(100),
		Currency:   "USD",
		CustomerID: "c1",
		Country:    "US",
	})

	assert.Equal(t, dto.ResponseStatusSuccess, result.Status)
	assert.True(t, strings.HasPrefix(result.TransactionID, "PP_"), "transaction id %q", result.TransactionID)
}

func TestPaypalProvider_ProcessRejectsInvalidDetails(t *testing.T) {
	provider := NewPaypalProvider(paypalConfig(true), zap.NewNop())

	result := provider.Process(context.Background(), &dto.CreatePaymentRequest{
		Amount:   decimal.NewFromInt(100),
		Currency: "USD",
		Country:  "US",
		// missing customer id
	})

	assert.Equal(t, dto.ResponseStatusFailed, result.Status)
}

func TestPaypalProvider_DisabledNeverSupports(t *testing.T) {
	provider := NewPaypalProvider(paypalConfig(false), zap.NewNop())

	assert.False(t, provider.Supports(&dto.CreatePaymentRequest{
		Amount:     decimal.NewFromInt(100),
		Currency:   "USD",
		CustomerID: "c1",
		Country:    "US",
	}))
}
