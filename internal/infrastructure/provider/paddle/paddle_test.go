package paddle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func paddleConfig(enabled bool) config.PaddleConfig {
	return config.PaddleConfig{
		Enabled:             enabled,
		VendorID:            "12345",
		APIKey:              "paddle-key",
		ReturnURL:           "https://example.com/return",
		SupportedCountries:  []string{"US", "GB", "DE", "FR", "BD"},
		SupportedCurrencies: []string{"USD", "EUR", "GBP", "BDT"},
	}
}

func validRequest() *dto.CreatePaymentRequest {
	return &dto.CreatePaymentRequest{
		Amount:     decimal.NewFromInt(500),
		Currency:   "USD",
		CustomerID: "c1",
		Country:    "US",
	}
}

func TestPaddleProvider_Supports(t *testing.T) {
	provider := NewPaddleProvider(paddleConfig(true), nil, zap.NewNop())

	tests := []struct {
		name string
		req  *dto.CreatePaymentRequest
		want bool
	}{
		{"valid request", validRequest(), true},
		{"nil request", nil, false},
		{"zero amount", &dto.CreatePaymentRequest{Amount: decimal.Zero, Currency: "USD", Country: "US"}, false},
		{"negative amount", &dto.CreatePaymentRequest{Amount: decimal.NewFromInt(-10), Currency: "USD", Country: "US"}, false},
		{"unsupported country", &dto.CreatePaymentRequest{Amount: decimal.NewFromInt(10), Currency: "USD", Country: "JP"}, false},
		{"unsupported currency", &dto.CreatePaymentRequest{Amount: decimal.NewFromInt(10), Currency: "JPY", Country: "US"}, false},
		{"lowercase codes accepted", &dto.CreatePaymentRequest{Amount: decimal.NewFromInt(10), Currency: "usd", Country: "us"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.Supports(tt.req))
		})
	}
}

func TestPaddleProvider_DisabledNeverSupports(t *testing.T) {
	provider := NewPaddleProvider(paddleConfig(false), nil, zap.NewNop())

	assert.False(t, provider.Supports(validRequest()))

	result := provider.Process(context.Background(), validRequest())
	assert.Equal(t, dto.ResponseStatusFailed, result.Status)
	assert.Contains(t, result.Message, "not enabled")
}

func TestPaddleProvider_ProcessGeneratesPaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "12345", r.Form.Get("vendor_id"))
		assert.Equal(t, "paddle-key", r.Form.Get("vendor_auth_code"))
		assert.Equal(t, "500", r.Form.Get("amount"))
		assert.Equal(t, "USD", r.Form.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"response":{"url":"https://checkout.paddle.com/abc123"}}`))
	}))
	defer server.Close()

	cfg := paddleConfig(true)
	cfg.APIURL = server.URL
	provider := NewPaddleProvider(cfg, server.Client(), zap.NewNop())

	result := provider.Process(context.Background(), validRequest())

	assert.Equal(t, dto.ResponseStatusSuccess, result.Status)
	assert.True(t, strings.HasPrefix(result.TransactionID, "PADDLE_"), "transaction id %q", result.TransactionID)
	assert.Contains(t, result.TransactionID, "checkout.paddle.com")
}

func TestPaddleProvider_ProcessEncodesAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"error":{"message":"bad vendor credentials"}}`))
	}))
	defer server.Close()

	cfg := paddleConfig(true)
	cfg.APIURL = server.URL
	provider := NewPaddleProvider(cfg, server.Client(), zap.NewNop())

	result := provider.Process(context.Background(), validRequest())

	assert.Equal(t, dto.ResponseStatusFailed, result.Status)
	assert.Empty(t, result.TransactionID)
}

func TestPaddleProvider_ProcessEncodesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	cfg := paddleConfig(true)
	cfg.APIURL = server.URL
	provider := NewPaddleProvider(cfg, nil, zap.NewNop())

	result := provider.Process(context.Background(), validRequest())

	assert.Equal(t, dto.ResponseStatusFailed, result.Status)
}
