package paypal

import (
	"context"
	"strings"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaypalProvider is a minimal placeholder variant. It validates the request
// and simulates settlement without calling out; real PayPal integration has
// not been wired yet.
type PaypalProvider struct {
	enabled             bool
	clientID            string
	clientSecret        string
	supportedCountries  map[string]struct{}
	supportedCurrencies map[string]struct{}
	logger              *zap.Logger
}

var _ provider.PaymentProvider = (*PaypalProvider)(nil)

func NewPaypalProvider(cfg config.PaypalConfig, logger *zap.Logger) *PaypalProvider {
	return &PaypalProvider{
		enabled:             cfg.Enabled,
		clientID:            cfg.ClientID,
		clientSecret:        cfg.ClientSecret,
		supportedCountries:  toUpperSet(cfg.SupportedCountries),
		supportedCurrencies: toUpperSet(cfg.SupportedCurrencies),
		logger:              logger,
	}
}

func (p *PaypalProvider) Name() string {
	return string(provider.ProviderTypePaypal)
}

func (p *PaypalProvider) Supports(req *dto.CreatePaymentRequest) bool {
	if !p.enabled || req == nil {
		return false
	}
	if !req.Amount.IsPositive() {
		return false
	}
	if _, ok := p.supportedCountries[strings.ToUpper(req.Country)]; !ok {
		return false
	}
	_, ok := p.supportedCurrencies[strings.ToUpper(req.Currency)]
	return ok
}

func (p *PaypalProvider) Process(ctx context.Context, req *dto.CreatePaymentRequest) provider.Result {
	if !p.enabled {
		return provider.FailedResult("PayPal payments are not enabled")
	}

	if !isValidPayment(req) {
		return provider.FailedResult("Invalid payment details")
	}

	p.logger.Info("processing payment via PayPal",
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency))

	transactionID := "PP_" + uuid.NewString()

	return provider.SuccessResult("Payment processed successfully via PayPal", transactionID)
}

func isValidPayment(req *dto.CreatePaymentRequest) bool {
	if req == nil || !req.Amount.IsPositive() {
		return false
	}
	if strings.TrimSpace(req.Currency) == "" {
		return false
	}
	return strings.TrimSpace(req.CustomerID) != ""
}

func toUpperSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToUpper(v)] = struct{}{}
	}
	return set
}
