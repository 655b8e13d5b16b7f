package stripe

import (
	"context"
	"strings"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/shopspring/decimal"
	stripesdk "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

// StripeProvider is the full-service gateway variant, used for larger and
// cross-border transactions. It settles through Stripe PaymentIntents.
type StripeProvider struct {
	enabled             bool
	api                 *client.API
	supportedCountries  map[string]struct{}
	supportedCurrencies map[string]struct{}
	minAmount           *decimal.Decimal
	maxAmount           *decimal.Decimal
	logger              *zap.Logger
}

var _ provider.PaymentProvider = (*StripeProvider)(nil)

// NewStripeProvider creates the shared Stripe provider instance from
// configuration. Malformed min/max bounds are ignored rather than failing
// startup.
func NewStripeProvider(cfg config.StripeConfig, logger *zap.Logger) *StripeProvider {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)

	p := &StripeProvider{
		enabled:             cfg.Enabled,
		api:                 api,
		supportedCountries:  toUpperSet(cfg.SupportedCountries),
		supportedCurrencies: toUpperSet(cfg.SupportedCurrencies),
		logger:              logger,
	}

	if cfg.MinAmount != "" {
		if min, err := decimal.NewFromString(cfg.MinAmount); err == nil {
			p.minAmount = &min
		} else {
			logger.Warn("ignoring malformed stripe min_amount", zap.String("min_amount", cfg.MinAmount))
		}
	}
	if cfg.MaxAmount != "" {
		if max, err := decimal.NewFromString(cfg.MaxAmount); err == nil {
			p.maxAmount = &max
		} else {
			logger.Warn("ignoring malformed stripe max_amount", zap.String("max_amount", cfg.MaxAmount))
		}
	}

	return p
}

func (p *StripeProvider) Name() string {
	return string(provider.ProviderTypeStripe)
}

func (p *StripeProvider) Supports(req *dto.CreatePaymentRequest) bool {
	if !p.enabled || req == nil {
		return false
	}
	if !req.Amount.IsPositive() {
		return false
	}
	if _, ok := p.supportedCountries[strings.ToUpper(req.Country)]; !ok {
		return false
	}
	if _, ok := p.supportedCurrencies[strings.ToUpper(req.Currency)]; !ok {
		return false
	}
	if p.minAmount != nil && req.Amount.LessThan(*p.minAmount) {
		return false
	}
	if p.maxAmount != nil && req.Amount.GreaterThan(*p.maxAmount) {
		return false
	}
	return true
}

func (p *StripeProvider) Process(ctx context.Context, req *dto.CreatePaymentRequest) provider.Result {
	if !p.enabled {
		return provider.FailedResult("Stripe payments are not enabled")
	}
	if !p.Supports(req) {
		return provider.FailedResult("Payment not supported by Stripe for this configuration")
	}

	p.logger.Info("processing payment via Stripe",
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency),
		zap.String("country", req.Country))

	params := &stripesdk.PaymentIntentParams{
		Params: stripesdk.Params{
			Context: ctx,
		},
		Amount:   stripesdk.Int64(minorUnits(req.Amount)),
		Currency: stripesdk.String(strings.ToLower(req.Currency)),
		PaymentMethodTypes: stripesdk.StringSlice([]string{
			"card",
		}),
	}
	params.AddMetadata("customer_id", req.CustomerID)
	params.AddMetadata("country", strings.ToUpper(req.Country))

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.logger.Error("stripe payment intent creation failed", zap.Error(err))
		return provider.FailedResult("Payment processing failed: " + err.Error())
	}

	return provider.SuccessResult("Payment processed successfully via Stripe", intent.ID)
}

// minorUnits converts a currency-scaled amount to the smallest currency
// unit expected by the Stripe API.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func toUpperSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToUpper(v)] = struct{}{}
	}
	return set
}
