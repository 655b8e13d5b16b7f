package provider

import (
	"fmt"
	"strings"

	"github.com/anjanx44/payment-system/internal/config"
	domain "github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/anjanx44/payment-system/internal/infrastructure/provider/paddle"
	"github.com/anjanx44/payment-system/internal/infrastructure/provider/paypal"
	"github.com/anjanx44/payment-system/internal/infrastructure/provider/stripe"
	"go.uber.org/zap"
)

// Registry is an immutable mapping from provider identity to the single
// shared instance implementing it. It is built once at startup and injected
// into the orchestrator; there is no ambient lookup.
type Registry struct {
	providers map[domain.ProviderType]domain.PaymentProvider
}

// NewRegistry constructs every known provider variant from configuration.
// The switch is exhaustive over the closed ProviderType set, so a selector
// output always resolves once construction succeeds.
func NewRegistry(cfg config.ProvidersConfig, logger *zap.Logger) (*Registry, error) {
	providers := make(map[domain.ProviderType]domain.PaymentProvider)

	for _, t := range domain.AllProviderTypes() {
		var p domain.PaymentProvider
		switch t {
		case domain.ProviderTypeStripe:
			p = stripe.NewStripeProvider(cfg.Stripe, logger)
		case domain.ProviderTypePaddle:
			p = paddle.NewPaddleProvider(cfg.Paddle, nil, logger)
		case domain.ProviderTypePaypal:
			p = paypal.NewPaypalProvider(cfg.Paypal, logger)
		default:
			return nil, fmt.Errorf("no constructor for provider type %s", t)
		}
		providers[t] = p
	}

	return &Registry{providers: providers}, nil
}

// ByType resolves a selector-produced identity.
func (r *Registry) ByType(t domain.ProviderType) (domain.PaymentProvider, error) {
	p, ok := r.providers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, t)
	}
	return p, nil
}

// ByName resolves a caller-supplied name, case-insensitively.
func (r *Registry) ByName(name string) (domain.PaymentProvider, error) {
	return r.ByType(domain.ProviderType(strings.ToUpper(strings.TrimSpace(name))))
}

// Names returns the registered identities, for logging and diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for t := range r.providers {
		names = append(names, string(t))
	}
	return names
}
