package usecase

import (
	"fmt"
	"strings"

	"github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/shopspring/decimal"
)

// Route thresholds. Amounts are compared in the request's own currency,
// no conversion applied.
var (
	usThreshold     = decimal.NewFromInt(1000)
	europeThreshold = decimal.NewFromInt(2000)
	bdtThreshold    = decimal.NewFromInt(100000)
)

var (
	supportedCountries  = map[string]struct{}{"US": {}, "GB": {}, "DE": {}, "FR": {}, "BD": {}}
	supportedCurrencies = map[string]struct{}{"USD": {}, "EUR": {}, "GBP": {}, "BDT": {}}
	europeanCountries   = map[string]struct{}{"GB": {}, "DE": {}, "FR": {}}
)

// ProviderSelector maps (country, currency, amount) to a provider identity.
// It is a pure rule engine: no side effects, no I/O, identical inputs always
// yield the identical identity.
type ProviderSelector struct{}

func NewProviderSelector() *ProviderSelector {
	return &ProviderSelector{}
}

// Select applies the routing rules in order, first match wins. It fails with
// provider.ErrUnsupportedRoute when the country or currency falls outside the
// supported route gate; callers must not proceed to provider invocation on
// that error.
func (s *ProviderSelector) Select(country string, amount decimal.Decimal, currency string) (provider.ProviderType, error) {
	upperCountry := strings.ToUpper(country)
	upperCurrency := strings.ToUpper(currency)

	if _, ok := supportedCountries[upperCountry]; !ok {
		return "", fmt.Errorf("%w: country %s, currency %s", provider.ErrUnsupportedRoute, country, currency)
	}
	if _, ok := supportedCurrencies[upperCurrency]; !ok {
		return "", fmt.Errorf("%w: country %s, currency %s", provider.ErrUnsupportedRoute, country, currency)
	}

	// US: Stripe for large transactions, Paddle for smaller ones.
	if upperCountry == "US" {
		if amount.GreaterThan(usThreshold) {
			return provider.ProviderTypeStripe, nil
		}
		return provider.ProviderTypePaddle, nil
	}

	// GB/DE/FR: same split at a higher threshold.
	if _, ok := europeanCountries[upperCountry]; ok {
		if amount.GreaterThan(europeThreshold) {
			return provider.ProviderTypeStripe, nil
		}
		return provider.ProviderTypePaddle, nil
	}

	if upperCountry == "BD" {
		if upperCurrency == "BDT" {
			if amount.GreaterThan(bdtThreshold) {
				return provider.ProviderTypeStripe, nil
			}
			return provider.ProviderTypePaddle, nil
		}
		// Cross-border from Bangladesh always goes through Stripe.
		return provider.ProviderTypeStripe, nil
	}

	return provider.ProviderTypePaddle, nil
}
