package provider

import (
	"context"
	"errors"

	"github.com/anjanx44/payment-system/internal/domain/dto"
)

// PaymentProvider is the capability contract every settlement gateway
// variant satisfies. Providers are stateless beyond their immutable
// configuration and safe for concurrent use.
type PaymentProvider interface {
	// Supports reports whether this provider can handle the request: the
	// provider is enabled, the request is non-nil, its country and currency
	// fall within the provider's own supported sets, and the amount is
	// strictly positive.
	Supports(req *dto.CreatePaymentRequest) bool

	// Process performs the settlement action. All failure is encoded in the
	// returned Result; Process never returns a Go error and never panics.
	Process(ctx context.Context, req *dto.CreatePaymentRequest) Result

	// Name returns the stable uppercase identifier used for registry lookup
	// and for stamping the payment record.
	Name() string
}

// Result is the normalized outcome of a provider's settlement action.
type Result struct {
	Status        string // dto.ResponseStatusSuccess or dto.ResponseStatusFailed
	Message       string
	TransactionID string // provider-namespaced, set on success
}

func SuccessResult(message, transactionID string) Result {
	return Result{
		Status:        dto.ResponseStatusSuccess,
		Message:       message,
		TransactionID: transactionID,
	}
}

func FailedResult(message string) Result {
	return Result{
		Status:  dto.ResponseStatusFailed,
		Message: message,
	}
}

// ProviderType identifies a provider variant. The set is closed: the
// registry constructor handles every value exhaustively, so a selector
// output always resolves.
type ProviderType string

const (
	ProviderTypeStripe ProviderType = "STRIPE"
	ProviderTypePaddle ProviderType = "PADDLE"
	ProviderTypePaypal ProviderType = "PAYPAL"
)

// AllProviderTypes lists every known variant, in registry construction order.
func AllProviderTypes() []ProviderType {
	return []ProviderType{ProviderTypeStripe, ProviderTypePaddle, ProviderTypePaypal}
}

var (
	// ErrUnsupportedRoute is returned by the selector when the country or
	// currency falls outside the supported route gate.
	ErrUnsupportedRoute = errors.New("payment not supported for this country and currency")

	// ErrUnknownProvider is returned by the registry when a name matches no
	// registered variant.
	ErrUnknownProvider = errors.New("unknown payment provider")
)
