package usecase

import (
	"context"
	"strings"

	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/model"
	"github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/anjanx44/payment-system/internal/domain/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderRegistry resolves a provider identity to the shared instance
// implementing it.
type ProviderRegistry interface {
	ByType(t provider.ProviderType) (provider.PaymentProvider, error)
	ByName(name string) (provider.PaymentProvider, error)
}

// PaymentService sequences validation, selection, persistence and delegation
// for a single payment request. It is the only place the selector, registry,
// providers and store meet.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	selector    *ProviderSelector
	registry    ProviderRegistry
	logger      *zap.Logger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	selector *ProviderSelector,
	registry ProviderRegistry,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		selector:    selector,
		registry:    registry,
		logger:      logger,
	}
}

// Process runs the full orchestration sequence and blocks until it
// completes. Every failure category is absorbed into a FAILED response;
// callers never see an error or a panic from this method.
func (s *PaymentService) Process(ctx context.Context, req *dto.CreatePaymentRequest) (resp dto.PaymentResponse) {
	// Final fallback: anything unexpected becomes a generic FAILED response.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("payment processing panicked", zap.Any("panic", r))
			resp = dto.FailedResponse("Payment processing failed")
		}
	}()

	if !isValidRequest(req) {
		s.logger.Warn("invalid payment request rejected")
		return dto.FailedResponse("Invalid payment request")
	}

	providerType, err := s.selector.Select(req.Country, req.Amount, req.Currency)
	if err != nil {
		s.logger.Warn("no route for payment request",
			zap.String("country", req.Country),
			zap.String("currency", req.Currency),
			zap.Error(err))
		return dto.FailedResponse(err.Error())
	}

	prov, err := s.registry.ByType(providerType)
	if err != nil {
		// Selector output is a subset of registry identities; a miss here is
		// a configuration fault, worth its own log line.
		s.logger.Error("selected provider missing from registry",
			zap.String("provider", string(providerType)),
			zap.Error(err))
		return dto.FailedResponse("Payment provider not available")
	}

	// Defense in depth: the provider may have been disabled, or carry
	// narrower supported sets than the route gate.
	if !prov.Supports(req) {
		s.logger.Warn("provider does not support request",
			zap.String("provider", prov.Name()),
			zap.String("country", req.Country),
			zap.String("currency", req.Currency))
		return dto.FailedResponse("Payment method not supported")
	}

	payment := &model.Payment{
		ID:           uuid.New(),
		Amount:       req.Amount,
		Currency:     strings.ToUpper(req.Currency),
		CustomerID:   req.CustomerID,
		Country:      strings.ToUpper(req.Country),
		Status:       model.PaymentStatusPending,
		ProviderName: prov.Name(),
	}

	saved, err := s.paymentRepo.Save(ctx, payment)
	if err != nil {
		s.logger.Error("failed to persist payment",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return dto.FailedResponse("Payment processing failed")
	}

	result := prov.Process(ctx, req)

	s.recordOutcome(ctx, saved, result)

	s.logger.Info("payment processed",
		zap.String("payment_id", saved.ID.String()),
		zap.String("provider", prov.Name()),
		zap.String("provider_status", result.Status))

	// TODO: surface the provider's terminal result in this response once
	// clients are prepared for statuses other than PENDING.
	return dto.PendingResponse(saved.ID, saved.Amount, saved.Currency, saved.CustomerID, generateTransactionID())
}

// ProcessAsync runs the same orchestration in the background and returns
// immediately. The returned channel receives the final response once the
// sequence completes; it is buffered, so the result is never lost to a
// caller that walks away. There is no cancellation: the work is detached
// from the caller's context once dispatched.
func (s *PaymentService) ProcessAsync(ctx context.Context, req *dto.CreatePaymentRequest) <-chan dto.PaymentResponse {
	done := make(chan dto.PaymentResponse, 1)
	bgCtx := context.WithoutCancel(ctx)

	go func() {
		done <- s.Process(bgCtx, req)
		close(done)
	}()

	return done
}

// GetPayment fetches a stored payment record.
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments returns payments filtered by status, or one page of all
// payments when status is nil.
func (s *PaymentService) ListPayments(ctx context.Context, status *model.PaymentStatus, page, size int) ([]model.Payment, error) {
	if status != nil {
		return s.paymentRepo.FindByStatus(ctx, *status)
	}
	return s.paymentRepo.FindAll(ctx, page, size)
}

// recordOutcome writes the provider's terminal status back to the stored
// record. A write-back failure is logged but does not change the response;
// the record simply stays PENDING.
func (s *PaymentService) recordOutcome(ctx context.Context, payment *model.Payment, result provider.Result) {
	terminal := model.PaymentStatusFailed
	if result.Status == dto.ResponseStatusSuccess {
		terminal = model.PaymentStatusSuccess
	}

	if !payment.Status.CanTransitionTo(terminal) {
		return
	}
	payment.Status = terminal

	if _, err := s.paymentRepo.Save(ctx, payment); err != nil {
		s.logger.Error("failed to record payment outcome",
			zap.String("payment_id", payment.ID.String()),
			zap.String("status", string(terminal)),
			zap.Error(err))
	}
}

func isValidRequest(req *dto.CreatePaymentRequest) bool {
	return req != nil &&
		req.Amount.IsPositive() &&
		strings.TrimSpace(req.Currency) != "" &&
		strings.TrimSpace(req.CustomerID) != "" &&
		strings.TrimSpace(req.Country) != ""
}

func generateTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}
