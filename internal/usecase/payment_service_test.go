package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/model"
	"github.com/anjanx44/payment-system/internal/domain/provider"
	"github.com/anjanx44/payment-system/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepository records every save so tests can inspect the persisted
// lifecycle without a database.
type fakeRepository struct {
	saves   []model.Payment
	saveErr error
}

func (f *fakeRepository) Save(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves = append(f.saves, *payment)
	return payment, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	for i := len(f.saves) - 1; i >= 0; i-- {
		if f.saves[i].ID == id {
			p := f.saves[i]
			return &p, nil
		}
	}
	return nil, repository.ErrPaymentNotFound
}

func (f *fakeRepository) FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.saves {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindAll(ctx context.Context, page, size int) ([]model.Payment, error) {
	return f.saves, nil
}

type stubProvider struct {
	name      string
	supports  bool
	result    provider.Result
	processed int
}

func (s *stubProvider) Supports(req *dto.CreatePaymentRequest) bool { return s.supports }

func (s *stubProvider) Process(ctx context.Context, req *dto.CreatePaymentRequest) provider.Result {
	s.processed++
	return s.result
}

func (s *stubProvider) Name() string { return s.name }

type stubRegistry struct {
	providers map[provider.ProviderType]provider.PaymentProvider
}

func (r *stubRegistry) ByType(t provider.ProviderType) (provider.PaymentProvider, error) {
	p, ok := r.providers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", provider.ErrUnknownProvider, t)
	}
	return p, nil
}

func (r *stubRegistry) ByName(name string) (provider.PaymentProvider, error) {
	return r.ByType(provider.ProviderType(name))
}

func newTestService(repo *fakeRepository, registry ProviderRegistry) *PaymentService {
	return NewPaymentService(repo, NewProviderSelector(), registry, zap.NewNop())
}

func defaultRegistry(stripe, paddle *stubProvider) *stubRegistry {
	return &stubRegistry{providers: map[provider.ProviderType]provider.PaymentProvider{
		provider.ProviderTypeStripe: stripe,
		provider.ProviderTypePaddle: paddle,
	}}
}

func paymentRequest(amount, currency, country, customerID string) *dto.CreatePaymentRequest {
	return &dto.CreatePaymentRequest{
		Amount:     decimal.RequireFromString(amount),
		Currency:   currency,
		CustomerID: customerID,
		Country:    country,
	}
}

func TestPaymentService_SmallDomesticPaymentRoutedToPaddle(t *testing.T) {
	repo := &fakeRepository{}
	stripe := &stubProvider{name: "STRIPE", supports: true, result: provider.SuccessResult("ok", "pi_1")}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.SuccessResult("ok", "PADDLE_link")}
	service := newTestService(repo, defaultRegistry(stripe, paddle))

	resp := service.Process(context.Background(), paymentRequest("500", "USD", "US", "c1"))

	assert.Equal(t, dto.ResponseStatusPending, resp.Status)
	assert.NotEmpty(t, resp.TransactionID)
	assert.Equal(t, "c1", resp.CustomerID)
	assert.Equal(t, 1, paddle.processed)
	assert.Equal(t, 0, stripe.processed)

	require.Len(t, repo.saves, 2)
	created := repo.saves[0]
	assert.Equal(t, model.PaymentStatusPending, created.Status)
	assert.Equal(t, "PADDLE", created.ProviderName)
	assert.Equal(t, "USD", created.Currency)
	assert.NotEqual(t, uuid.Nil, created.ID)

	recorded := repo.saves[1]
	assert.Equal(t, created.ID, recorded.ID)
	assert.Equal(t, model.PaymentStatusSuccess, recorded.Status)
}

func TestPaymentService_LargeDomesticPaymentRoutedToStripe(t *testing.T) {
	repo := &fakeRepository{}
	stripe := &stubProvider{name: "STRIPE", supports: true, result: provider.SuccessResult("ok", "pi_2")}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.SuccessResult("ok", "PADDLE_link")}
	service := newTestService(repo, defaultRegistry(stripe, paddle))

	resp := service.Process(context.Background(), paymentRequest("1500", "USD", "US", "c2"))

	assert.Equal(t, dto.ResponseStatusPending, resp.Status)
	assert.Equal(t, 1, stripe.processed)
	assert.Equal(t, 0, paddle.processed)
	require.NotEmpty(t, repo.saves)
	assert.Equal(t, "STRIPE", repo.saves[0].ProviderName)
}

func TestPaymentService_UnsupportedRouteNeverReachesProviders(t *testing.T) {
	repo := &fakeRepository{}
	stripe := &stubProvider{name: "STRIPE", supports: true}
	paddle := &stubProvider{name: "PADDLE", supports: true}
	service := newTestService(repo, defaultRegistry(stripe, paddle))

	resp := service.Process(context.Background(), paymentRequest("50", "JPY", "JP", "c3"))

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Empty(t, repo.saves)
	assert.Equal(t, 0, stripe.processed)
	assert.Equal(t, 0, paddle.processed)
}

func TestPaymentService_NegativeAmountRejectedBeforeSelection(t *testing.T) {
	repo := &fakeRepository{}
	stripe := &stubProvider{name: "STRIPE", supports: true}
	paddle := &stubProvider{name: "PADDLE", supports: true}
	service := newTestService(repo, defaultRegistry(stripe, paddle))

	resp := service.Process(context.Background(), paymentRequest("-5", "USD", "US", "c4"))

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Empty(t, repo.saves)
	assert.Equal(t, 0, stripe.processed)
	assert.Equal(t, 0, paddle.processed)
}

func TestPaymentService_NilRequestRejected(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo, defaultRegistry(
		&stubProvider{name: "STRIPE", supports: true},
		&stubProvider{name: "PADDLE", supports: true},
	))

	resp := service.Process(context.Background(), nil)

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Empty(t, repo.saves)
}

func TestPaymentService_DisabledProviderFailsWithoutPersisting(t *testing.T) {
	repo := &fakeRepository{}
	stripe := &stubProvider{name: "STRIPE", supports: true}
	paddle := &stubProvider{name: "PADDLE", supports: false}
	service := newTestService(repo, defaultRegistry(stripe, paddle))

	resp := service.Process(context.Background(), paymentRequest("500", "USD", "US", "c5"))

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Empty(t, repo.saves)
	assert.Equal(t, 0, paddle.processed)
}

func TestPaymentService_MissingRegistryEntryFails(t *testing.T) {
	repo := &fakeRepository{}
	registry := &stubRegistry{providers: map[provider.ProviderType]provider.PaymentProvider{}}
	service := newTestService(repo, registry)

	resp := service.Process(context.Background(), paymentRequest("500", "USD", "US", "c6"))

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Empty(t, repo.saves)
}

func TestPaymentService_PersistenceFailureShortCircuits(t *testing.T) {
	repo := &fakeRepository{saveErr: errors.New("connection refused")}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.SuccessResult("ok", "PADDLE_link")}
	service := newTestService(repo, defaultRegistry(&stubProvider{name: "STRIPE", supports: true}, paddle))

	resp := service.Process(context.Background(), paymentRequest("500", "USD", "US", "c7"))

	assert.Equal(t, dto.ResponseStatusFailed, resp.Status)
	assert.Equal(t, 0, paddle.processed, "provider must not be invoked when persistence fails")
}

func TestPaymentService_ProviderFailureRecordedAsFailed(t *testing.T) {
	repo := &fakeRepository{}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.FailedResult("declined")}
	service := newTestService(repo, defaultRegistry(&stubProvider{name: "STRIPE", supports: true}, paddle))

	resp := service.Process(context.Background(), paymentRequest("500", "USD", "US", "c8"))

	// The response stays PENDING-shaped; the stored record carries the
	// provider's terminal outcome.
	assert.Equal(t, dto.ResponseStatusPending, resp.Status)
	require.Len(t, repo.saves, 2)
	assert.Equal(t, model.PaymentStatusFailed, repo.saves[1].Status)
}

func TestPaymentService_DistinctIdentifiersPerRequest(t *testing.T) {
	repo := &fakeRepository{}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.SuccessResult("ok", "PADDLE_link")}
	service := newTestService(repo, defaultRegistry(&stubProvider{name: "STRIPE", supports: true}, paddle))

	first := service.Process(context.Background(), paymentRequest("500", "USD", "US", "repeat-customer"))
	second := service.Process(context.Background(), paymentRequest("500", "USD", "US", "repeat-customer"))

	require.NotNil(t, first.PaymentID)
	require.NotNil(t, second.PaymentID)
	assert.NotEqual(t, *first.PaymentID, *second.PaymentID)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

func TestPaymentService_ProcessAsyncDeliversCompletion(t *testing.T) {
	repo := &fakeRepository{}
	paddle := &stubProvider{name: "PADDLE", supports: true, result: provider.SuccessResult("ok", "PADDLE_link")}
	service := newTestService(repo, defaultRegistry(&stubProvider{name: "STRIPE", supports: true}, paddle))

	done := service.ProcessAsync(context.Background(), paymentRequest("500", "USD", "US", "c9"))

	resp, ok := <-done
	require.True(t, ok)
	assert.Equal(t, dto.ResponseStatusPending, resp.Status)
	assert.Equal(t, 1, paddle.processed)
}
