package paddle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/provider"
	"go.uber.org/zap"
)

const defaultAPIURL = "https://vendors.paddle.com/api/2.0/payment/links"

// PaddleProvider is the checkout-link gateway variant, used for smaller
// domestic transactions. Process generates a hosted payment link through the
// Paddle vendors API.
type PaddleProvider struct {
	enabled             bool
	vendorID            string
	apiKey              string
	apiURL              string
	returnURL           string
	supportedCountries  map[string]struct{}
	supportedCurrencies map[string]struct{}
	client              *http.Client
	logger              *zap.Logger
}

var _ provider.PaymentProvider = (*PaddleProvider)(nil)

// NewPaddleProvider creates the shared Paddle provider instance. A nil
// httpClient falls back to a client with a 60 second timeout.
func NewPaddleProvider(cfg config.PaddleConfig, httpClient *http.Client, logger *zap.Logger) *PaddleProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &PaddleProvider{
		enabled:             cfg.Enabled,
		vendorID:            cfg.VendorID,
		apiKey:              cfg.APIKey,
		apiURL:              apiURL,
		returnURL:           cfg.ReturnURL,
		supportedCountries:  toUpperSet(cfg.SupportedCountries),
		supportedCurrencies: toUpperSet(cfg.SupportedCurrencies),
		client:              httpClient,
		logger:              logger,
	}
}

func (p *PaddleProvider) Name() string {
	return string(provider.ProviderTypePaddle)
}

func (p *PaddleProvider) Supports(req *dto.CreatePaymentRequest) bool {
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

func (p *PaddleProvider) Process(ctx context.Context, req *dto.CreatePaymentRequest) provider.Result {
	if !p.enabled {
		return provider.FailedResult("Paddle payments are not enabled")
	}

	if !p.Supports(req) {
		return provider.FailedResult("Payment not supported by Paddle for this configuration")
	}

	p.logger.Info("processing payment via Paddle",
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency),
		zap.String("country", req.Country))

	link, err := p.createPaymentLink(ctx, req)
	if err != nil {
		p.logger.Error("paddle payment link creation failed", zap.Error(err))
		return provider.FailedResult("Payment processing failed: " + err.Error())
	}

	return provider.SuccessResult("Payment link generated successfully via Paddle", "PADDLE_"+link)
}

// createPaymentLink calls the Paddle payment-links API and returns the
// hosted checkout URL.
func (p *PaddleProvider) createPaymentLink(ctx context.Context, req *dto.CreatePaymentRequest) (string, error) {
	form := url.Values{}
	form.Set("vendor_id", p.vendorID)
	form.Set("vendor_auth_code", p.apiKey)
	form.Set("title", "Payment for Customer "+req.CustomerID)
	form.Set("amount", req.Amount.String())
	form.Set("currency", strings.ToUpper(req.Currency))
	form.Set("return_url", p.returnURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("paddle API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to create paddle payment link: status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Success  bool `json:"success"`
		Response struct {
			URL string `json:"url"`
		} `json:"response"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse paddle response: %w", err)
	}
	if !parsed.Success || parsed.Response.URL == "" {
		return "", fmt.Errorf("paddle rejected payment link request: %s", string(respBody))
	}

	return parsed.Response.URL, nil
}

func toUpperSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToUpper(v)] = struct{}{}
	}
	return set
}
