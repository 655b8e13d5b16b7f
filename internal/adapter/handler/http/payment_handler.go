package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anjanx44/payment-system/internal/domain/dto"
	"github.com/anjanx44/payment-system/internal/domain/model"
	"github.com/anjanx44/payment-system/internal/domain/repository"
	"github.com/anjanx44/payment-system/internal/usecase"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultPage = 0
	defaultSize = 20
)

type PaymentHandler struct {
	service *usecase.PaymentService
	logger  *zap.Logger
}

func NewPaymentHandler(service *usecase.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePayment runs the orchestration synchronously and returns the
// constructed response with 202 Accepted.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	req, err := h.bindRequest(c)
	if req == nil {
		return err // bindRequest already wrote the error body
	}

	h.logger.Info("received payment request",
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency),
		zap.String("country", req.Country))

	response := h.service.Process(c.Request().Context(), req)

	return c.JSON(http.StatusAccepted, response)
}

// CreatePaymentAsync hands the orchestration off to the background and
// acknowledges immediately.
func (h *PaymentHandler) CreatePaymentAsync(c echo.Context) error {
	req, err := h.bindRequest(c)
	if req == nil {
		return err
	}

	h.logger.Info("received async payment request",
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency),
		zap.String("country", req.Country))

	h.service.ProcessAsync(c.Request().Context(), req)

	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "Payment is being processed.",
	})
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			dto.BadRequestError("Invalid payment ID", c.Request().URL.Path))
	}

	payment, err := h.service.GetPayment(c.Request().Context(), id)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		h.logger.Warn("payment not found", zap.String("payment_id", id.String()))
		return c.JSON(http.StatusNotFound,
			dto.NotFoundError("Payment not found", c.Request().URL.Path))
	}
	if err != nil {
		h.logger.Error("failed to fetch payment",
			zap.String("payment_id", id.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError,
			dto.InternalError("Error fetching payment details", c.Request().URL.Path))
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var status *model.PaymentStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, ok := model.ParsePaymentStatus(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest,
				dto.BadRequestError("Invalid payment status", c.Request().URL.Path))
		}
		status = &parsed
	}

	page := queryInt(c, "page", defaultPage)
	size := queryInt(c, "size", defaultSize)
	if page < 0 || size <= 0 {
		return c.JSON(http.StatusBadRequest,
			dto.BadRequestError("Invalid paging parameters", c.Request().URL.Path))
	}

	payments, err := h.service.ListPayments(c.Request().Context(), status, page, size)
	if err != nil {
		h.logger.Error("failed to list payments", zap.Error(err))
		return c.JSON(http.StatusInternalServerError,
			dto.InternalError("Error fetching payments", c.Request().URL.Path))
	}

	return c.JSON(http.StatusOK, payments)
}

// bindRequest decodes and validates the request body, writing the structured
// error response itself so both create pathways share the same rejection
// shape.
func (h *PaymentHandler) bindRequest(c echo.Context) (*dto.CreatePaymentRequest, error) {
	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("malformed payment request", zap.Error(err))
		return nil, c.JSON(http.StatusBadRequest,
			dto.BadRequestError("Malformed payment request", c.Request().URL.Path))
	}

	if err := c.Validate(&req); err != nil {
		h.logger.Warn("payment request failed validation", zap.Error(err))
		return nil, c.JSON(http.StatusBadRequest,
			dto.ValidationError("Invalid payment request", err.Error(), c.Request().URL.Path))
	}

	if !req.Amount.IsPositive() {
		return nil, c.JSON(http.StatusBadRequest,
			dto.ValidationError("Invalid payment request", "amount must be positive", c.Request().URL.Path))
	}

	return &req, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
