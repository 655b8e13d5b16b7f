package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/anjanx44/payment-system/internal/adapter/handler/http"
	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/infrastructure/database"
	"github.com/anjanx44/payment-system/internal/infrastructure/provider"
	"github.com/anjanx44/payment-system/internal/middleware/auth"
	"github.com/anjanx44/payment-system/internal/usecase"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	registry *provider.Registry
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, registry *provider.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		repos:    repos,
		registry: registry,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	selector := usecase.NewProviderSelector()
	paymentService := usecase.NewPaymentService(s.repos.Payment, selector, s.registry, s.logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, s.logger)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	if s.config.Auth.Enabled {
		v1.Use(auth.JWTMiddleware(auth.JWTConfig{
			Secret:    s.config.Auth.JWTSecret,
			Logger:    s.logger,
			SkipPaths: s.config.Auth.SkipPaths,
		}))
	}

	v1.POST("/payments", paymentHandler.CreatePayment)
	v1.POST("/payments/async", paymentHandler.CreatePaymentAsync)
	v1.GET("/payments/:id", paymentHandler.GetPayment)
	v1.GET("/payments", paymentHandler.ListPayments)
}
