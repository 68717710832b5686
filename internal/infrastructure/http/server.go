package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/workhoops/workhoops-api/pkg/logger"
	"go.uber.org/zap"
)

// Server wraps the echo instance serving the API.
type Server struct {
	echo        *echo.Echo
	logger      *zap.Logger
	address     string
	serviceName string
	corsOrigins []string
	validator   echo.Validator
	registerer  prometheus.Registerer
	gatherer    prometheus.Gatherer
}

// ServerOption configures NewServer.
type ServerOption func(*Server)

// WithAddress sets the listen address, e.g. ":8001".
func WithAddress(address string) ServerOption {
	return func(s *Server) {
		s.address = address
	}
}

func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithServiceName sets the name reported by /health.
func WithServiceName(name string) ServerOption {
	return func(s *Server) {
		s.serviceName = name
	}
}

// WithCORSOrigins sets the allowed origins. "*" allows any origin.
func WithCORSOrigins(origins []string) ServerOption {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithValidator installs the request validator used by echo.Context.Validate.
func WithValidator(v echo.Validator) ServerOption {
	return func(s *Server) {
		s.validator = v
	}
}

// WithMetrics sets where HTTP metrics are registered and gathered from.
func WithMetrics(registerer prometheus.Registerer, gatherer prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.registerer = registerer
		s.gatherer = gatherer
	}
}

// NewServer builds the echo instance with recovery, CORS, request logging
// and Prometheus middleware, plus /health and /metrics.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		echo:        echo.New(),
		logger:      zap.NewNop(),
		address:     ":8001",
		serviceName: "workhoops-api",
		corsOrigins: []string{"*"},
		registerer:  prometheus.DefaultRegisterer,
		gatherer:    prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	logger.WithEchoLogger(e, s.logger)
	if s.validator != nil {
		e.Validator = s.validator
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(logger.NewEchoRequestLogger(s.logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "workhoops",
		Subsystem:  "http",
		Registerer: s.registerer,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics"
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.serviceName,
		})
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.gatherer,
	}))

	return s
}

// RegisterRoutes runs registerFunc against the echo instance.
func (s *Server) RegisterRoutes(registerFunc func(e *echo.Echo)) {
	registerFunc(s.echo)
}

// Start listens on the configured address. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.address))
	return s.echo.Start(s.address)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.echo.Shutdown(ctx)
}

func (s *Server) GetEcho() *echo.Echo {
	return s.echo
}
