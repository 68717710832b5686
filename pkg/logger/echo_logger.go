// File: pkg/logger/echo_logger.go
package logger

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
	"go.uber.org/zap"
)

// Query parameters worth recording on every request.
var loggedQueryParams = []string{"limit", "offset", "tipo", "nivel", "estado", "rol", "categoria", "q"}

// NewEchoRequestLogger logs one entry per request with zap.
// 4xx responses are logged at warn, 5xx and handler errors at error.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health" || c.Request().URL.Path == "/metrics"
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogURIPath:      true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogQueryParams:  loggedQueryParams,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.path", v.URIPath),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}

			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", v.QueryParams))
			}

			switch {
			case v.Status >= http.StatusInternalServerError:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Error("Server error", fields...)
			case v.Status >= http.StatusBadRequest:
				if v.Error != nil {
					fields = append(fields, zap.String("error", v.Error.Error()))
				}
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	})
}

// WithEchoLogger installs an HTTPErrorHandler that renders every error as
// errors.Response and logs server-side failures.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := apperrors.ToHTTPResponse(err)
		if status >= http.StatusInternalServerError {
			apperrors.LogError(logger, err, "HTTP error",
				zap.Int("status", status),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("ip", c.RealIP()),
			)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(status)
		} else {
			sendErr = c.JSON(status, body)
		}
		if sendErr != nil {
			logger.Error("Failed to send error response", zap.Error(sendErr))
		}
	}
}
