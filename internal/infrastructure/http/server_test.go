package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, opts ...ServerOption) *Server {
	t.Helper()
	registry := prometheus.NewRegistry()
	opts = append([]ServerOption{WithLogger(zap.NewNop()), WithMetrics(registry, registry)}, opts...)
	return NewServer(opts...)
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.GetEcho().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, WithServiceName("WorkHoops API"))

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"WorkHoops API"}`, rec.Body.String())
}

func TestServer_MetricsAndRoutes(t *testing.T) {
	s := newTestServer(t)
	s.RegisterRoutes(func(e *echo.Echo) {
		e.GET("/api/ping", func(c echo.Context) error {
			return c.String(http.StatusOK, "pong")
		})
	})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "workhoops_http_requests_total")
	assert.Contains(t, rec.Body.String(), `url="/api/ping"`)
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t, WithCORSOrigins([]string{"https://workhoops.es"}))
	s.RegisterRoutes(func(e *echo.Echo) {
		e.GET("/api/ping", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://workhoops.es")
	rec := serve(s, req)
	assert.Equal(t, "https://workhoops.es", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://elsewhere.example")
	rec = serve(s, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_RecoversPanics(t *testing.T) {
	s := newTestServer(t)
	s.RegisterRoutes(func(e *echo.Echo) {
		e.GET("/boom", func(c echo.Context) error {
			panic("boom")
		})
	})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
