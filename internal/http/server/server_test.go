package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tutormock/internal/config"
	handlers "tutormock/internal/http/handler"
	"tutormock/internal/http/middleware"
	"tutormock/internal/model"
	"tutormock/internal/process"
	"tutormock/internal/service"
	serviceMocks "tutormock/internal/service/mocks"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Port:        "3006",
		Environment: "test",
		Version:     "1.0.0",
		CORS: config.CORSConfig{
			AllowOrigins:     config.DefaultAllowOrigins,
			AllowCredentials: true,
		},
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := testConfig()
	app, err := New(Options{
		Config:   cfg,
		Logger:   zap.NewNop(),
		Service:  service.NewFixtureService(process.New(cfg.Version, cfg.Environment)),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return app
}

func TestSessionsScenario(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	var body struct {
		Success bool            `json:"success"`
		Data    []model.Session `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Data)
	assert.Equal(t, "online", body.Data[0].SessionType)
	assert.Regexp(t, `^https://zoom\.us/j/`, body.Data[0].ZoomJoinURL)
}

func TestPreflight(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:3000", true},
		{"http://localhost:3006", true},
		{"http://localhost:3007", false},
		{"https://example.com", false},
	} {
		t.Run(tc.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
			req.Header.Set(fiber.HeaderOrigin, tc.origin)
			req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodGet)
			resp, err := app.Test(req)
			require.NoError(t, err)

			if tc.allowed {
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Equal(t, tc.origin, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
				assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
			} else {
				assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
				assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/subjects", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, middleware.MetricsPath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(b)
	assert.Contains(t, text, `http_requests_total{method="GET",path="/api/subjects",status="200"} 1`)
	assert.Contains(t, text, `status="404"`)
	assert.Contains(t, text, "go_goroutines")
	assert.NotContains(t, text, `path="/metrics"`)
}

func TestSwaggerDoc(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc.Paths, "/api/sessions")
	assert.Contains(t, doc.Paths, "/api/v1/sessions")
	assert.Contains(t, doc.Paths, "/health")
}

func TestFallback(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/api/v1/requests", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body model.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Not found", body.Error)
	assert.Equal(t, "Route /api/v1/requests not found", body.Message)
}

func TestRequestLogCarriesTraceAndError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	mockSvc := new(serviceMocks.MockFixtureService)
	mockSvc.On("Sessions", mock.Anything).Return(nil, errors.New("fixture exploded")).Once()

	app, err := New(Options{
		Config:         testConfig(),
		Logger:         zap.New(core),
		Service:        mockSvc,
		Registry:       prometheus.NewRegistry(),
		TracerProvider: tp,
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body model.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixture exploded", body.Message)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), fields["status"])
	assert.Equal(t, "fixture exploded", fields["error"])
	traceID, ok := fields["trace_id"].(string)
	require.True(t, ok, "trace_id missing from %v", fields)
	assert.Len(t, traceID, 32)
	mockSvc.AssertExpectations(t)
}

func TestSwaggerDocCoversRouteTable(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	want := map[string]string{"/health": "get", "/healthz": "get"}
	for _, prefix := range handlers.APIPrefixes {
		for _, r := range handlers.ResourceRoutes(nil) {
			want[prefix+r.Path] = strings.ToLower(r.Method)
		}
	}

	for path, method := range want {
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "doc is missing %s", path) {
			assert.Contains(t, ops, method, path)
		}
	}
	assert.Len(t, doc.Paths, len(want))
}
