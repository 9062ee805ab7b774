package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_Auth(t *testing.T) {
	handler := NewHandler(service.NewMessageService(catalog.Default()))
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"test-key": true}
	router := NewRouter(handler, NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		target         string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "public route without key", target: "/api/keys", expectedStatus: http.StatusOK},
		{name: "message lookup without key", target: "/api/messages/BAD_CODE", expectedStatus: http.StatusOK},
		{name: "admin route without key", target: "/api/catalog/verify", expectedStatus: http.StatusUnauthorized},
		{
			name:           "admin route with invalid key",
			target:         "/api/catalog/verify",
			headers:        map[string]string{"X-API-Key": "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "admin route with key header",
			target:         "/api/catalog/verify",
			headers:        map[string]string{"X-API-Key": "test-key"},
			expectedStatus: http.StatusOK,
		},
		{name: "admin route with key query", target: "/api/catalog/verify?api_key=test-key", expectedStatus: http.StatusOK},
		{name: "health is public", target: "/healthz", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodGet, tt.target, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Error)
			}
		})
	}
}

func TestNewRouter_AuthWithoutKeys(t *testing.T) {
	handler := NewHandler(service.NewMessageService(catalog.Default()))
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	router := NewRouter(handler, NewHealthHandler(), cfg)

	w := perform(router, http.MethodGet, "/api/catalog/verify", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_RateLimit(t *testing.T) {
	handler := NewHandler(service.NewMessageService(catalog.Default()))
	cfg := RouterConfig{RateLimit: 2, RateWindow: time.Minute}
	router := NewRouter(handler, NewHealthHandler(), cfg)

	for i := 0; i < 2; i++ {
		w := perform(router, http.MethodGet, "/api/keys", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := perform(router, http.MethodGet, "/api/keys", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	tests := []struct {
		name           string
		cfg            RouterConfig
		target         string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "metrics", cfg: DefaultRouterConfig(), target: "/metrics", expectedStatus: http.StatusOK},
		{name: "readiness", cfg: DefaultRouterConfig(), target: "/readyz", expectedStatus: http.StatusOK},
		{
			name:           "swagger behind basic auth",
			cfg:            RouterConfig{SwaggerUser: "admin", SwaggerPass: "secret"},
			target:         "/swagger/index.html",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown route",
			cfg:            DefaultRouterConfig(),
			target:         "/nope",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(nil, NewHealthHandler(), tt.cfg)
			w := perform(router, http.MethodGet, tt.target, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_CORS(t *testing.T) {
	handler := NewHandler(service.NewMessageService(catalog.Default()))
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"https://docs.example.com"}
	router := NewRouter(handler, NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		origin         string
		expectedStatus int
		expectAllowed  bool
	}{
		{name: "allowed origin", origin: "https://docs.example.com", expectedStatus: http.StatusNoContent, expectAllowed: true},
		{name: "disallowed origin", origin: "https://evil.example.com", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodOptions, "/api/messages/lookup", "", map[string]string{
				"Origin":                        tt.origin,
				"Access-Control-Request-Method": http.MethodPost,
			})
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()

	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Positive(t, cfg.RequestTimeout)
	assert.False(t, cfg.EnableAuth)
}
