//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func baseConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Catalog: config.CatalogConfig{BaseLocale: "en"},
		Cache: config.CacheConfig{
			Size: 1000,
			TTL:  5 * time.Minute,
		},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func() config.Config
		wantErr  bool
		validate func(*testing.T, *Application)
	}{
		{
			name: "serves lookups with default config",
			cfg:  baseConfig,
			validate: func(t *testing.T, app *Application) {
				w := httptest.NewRecorder()
				app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages/ER_CANNOT_ADD?lang=de", nil))
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), "hinzugefügt")
			},
		},
		{
			name: "readiness reports the catalog",
			cfg:  baseConfig,
			validate: func(t *testing.T, app *Application) {
				w := httptest.NewRecorder()
				app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), `"catalog":"ok"`)
			},
		},
		{
			name: "auth protects admin routes",
			cfg: func() config.Config {
				cfg := baseConfig()
				cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}}
				return cfg
			},
			validate: func(t *testing.T, app *Application) {
				w := httptest.NewRecorder()
				app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/verify", nil))
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name: "misses unavailable without database",
			cfg:  baseConfig,
			validate: func(t *testing.T, app *Application) {
				w := httptest.NewRecorder()
				app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lookups/misses", nil))
				assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			},
		},
		{
			name: "missing catalog directory fails",
			cfg: func() config.Config {
				cfg := baseConfig()
				cfg.Catalog.Dir = t.TempDir()
				return cfg
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := InitializeApp(tt.cfg())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, app)
				return
			}
			require.NoError(t, err)
			defer func() {
				assert.NoError(t, app.Close(context.Background()))
			}()

			require.NotNil(t, app.Router)
			require.NotNil(t, app.Bundle)
			tt.validate(t, app)
		})
	}
}

func TestApplication_CloseIsIdempotent(t *testing.T) {
	app, err := InitializeApp(baseConfig())
	require.NoError(t, err)

	assert.NoError(t, app.Close(context.Background()))
	assert.NoError(t, app.Close(context.Background()))
}
