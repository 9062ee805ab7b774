package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/circuitbreaker"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/domain/model"
	"github.com/guttosm/xslt-messages/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	handler := NewHandler(service.NewMessageService(catalog.Default()))
	return NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mockMessageService) {
	m := &mockMessageService{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return NewRouter(NewHandler(m), NewHealthHandler(), DefaultRouterConfig()), m
}

func perform(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a SuccessResponse into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var resp struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetMessage(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name         string
		target       string
		headers      map[string]string
		wantTemplate string
		wantLocale   string
		wantStatus   string
		wantAlias    bool
	}{
		{
			name:         "english by default",
			target:       "/api/messages/ER_NO_CURLYBRACE",
			wantTemplate: "Error: Can not have '{' within expression",
			wantLocale:   "en",
			wantStatus:   "found",
		},
		{
			name:         "accept-language selects german",
			target:       "/api/messages/ER_CANNOT_ADD",
			headers:      map[string]string{"Accept-Language": "de-DE,de;q=0.9,en;q=0.5"},
			wantTemplate: "{0} kann nicht zu {1} hinzugefügt werden",
			wantLocale:   "de",
			wantStatus:   "found",
		},
		{
			name:         "lang query wins over header",
			target:       "/api/messages/ER_CANNOT_ADD?lang=en",
			headers:      map[string]string{"Accept-Language": "de"},
			wantTemplate: "Can not add {0} to {1}",
			wantLocale:   "en",
			wantStatus:   "found",
		},
		{
			name:         "unsupported locale falls back to base",
			target:       "/api/messages/ER_CANNOT_ADD?lang=zz",
			wantTemplate: "Can not add {0} to {1}",
			wantLocale:   "en",
			wantStatus:   "found",
		},
		{
			name:         "unknown key serves BAD_CODE",
			target:       "/api/messages/NO_SUCH_KEY",
			wantTemplate: "Parameter to createMessage was out of bounds",
			wantLocale:   "en",
			wantStatus:   "bad_code",
		},
		{
			name:         "unknown key serves localized BAD_CODE",
			target:       "/api/messages/NO_SUCH_KEY?lang=de",
			wantTemplate: "Parameter für createMessage war außerhalb des gültigen Bereichs",
			wantLocale:   "de",
			wantStatus:   "bad_code",
		},
		{
			name:       "alias resolves to canonical key",
			target:     "/api/messages/ER_PRIORITY_NOT_PARSABLE",
			wantLocale: "en",
			wantStatus: "found",
			wantAlias:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodGet, tt.target, "", tt.headers)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLocale, w.Header().Get(ContentLanguageHeader))

			var msg dto.MessageResponse
			decodeData(t, w, &msg)
			assert.Equal(t, tt.wantStatus, msg.Status)
			assert.Equal(t, tt.wantLocale, msg.Locale)
			assert.Equal(t, tt.wantAlias, msg.Alias)
			if tt.wantTemplate != "" {
				assert.Equal(t, tt.wantTemplate, msg.Template)
			} else {
				assert.NotEmpty(t, msg.Template)
			}
		})
	}
}

func TestGetMessage_PassesRequestContext(t *testing.T) {
	router, m := setupRouterWithMock(t)

	m.On("Resolve", mock.Anything, "ER_CANNOT_ADD", mock.MatchedBy(func(o service.ResolveOptions) bool {
		return o.Preference == "sv" && o.RequestID == "req-123"
	})).Return(catalog.Result{
		Key:       "ER_CANNOT_ADD",
		Template:  "Can not add {0} to {1}",
		Requested: language.Swedish,
		Locale:    language.English,
		Status:    catalog.StatusFallback,
	})

	w := perform(router, http.MethodGet, "/api/messages/ER_CANNOT_ADD", "", map[string]string{
		"Accept-Language": "sv",
		"X-Request-ID":    "req-123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", w.Header().Get(ContentLanguageHeader))

	var msg dto.MessageResponse
	decodeData(t, w, &msg)
	assert.Equal(t, "fallback", msg.Status)
	assert.Equal(t, "sv", msg.Requested)
}

func TestLookupMessages(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		headers        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "keeps request order and counts misses",
			body:           `{"keys": ["ER_CANNOT_ADD", "NO_SUCH_KEY", "ER_NO_CURLYBRACE"], "lang": "de"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.LookupResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "de", resp.Locale)
				assert.Equal(t, 1, resp.Misses)
				require.Len(t, resp.Messages, 3)
				assert.Equal(t, "ER_CANNOT_ADD", resp.Messages[0].Key)
				assert.Equal(t, "bad_code", resp.Messages[1].Status)
				assert.Equal(t, "Parameter für createMessage war außerhalb des gültigen Bereichs", resp.Messages[1].Template)
				assert.Equal(t, "ER_NO_CURLYBRACE", resp.Messages[2].Key)
			},
		},
		{
			name:           "falls back to accept-language",
			body:           `{"keys": ["ER_CANNOT_ADD"]}`,
			headers:        map[string]string{"Accept-Language": "de"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.LookupResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "de", resp.Locale)
				assert.Equal(t, 0, resp.Misses)
				assert.Equal(t, "de", w.Header().Get(ContentLanguageHeader))
			},
		},
		{
			name:           "invalid JSON",
			body:           `{"keys": [invalid]}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
			},
		},
		{
			name:           "empty keys fail validation",
			body:           `{"keys": []}`,
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeValidation, resp.Error)
				assert.Contains(t, resp.Details, "keys")
			},
		},
		{
			name:           "empty key element fails validation",
			body:           `{"keys": ["ER_CANNOT_ADD", ""]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Contains(t, resp.Details, "keys.1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/api/messages/lookup", tt.body, tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestListKeys(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{name: "all keys", target: "/api/keys", wantCount: len(catalog.Keys())},
		{name: "prefix filter", target: "/api/keys?prefix=WG_", wantCount: len(catalog.KeysWithPrefix("WG_"))},
		{name: "no match", target: "/api/keys?prefix=NOPE_", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodGet, tt.target, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp dto.KeysResponse
			decodeData(t, w, &resp)
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Keys, tt.wantCount)
			assert.Contains(t, resp.Aliases, "ER_PRIORITY_NOT_PARSABLE")
		})
	}
}

func TestListLocales(t *testing.T) {
	w := perform(setupRouter(), http.MethodGet, "/api/locales", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LocalesResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "en", resp.Base)
	require.NotEmpty(t, resp.Locales)
	assert.Equal(t, "en", resp.Locales[0].Locale)
	assert.True(t, resp.Locales[0].Base)

	locales := make([]string, len(resp.Locales))
	for i, l := range resp.Locales {
		locales[i] = l.Locale
		assert.Equal(t, len(catalog.Keys()), l.Messages)
	}
	assert.ElementsMatch(t, []string{"en", "de", "es", "it", "ja", "sv"}, locales)
}

func TestExportCatalog(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name            string
		target          string
		expectedStatus  int
		wantContentType string
		wantLanguage    string
		wantBody        string
		wantError       string
	}{
		{
			name:            "json by default",
			target:          "/api/locales/de/messages",
			expectedStatus:  http.StatusOK,
			wantContentType: "application/json; charset=utf-8",
			wantLanguage:    "de",
			wantBody:        `"template": "{0} kann nicht zu {1} hinzugefügt werden"`,
		},
		{
			name:            "upper case locale",
			target:          "/api/locales/DE/messages",
			expectedStatus:  http.StatusOK,
			wantContentType: "application/json; charset=utf-8",
			wantLanguage:    "de",
			wantBody:        `"locale": "de"`,
		},
		{
			name:            "toml",
			target:          "/api/locales/en/messages?format=toml",
			expectedStatus:  http.StatusOK,
			wantContentType: "application/toml; charset=utf-8",
			wantBody:        "BAD_CODE",
		},
		{
			name:            "yaml",
			target:          "/api/locales/en/messages?format=yaml",
			expectedStatus:  http.StatusOK,
			wantContentType: "application/yaml; charset=utf-8",
			wantBody:        "ER_CANNOT_ADD:",
		},
		{
			name:           "unsupported format",
			target:         "/api/locales/en/messages?format=xml",
			expectedStatus: http.StatusBadRequest,
			wantError:      dto.ErrCodeInvalidRequest,
		},
		{
			name:           "unknown locale is not negotiated",
			target:         "/api/locales/fr/messages",
			expectedStatus: http.StatusNotFound,
			wantError:      dto.ErrCodeNotFound,
		},
		{
			name:           "malformed locale",
			target:         "/api/locales/not_a_locale!/messages",
			expectedStatus: http.StatusNotFound,
			wantError:      dto.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodGet, tt.target, "", nil)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.wantError != "" {
				resp := decodeError(t, w)
				assert.Equal(t, tt.wantError, resp.Error)
				assert.NotEmpty(t, resp.Message)
				return
			}
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-Type"))
			if tt.wantLanguage != "" {
				assert.Equal(t, tt.wantLanguage, w.Header().Get(ContentLanguageHeader))
			}
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestExportCatalog_InternalError(t *testing.T) {
	router, m := setupRouterWithMock(t)
	m.On("Export", mock.Anything, "en", catalog.FormatJSON).Return(language.English, errors.New("write failed"))

	w := perform(router, http.MethodGet, "/api/locales/en/messages", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
}

func TestVerifyCatalog(t *testing.T) {
	t.Run("embedded catalogs", func(t *testing.T) {
		w := perform(setupRouter(), http.MethodGet, "/api/catalog/verify", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.VerifyResponse
		decodeData(t, w, &resp)
		assert.Equal(t, "en", resp.Base)
		assert.Equal(t, len(catalog.Keys()), resp.Keys)
		assert.NotNil(t, resp.Issues)
	})

	t.Run("reports issues", func(t *testing.T) {
		router, m := setupRouterWithMock(t)
		m.On("Verify").Return(catalog.Report{
			Base:    language.English,
			Locales: []language.Tag{language.English, language.German},
			Keys:    2,
			Issues: []catalog.Issue{
				{Kind: catalog.IssueMissingKey, Locale: language.German, Key: "ER_CANNOT_ADD"},
			},
		})

		w := perform(router, http.MethodGet, "/api/catalog/verify", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.VerifyResponse
		decodeData(t, w, &resp)
		assert.False(t, resp.OK)
		assert.Equal(t, []string{"en", "de"}, resp.Locales)
		assert.Len(t, resp.Issues, 1)
	})
}

func TestListMisses(t *testing.T) {
	since := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         string
		setupMock      func(*mockMessageService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "returns events and top keys",
			target: "/api/lookups/misses?key=NO_SUCH_KEY&locale=de&since=2026-01-28T10:00:00Z&limit=10",
			setupMock: func(m *mockMessageService) {
				m.On("Misses", mock.Anything, mock.MatchedBy(func(q service.MissesQuery) bool {
					return q.Key == "NO_SUCH_KEY" && q.Locale == "de" && q.Limit == 10 &&
						q.Since != nil && q.Since.Equal(since)
				})).Return(&service.MissesResult{
					Events: []*model.LookupEvent{
						{Key: "NO_SUCH_KEY", Status: model.StatusBadCode, Locale: "de"},
					},
					TopKeys: []model.KeyCount{{Key: "NO_SUCH_KEY", Count: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.MissesResponse
				decodeData(t, w, &resp)
				assert.Equal(t, 1, resp.Count)
				require.Len(t, resp.Events, 1)
				assert.Equal(t, "NO_SUCH_KEY", resp.Events[0].Key)
				require.Len(t, resp.TopKeys, 1)
				assert.Equal(t, int64(1), resp.TopKeys[0].Count)
			},
		},
		{
			name:           "invalid since",
			target:         "/api/lookups/misses?since=yesterday",
			setupMock:      func(*mockMessageService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, w).Details, "since")
			},
		},
		{
			name:           "invalid limit",
			target:         "/api/lookups/misses?limit=-1",
			setupMock:      func(*mockMessageService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, w).Details, "limit")
			},
		},
		{
			name:   "audit trail disabled",
			target: "/api/lookups/misses",
			setupMock: func(m *mockMessageService) {
				m.On("Misses", mock.Anything, mock.Anything).Return(nil, service.ErrAuditDisabled)
			},
			expectedStatus: http.StatusServiceUnavailable,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
			},
		},
		{
			name:   "circuit open",
			target: "/api/lookups/misses",
			setupMock: func(m *mockMessageService) {
				m.On("Misses", mock.Anything, mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "store failure",
			target: "/api/lookups/misses",
			setupMock: func(m *mockMessageService) {
				m.On("Misses", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMock(t)
			tt.setupMock(m)

			w := perform(router, http.MethodGet, tt.target, "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestListMisses_WithoutAuditTrail(t *testing.T) {
	w := perform(setupRouter(), http.MethodGet, "/api/lookups/misses", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
}
