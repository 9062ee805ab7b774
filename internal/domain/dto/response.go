package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidation indicates a request body that failed validation.
	ErrCodeValidation = "validation_failed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a disabled or failing dependency.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Request validation failed"`
	// Details contains per-field validation messages (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// MessageResponse is the outcome of resolving one key.
// @Description A resolved message template and where it came from
type MessageResponse struct {
	Key       string `json:"key" example:"ER_NO_CURLYBRACE"`
	Template  string `json:"template" example:"Error: Can not have '{' within expression"`
	Requested string `json:"requested" example:"de"`
	Locale    string `json:"locale" example:"de"`
	Status    string `json:"status" example:"found" enums:"found,fallback,bad_code"`
	Alias     bool   `json:"alias,omitempty"`
} // @name MessageResponse

// NewMessageResponse converts a catalog result.
func NewMessageResponse(r catalog.Result) MessageResponse {
	return MessageResponse{
		Key:       r.Key,
		Template:  r.Template,
		Requested: r.Requested.String(),
		Locale:    r.Locale.String(),
		Status:    string(r.Status),
		Alias:     r.Alias,
	}
}

// LookupResponse is the outcome of a batch lookup.
// @Description Resolved templates, in request order
type LookupResponse struct {
	Locale   string            `json:"locale" example:"de"`
	Messages []MessageResponse `json:"messages"`
	Misses   int               `json:"misses" example:"0"`
} // @name LookupResponse

// KeysResponse lists registered keys.
// @Description Registered message keys in registry order
type KeysResponse struct {
	Count   int               `json:"count" example:"319"`
	Keys    []string          `json:"keys"`
	Aliases map[string]string `json:"aliases,omitempty"`
} // @name KeysResponse

// LocaleInfo describes one loaded catalog.
type LocaleInfo struct {
	Locale   string `json:"locale" example:"de"`
	Messages int    `json:"messages" example:"319"`
	Base     bool   `json:"base,omitempty"`
} // @name LocaleInfo

// LocalesResponse lists loaded catalogs.
// @Description Loaded locales, base locale first
type LocalesResponse struct {
	Base    string       `json:"base" example:"en"`
	Locales []LocaleInfo `json:"locales"`
} // @name LocalesResponse

// MissesResponse lists recent lookups that ended in BAD_CODE.
// @Description Recent unknown-key lookups, newest first
type MissesResponse struct {
	Count   int                 `json:"count"`
	Events  []model.LookupEvent `json:"events"`
	TopKeys []model.KeyCount    `json:"top_keys,omitempty"`
} // @name MissesResponse

// VerifyResponse is a catalog verification report.
// @Description Catalog integrity findings; ok is true when there are none
type VerifyResponse struct {
	OK      bool            `json:"ok" example:"true"`
	Base    string          `json:"base" example:"en"`
	Locales []string        `json:"locales"`
	Keys    int             `json:"keys" example:"319"`
	Issues  []catalog.Issue `json:"issues"`
} // @name VerifyResponse

// NewVerifyResponse converts a catalog report.
func NewVerifyResponse(r catalog.Report) VerifyResponse {
	locales := make([]string, len(r.Locales))
	for i, tag := range r.Locales {
		locales[i] = tag.String()
	}
	issues := r.Issues
	if issues == nil {
		issues = []catalog.Issue{}
	}
	return VerifyResponse{
		OK:      r.OK(),
		Base:    r.Base.String(),
		Locales: locales,
		Keys:    r.Keys,
		Issues:  issues,
	}
}
