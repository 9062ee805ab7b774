package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyValidationFailed indicates a decoded body that failed validation.
	ErrKeyValidationFailed = "error.validation_failed"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyUnsupportedLocale indicates a locale with no catalog. Takes {{.Locale}}.
	ErrKeyUnsupportedLocale = "error.unsupported_locale"
	// ErrKeyUnsupportedFormat indicates an unknown export format. Takes {{.Format}}.
	ErrKeyUnsupportedFormat = "error.unsupported_format"
	// ErrKeyAuditDisabled indicates the lookup audit trail is not configured.
	ErrKeyAuditDisabled = "error.audit_disabled"
	// ErrKeyServiceUnavailable indicates a dependency is temporarily unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)
