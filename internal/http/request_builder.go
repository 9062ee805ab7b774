package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
	"github.com/guttosm/xslt-messages/internal/middleware"
)

var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// RequestBuilder decodes request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a request builder for c.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind decodes the JSON body into v.
func (b *RequestBuilder) Bind(v interface{}) error {
	return b.c.ShouldBindJSON(v)
}

// ResponseBuilder writes the response envelopes of the API.
// Envelopes come from a sync.Pool; gin serializes synchronously.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK writes a 200 SuccessResponse.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with an ErrorResponse whose message is messageKey translated
// for the request. err, when set, is attached for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithData(statusCode, messageKey, nil, err)
}

// ErrorWithData is Error for messages that take template data.
func (b *ResponseBuilder) ErrorWithData(statusCode int, messageKey string, data map[string]any, err error) {
	message := i18n.GetTranslator().TranslateWithData(messageKey, i18n.GetLocale(b.c), data)
	b.write(statusCode, message, nil, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.write(statusCode, message, details, err)
}

func (b *ResponseBuilder) write(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// BuildRequest decodes the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator is implemented by request types that validate themselves.
type Validator interface {
	Validate() error
}

// errValidation wraps a Validate failure so callers can tell it from a decode error.
type errValidation struct {
	err error
}

func (e *errValidation) Error() string { return e.err.Error() }
func (e *errValidation) Unwrap() error { return e.err }

// BuildRequestAndValidate decodes the body and runs Validate when T implements Validator.
// Validation failures are returned wrapped so that IsValidationError reports true.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, &errValidation{err: err}
		}
	}
	return req, nil
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve *errValidation
	return errors.As(err, &ve)
}
