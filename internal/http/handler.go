package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/circuitbreaker"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/domain/model"
	"github.com/guttosm/xslt-messages/internal/i18n"
	"github.com/guttosm/xslt-messages/internal/middleware"
	"github.com/guttosm/xslt-messages/internal/service"
)

// ContentLanguageHeader carries the locale of the served templates.
const ContentLanguageHeader = "Content-Language"

// Handler provides the HTTP handlers of the message routes.
type Handler struct {
	messages service.MessageService
}

// NewHandler creates a new Handler instance.
func NewHandler(messages service.MessageService) *Handler {
	return &Handler{messages: messages}
}

func resolveOptions(c *gin.Context, preference string) service.ResolveOptions {
	return service.ResolveOptions{
		Preference: preference,
		RequestID:  middleware.GetRequestID(c),
	}
}

// GetMessage handles GET /api/messages/:key requests.
//
// @Summary      Look up a message template
// @Description  Resolves a message key for the caller's locale preference (lang query parameter, then Accept-Language). Keys missing from the matched locale come from the base locale. Unknown keys resolve to the BAD_CODE template and are still answered with 200.
// @Tags         Messages
// @Produce      json
// @Param        key path string true "Message key" example(ER_NO_CURLYBRACE)
// @Param        lang query string false "Locale override" example(de)
// @Param        Accept-Language header string false "Locale preference"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Resolved template"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/messages/{key} [get]
func (h *Handler) GetMessage(c *gin.Context) {
	res := h.messages.Resolve(c.Request.Context(), c.Param("key"), resolveOptions(c, i18n.Preference(c)))

	c.Header(ContentLanguageHeader, res.Locale.String())
	NewResponseBuilder(c).SuccessOK(dto.NewMessageResponse(res))
}

// LookupMessages handles POST /api/messages/lookup requests.
//
// @Summary      Look up several message templates
// @Description  Resolves up to 200 keys against one negotiated locale. The body's lang wins over Accept-Language. Results keep the request order; misses counts keys that resolved to BAD_CODE.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body dto.LookupRequest true "Keys to resolve"
// @Success      200 {object} dto.SuccessResponse{data=dto.LookupResponse} "Resolved templates"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed body"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/messages/lookup [post]
func (h *Handler) LookupMessages(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LookupRequest](c)
	if err != nil {
		if IsValidationError(err) {
			builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyValidationFailed, dto.ValidationDetails(err), err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	preference := req.Lang
	if strings.TrimSpace(preference) == "" {
		preference = i18n.Preference(c)
	}

	tag, results := h.messages.ResolveMany(c.Request.Context(), req.Keys, resolveOptions(c, preference))

	resp := dto.LookupResponse{
		Locale:   tag.String(),
		Messages: make([]dto.MessageResponse, len(results)),
	}
	for i, res := range results {
		resp.Messages[i] = dto.NewMessageResponse(res)
		if res.Status == catalog.StatusBadCode {
			resp.Misses++
		}
	}

	c.Header(ContentLanguageHeader, resp.Locale)
	builder.SuccessOK(resp)
}

// ListKeys handles GET /api/keys requests.
//
// @Summary      List registered keys
// @Description  Returns the key registry in registry order, optionally filtered by prefix, along with the accepted key aliases.
// @Tags         Registry
// @Produce      json
// @Param        prefix query string false "Key prefix" example(ER_)
// @Success      200 {object} dto.SuccessResponse{data=dto.KeysResponse} "Registered keys"
// @Router       /api/keys [get]
func (h *Handler) ListKeys(c *gin.Context) {
	keys := h.messages.Keys(c.Query("prefix"))

	NewResponseBuilder(c).SuccessOK(dto.KeysResponse{
		Count:   len(keys),
		Keys:    keys,
		Aliases: catalog.Aliases(),
	})
}

// ListLocales handles GET /api/locales requests.
//
// @Summary      List loaded locales
// @Description  Returns every loaded catalog with its message count, base locale first.
// @Tags         Registry
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.LocalesResponse} "Loaded locales"
// @Router       /api/locales [get]
func (h *Handler) ListLocales(c *gin.Context) {
	summaries := h.messages.Locales()

	resp := dto.LocalesResponse{Locales: make([]dto.LocaleInfo, len(summaries))}
	for i, s := range summaries {
		resp.Locales[i] = dto.LocaleInfo{Locale: s.Tag.String(), Messages: s.Messages, Base: s.Base}
		if s.Base {
			resp.Base = s.Tag.String()
		}
	}

	NewResponseBuilder(c).SuccessOK(resp)
}

// ExportCatalog handles GET /api/locales/:locale/messages requests.
//
// @Summary      Export a locale catalog
// @Description  Writes the catalog of exactly one locale in registry order. No locale negotiation takes place.
// @Tags         Registry
// @Produce      json
// @Produce      application/toml
// @Produce      application/yaml
// @Param        locale path string true "Locale tag" example(de)
// @Param        format query string false "Export format" Enums(json, toml, yaml)
// @Success      200 {object} map[string]interface{} "Locale and its messages"
// @Failure      400 {object} dto.ErrorResponse "Unsupported format"
// @Failure      404 {object} dto.ErrorResponse "No catalog for the locale"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/locales/{locale}/messages [get]
func (h *Handler) ExportCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := c.Param("locale")

	format, err := catalog.ParseFormat(c.Query("format"))
	if err != nil {
		builder.ErrorWithData(http.StatusBadRequest, i18n.ErrKeyUnsupportedFormat, map[string]any{"Format": c.Query("format")}, err)
		return
	}

	var buf bytes.Buffer
	tag, err := h.messages.Export(&buf, locale, format)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedLocale) {
			builder.ErrorWithData(http.StatusNotFound, i18n.ErrKeyUnsupportedLocale, map[string]any{"Locale": locale}, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Header(ContentLanguageHeader, tag.String())
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// VerifyCatalog handles GET /api/catalog/verify requests.
//
// @Summary      Verify catalogs
// @Description  Checks every loaded catalog against the key registry and the base locale: missing and unknown keys, empty templates and placeholder mismatches.
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.VerifyResponse} "Verification report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/catalog/verify [get]
func (h *Handler) VerifyCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewVerifyResponse(h.messages.Verify()))
}

// ListMisses handles GET /api/lookups/misses requests.
//
// @Summary      List unknown-key lookups
// @Description  Returns recent lookups that resolved to BAD_CODE, newest first, with per-key totals. Requires the MongoDB audit trail.
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        key query string false "Filter by key"
// @Param        locale query string false "Filter by served locale"
// @Param        since query string false "RFC 3339 lower bound" example(2026-01-28T10:00:00Z)
// @Param        limit query int false "Maximum events" default(50) maximum(500)
// @Success      200 {object} dto.SuccessResponse{data=dto.MissesResponse} "Recent misses"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Audit trail disabled or unavailable"
// @Security     ApiKeyAuth
// @Router       /api/lookups/misses [get]
func (h *Handler) ListMisses(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q := service.MissesQuery{
		Key:    c.Query("key"),
		Locale: c.Query("locale"),
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, map[string]string{"since": "must be an RFC 3339 timestamp"}, err)
			return
		}
		q.Since = &since
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, map[string]string{"limit": "must be a non-negative integer"}, err)
			return
		}
		q.Limit = limit
	}

	result, err := h.messages.Misses(c.Request.Context(), q)
	switch {
	case errors.Is(err, service.ErrAuditDisabled):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAuditDisabled, nil)
		return
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	events := make([]model.LookupEvent, 0, len(result.Events))
	for _, e := range result.Events {
		if e != nil {
			events = append(events, *e)
		}
	}

	builder.SuccessOK(dto.MissesResponse{
		Count:   len(events),
		Events:  events,
		TopKeys: result.TopKeys,
	})
}
