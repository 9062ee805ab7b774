package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/domain/model"
	"github.com/guttosm/xslt-messages/internal/metrics"
	"github.com/guttosm/xslt-messages/internal/repository"
	"github.com/guttosm/xslt-messages/internal/service/cache"
	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedLocale is returned when no catalog exists for a locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrAuditDisabled is returned by audit queries when no lookup store is configured.
	ErrAuditDisabled = errors.New("lookup audit trail disabled")
)

const (
	// DefaultMissesLimit is the number of events returned by Misses when no limit is given.
	DefaultMissesLimit = 50
	// MaxMissesLimit caps the limit accepted by Misses.
	MaxMissesLimit = 500
)

// ResolveOptions carries per-request lookup context.
type ResolveOptions struct {
	// Preference is a locale tag or Accept-Language value.
	Preference string
	// RequestID is copied into recorded events.
	RequestID string
}

// LocaleSummary describes one loaded catalog.
type LocaleSummary struct {
	Tag      language.Tag
	Messages int
	Base     bool
}

// MissesQuery filters Misses.
type MissesQuery struct {
	Key    string
	Locale string
	Since  *time.Time
	Limit  int
}

// MissesResult holds recent BAD_CODE events and their per-key totals.
type MissesResult struct {
	Events  []*model.LookupEvent
	TopKeys []model.KeyCount
}

// MessageService resolves catalog messages.
type MessageService interface {
	Resolve(ctx context.Context, key string, opts ResolveOptions) catalog.Result
	ResolveMany(ctx context.Context, keys []string, opts ResolveOptions) (language.Tag, []catalog.Result)
	Keys(prefix string) []string
	Locales() []LocaleSummary
	Export(w io.Writer, locale string, format catalog.Format) (language.Tag, error)
	Verify() catalog.Report
	Misses(ctx context.Context, q MissesQuery) (*MissesResult, error)
	InvalidateCache()
}

// MessageServiceImpl is the MessageService backed by a catalog bundle.
type MessageServiceImpl struct {
	bundle   *catalog.Bundle
	cache    cache.CacheWithMetrics[catalog.Result]
	recorder LookupRecorder
	lookups  repository.LookupsRepositoryInterface
}

// MessageServiceOption configures NewMessageService.
type MessageServiceOption func(*MessageServiceImpl)

// WithCache caches resolved results.
func WithCache(c cache.CacheWithMetrics[catalog.Result]) MessageServiceOption {
	return func(s *MessageServiceImpl) {
		s.cache = c
	}
}

// WithRecorder records every lookup.
func WithRecorder(r LookupRecorder) MessageServiceOption {
	return func(s *MessageServiceImpl) {
		s.recorder = r
	}
}

// WithLookupsRepository enables Misses.
func WithLookupsRepository(repo repository.LookupsRepositoryInterface) MessageServiceOption {
	return func(s *MessageServiceImpl) {
		s.lookups = repo
	}
}

// NewMessageService creates a message service over bundle.
func NewMessageService(bundle *catalog.Bundle, opts ...MessageServiceOption) *MessageServiceImpl {
	s := &MessageServiceImpl{
		bundle:   bundle,
		recorder: NopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cacheKey(preference, key string) string {
	return preference + "\x00" + key
}

// Resolve looks key up for opts.Preference and records the outcome.
func (s *MessageServiceImpl) Resolve(_ context.Context, key string, opts ResolveOptions) catalog.Result {
	res := s.resolve(key, strings.TrimSpace(opts.Preference))
	s.record(res, opts)
	return res
}

// ResolveMany resolves keys in order. The returned tag is the locale the
// preference matched.
func (s *MessageServiceImpl) ResolveMany(_ context.Context, keys []string, opts ResolveOptions) (language.Tag, []catalog.Result) {
	pref := strings.TrimSpace(opts.Preference)
	results := make([]catalog.Result, len(keys))
	for i, key := range keys {
		results[i] = s.resolve(key, pref)
		s.record(results[i], opts)
	}
	return s.bundle.Match(pref), results
}

func (s *MessageServiceImpl) resolve(key, preference string) catalog.Result {
	if s.cache == nil {
		return s.bundle.Resolve(key, preference)
	}

	ck := cacheKey(preference, key)
	if res, ok := s.cache.Get(ck); ok {
		return res
	}
	res := s.bundle.Resolve(key, preference)
	s.cache.Set(ck, res)

	m := s.cache.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	return res
}

func (s *MessageServiceImpl) record(res catalog.Result, opts ResolveOptions) {
	metrics.RecordLookup(res.Locale.String(), string(res.Status))
	s.recorder.Record(&model.LookupEvent{
		Timestamp:  time.Now().UTC(),
		Key:        res.Key,
		Preference: opts.Preference,
		Requested:  res.Requested.String(),
		Locale:     res.Locale.String(),
		Status:     string(res.Status),
		Alias:      res.Alias,
		RequestID:  opts.RequestID,
	})
}

// Keys returns the registry, optionally filtered by prefix.
func (s *MessageServiceImpl) Keys(prefix string) []string {
	if prefix == "" {
		return catalog.Keys()
	}
	return catalog.KeysWithPrefix(prefix)
}

// Locales lists the loaded catalogs, base locale first.
func (s *MessageServiceImpl) Locales() []LocaleSummary {
	tags := s.bundle.Locales()
	out := make([]LocaleSummary, 0, len(tags))
	for _, tag := range tags {
		c, _ := s.bundle.Catalog(tag)
		out = append(out, LocaleSummary{
			Tag:      tag,
			Messages: c.Len(),
			Base:     tag == s.bundle.Base(),
		})
	}
	return out
}

// Export writes the catalog of exactly locale and returns its tag. Unlike
// lookups there is no negotiation: an unknown locale yields ErrUnsupportedLocale.
func (s *MessageServiceImpl) Export(w io.Writer, locale string, format catalog.Format) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	c, ok := s.bundle.Catalog(tag)
	if !ok {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return c.Tag(), c.Export(w, format)
}

// Verify runs the catalog integrity checks.
func (s *MessageServiceImpl) Verify() catalog.Report {
	return s.bundle.Verify()
}

// Misses returns recent lookups that ended in BAD_CODE.
func (s *MessageServiceImpl) Misses(ctx context.Context, q MissesQuery) (*MissesResult, error) {
	if s.lookups == nil {
		return nil, ErrAuditDisabled
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultMissesLimit
	}
	if limit > MaxMissesLimit {
		limit = MaxMissesLimit
	}

	opts := model.LookupQueryOptions{
		Key:    q.Key,
		Status: model.StatusBadCode,
		Locale: q.Locale,
		Since:  q.Since,
		Limit:  limit,
	}

	events, err := s.lookups.Query(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("query misses: %w", err)
	}
	top, err := s.lookups.TopKeys(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("aggregate misses: %w", err)
	}

	return &MissesResult{Events: events, TopKeys: top}, nil
}

// InvalidateCache drops every cached result.
func (s *MessageServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

var _ MessageService = (*MessageServiceImpl)(nil)
