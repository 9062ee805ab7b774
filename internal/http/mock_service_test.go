package http

import (
	"context"
	"io"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/internal/service"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"
)

// mockMessageService lives here because package mocks cannot import service.
type mockMessageService struct {
	mock.Mock
}

func (m *mockMessageService) Resolve(ctx context.Context, key string, opts service.ResolveOptions) catalog.Result {
	args := m.Called(ctx, key, opts)
	return args.Get(0).(catalog.Result)
}

func (m *mockMessageService) ResolveMany(ctx context.Context, keys []string, opts service.ResolveOptions) (language.Tag, []catalog.Result) {
	args := m.Called(ctx, keys, opts)
	return args.Get(0).(language.Tag), args.Get(1).([]catalog.Result)
}

func (m *mockMessageService) Keys(prefix string) []string {
	args := m.Called(prefix)
	return args.Get(0).([]string)
}

func (m *mockMessageService) Locales() []service.LocaleSummary {
	args := m.Called()
	return args.Get(0).([]service.LocaleSummary)
}

func (m *mockMessageService) Export(w io.Writer, locale string, format catalog.Format) (language.Tag, error) {
	args := m.Called(w, locale, format)
	return args.Get(0).(language.Tag), args.Error(1)
}

func (m *mockMessageService) Verify() catalog.Report {
	args := m.Called()
	return args.Get(0).(catalog.Report)
}

func (m *mockMessageService) Misses(ctx context.Context, q service.MissesQuery) (*service.MissesResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MissesResult), args.Error(1)
}

func (m *mockMessageService) InvalidateCache() {
	m.Called()
}

var _ service.MessageService = (*mockMessageService)(nil)
