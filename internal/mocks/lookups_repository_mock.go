// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/xslt-messages/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLookupsRepository struct {
	mock.Mock
}

func (m *MockLookupsRepository) Create(ctx context.Context, event *model.LookupEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLookupsRepository) CreateMany(ctx context.Context, events []*model.LookupEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockLookupsRepository) Query(ctx context.Context, opts model.LookupQueryOptions) ([]*model.LookupEvent, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LookupEvent), args.Error(1)
}

func (m *MockLookupsRepository) Count(ctx context.Context, opts model.LookupQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLookupsRepository) TopKeys(ctx context.Context, opts model.LookupQueryOptions) ([]model.KeyCount, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.KeyCount), args.Error(1)
}
