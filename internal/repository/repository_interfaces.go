package repository

import (
	"context"

	"github.com/guttosm/xslt-messages/internal/domain/model"
)

// LookupsRepositoryInterface defines the lookup event store.
type LookupsRepositoryInterface interface {
	Create(ctx context.Context, event *model.LookupEvent) error
	CreateMany(ctx context.Context, events []*model.LookupEvent) error
	Query(ctx context.Context, opts model.LookupQueryOptions) ([]*model.LookupEvent, error)
	Count(ctx context.Context, opts model.LookupQueryOptions) (int64, error)
	TopKeys(ctx context.Context, opts model.LookupQueryOptions) ([]model.KeyCount, error)
}

var (
	_ LookupsRepositoryInterface = (*LookupsRepository)(nil)
	_ LookupsRepositoryInterface = (*LookupsRepositoryWithCircuitBreaker)(nil)
)
