package repository

import (
	"context"
	"errors"

	"github.com/guttosm/xslt-messages/internal/circuitbreaker"
	"github.com/guttosm/xslt-messages/internal/domain/model"
)

// LookupsRepositoryWithCircuitBreaker guards a lookups repository with a circuit breaker.
// Writes are dropped while the circuit is open; reads return ErrCircuitOpen.
type LookupsRepositoryWithCircuitBreaker struct {
	repo           LookupsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLookupsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLookupsRepositoryWithCircuitBreaker(repo LookupsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LookupsRepositoryWithCircuitBreaker {
	return &LookupsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single event.
func (r *LookupsRepositoryWithCircuitBreaker) Create(ctx context.Context, event *model.LookupEvent) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, event)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of events.
func (r *LookupsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, events []*model.LookupEvent) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, events)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves events.
func (r *LookupsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LookupQueryOptions) ([]*model.LookupEvent, error) {
	var result []*model.LookupEvent
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts events.
func (r *LookupsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LookupQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// TopKeys aggregates events per key.
func (r *LookupsRepositoryWithCircuitBreaker) TopKeys(ctx context.Context, opts model.LookupQueryOptions) ([]model.KeyCount, error) {
	var result []model.KeyCount
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.TopKeys(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LookupsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
