package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/xslt-messages/internal/domain/model"
	"github.com/guttosm/xslt-messages/internal/logger"
	"github.com/guttosm/xslt-messages/internal/metrics"
	"github.com/guttosm/xslt-messages/internal/repository"
)

// LookupRecorder accepts lookup events for the audit trail.
type LookupRecorder interface {
	// Record enqueues event and reports whether it was accepted.
	// It never blocks.
	Record(event *model.LookupEvent) bool
	// Stop flushes pending events and releases workers.
	Stop()
}

// NopRecorder discards every event. It is used when MongoDB is disabled.
type NopRecorder struct{}

// Record discards event.
func (NopRecorder) Record(*model.LookupEvent) bool { return false }

// Stop does nothing.
func (NopRecorder) Stop() {}

// RecorderConfig configures an AsyncRecorder.
type RecorderConfig struct {
	// BufferSize is the capacity of the event queue.
	BufferSize int
	// NumWorkers is the number of goroutines writing to the store.
	NumWorkers int
	// BatchSize is the largest batch passed to CreateMany.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout bounds every CreateMany call.
	WriteTimeout time.Duration
}

// DefaultRecorderConfig returns the production recorder settings.
func DefaultRecorderConfig() RecorderConfig {
	return RecorderConfig{
		BufferSize:    1000,
		NumWorkers:    4,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// RecorderStats counts what happened to recorded events.
type RecorderStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
}

// AsyncRecorder writes lookup events in batches from a fixed worker pool.
// Events are dropped when the queue is full.
type AsyncRecorder struct {
	repo     repository.LookupsRepositoryInterface
	cfg      RecorderConfig
	eventCh  chan *model.LookupEvent
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// mu orders Record sends before the close of stopCh, so that the
	// workers' final drain sees every enqueued event.
	mu      sync.RWMutex
	stopped bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncRecorder starts the worker pool.
func NewAsyncRecorder(repo repository.LookupsRepositoryInterface, cfg RecorderConfig) *AsyncRecorder {
	def := DefaultRecorderConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	r := &AsyncRecorder{
		repo:    repo,
		cfg:     cfg,
		eventCh: make(chan *model.LookupEvent, cfg.BufferSize),
		stopCh:  make(chan struct{}),
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Record enqueues event unless the recorder is stopped or the queue is full.
func (r *AsyncRecorder) Record(event *model.LookupEvent) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		r.drop("stopped")
		return false
	}

	select {
	case r.eventCh <- event:
		r.enqueued.Add(1)
		return true
	default:
		r.drop("buffer_full")
		return false
	}
}

func (r *AsyncRecorder) drop(reason string) {
	r.dropped.Add(1)
	metrics.RecordDroppedLookupEvent(reason)
}

func (r *AsyncRecorder) worker() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LookupEvent, 0, r.cfg.BatchSize)
	for {
		select {
		case event := <-r.eventCh:
			batch = append(batch, event)
			if len(batch) >= r.cfg.BatchSize {
				batch = r.flush(batch)
			}
		case <-ticker.C:
			batch = r.flush(batch)
		case <-r.stopCh:
			for {
				select {
				case event := <-r.eventCh:
					batch = append(batch, event)
					if len(batch) >= r.cfg.BatchSize {
						batch = r.flush(batch)
					}
				default:
					r.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes batch and returns a fresh empty batch.
func (r *AsyncRecorder) flush(batch []*model.LookupEvent) []*model.LookupEvent {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.WriteTimeout)
	defer cancel()

	if err := r.repo.CreateMany(ctx, batch); err != nil {
		r.failed.Add(int64(len(batch)))
		log := logger.Component("recorder")
		log.Warn().Err(err).Int("events", len(batch)).Msg("Failed to write lookup events")
	} else {
		r.written.Add(int64(len(batch)))
	}

	return make([]*model.LookupEvent, 0, r.cfg.BatchSize)
}

// Stop drains the queue and waits for the workers. It is safe to call more than once.
func (r *AsyncRecorder) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		close(r.stopCh)
		r.mu.Unlock()
		r.wg.Wait()
	})
}

// Stats returns the event counters.
func (r *AsyncRecorder) Stats() RecorderStats {
	return RecorderStats{
		Enqueued: r.enqueued.Load(),
		Dropped:  r.dropped.Load(),
		Written:  r.written.Load(),
		Failed:   r.failed.Load(),
	}
}

var (
	_ LookupRecorder = NopRecorder{}
	_ LookupRecorder = (*AsyncRecorder)(nil)
)
