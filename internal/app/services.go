package app

import (
	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Messages service.MessageService
	Recorder service.LookupRecorder
	cache    *service.ShardedCache[catalog.Result]
}

// InitializeServices creates the message service. Lookups are cached when
// cfg.Size is positive and recorded when a lookup repository is available.
func InitializeServices(bundle *catalog.Bundle, cfg config.CacheConfig, db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{Recorder: service.NopRecorder{}}
	var opts []service.MessageServiceOption

	if cfg.Size > 0 {
		components.cache = service.NewShardedCache[catalog.Result](cfg.Size, cfg.TTL, 0)
		opts = append(opts, service.WithCache(components.cache))
	}

	if db != nil && db.LookupsRepo != nil {
		components.Recorder = service.NewAsyncRecorder(db.LookupsRepo, service.DefaultRecorderConfig())
		opts = append(opts,
			service.WithRecorder(components.Recorder),
			service.WithLookupsRepository(db.LookupsRepo),
		)
	}

	components.Messages = service.NewMessageService(bundle, opts...)
	return components
}

// Close flushes queued lookup events and stops the cache janitors.
func (s *ServiceComponents) Close() {
	s.Recorder.Stop()
	if s.cache != nil {
		s.cache.Stop()
	}
}
