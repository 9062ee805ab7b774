package app

import (
	"context"
	"time"

	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/circuitbreaker"
	"github.com/guttosm/xslt-messages/internal/metrics"
	"github.com/guttosm/xslt-messages/internal/repository"
	"github.com/rs/zerolog/log"
)

const setupTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	LookupsRepo           repository.LookupsRepositoryInterface
	LookupsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the lookup audit repository.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without lookup audit trail")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LookupsTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		if err := db.SetLookupsTTL(ctx, cfg.LookupsTTL); err != nil {
			log.Warn().Err(err).Dur("ttl", cfg.LookupsTTL).Msg("Failed to set lookups TTL index")
		}
		cancel()
	}

	lookupsCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-lookups"))
	lookupsRepo := repository.NewLookupsRepositoryWithCircuitBreaker(repository.NewLookupsRepository(db), lookupsCB)

	return &DatabaseComponents{
		DB:                    db,
		LookupsRepo:           lookupsRepo,
		LookupsCircuitBreaker: lookupsCB,
	}
}

// breakerConfig builds a circuit breaker configuration whose transitions are
// exported as metrics.
func breakerConfig(cfg config.DatabaseConfig, name string) circuitbreaker.Config {
	cbCfg := circuitbreaker.DefaultConfig()
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	cbCfg.Name = name
	cbCfg.OnStateChange = func(name string, _, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	}
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cbCfg
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
