// Package circuitbreaker guards calls to external dependencies such as the
// lookup audit store.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed means calls pass through.
	StateClosed State = iota
	// StateOpen means calls are rejected until the timeout elapses.
	StateOpen
	// StateHalfOpen means trial calls decide whether the circuit closes again.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes needed to close it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before allowing a trial call.
	Timeout time.Duration
	// Name identifies the breaker in logs and metrics.
	Name string
	// OnStateChange, when set, is called after every transition with the lock released.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	mu              sync.RWMutex
}

// New creates a new circuit breaker with the given configuration.
// Non-positive thresholds are raised to one.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold < 1 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold < 1 {
		config.SuccessThreshold = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

type transition struct {
	from, to State
}

// Execute runs fn unless the circuit is open. A cancelled context is
// returned as is and does not count as a failure.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cb.mu.Lock()
	var changes []transition
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.successCount = 0
		changes = append(changes, cb.setState(StateHalfOpen))
	}
	cb.mu.Unlock()
	cb.notify(changes)

	err := fn()

	cb.mu.Lock()
	var change *transition
	if err != nil && !errors.Is(err, context.Canceled) {
		change = cb.onFailure()
	} else if err == nil {
		change = cb.onSuccess()
	}
	cb.mu.Unlock()
	if change != nil {
		cb.notify([]transition{*change})
	}

	return err
}

func (cb *CircuitBreaker) setState(to State) transition {
	t := transition{from: cb.state, to: to}
	cb.state = to
	return t
}

func (cb *CircuitBreaker) notify(changes []transition) {
	for _, t := range changes {
		event := log.Info()
		if t.to == StateOpen {
			event = log.Warn()
		}
		event.
			Str("circuit_breaker", cb.config.Name).
			Str("from", t.from.String()).
			Str("to", t.to.String()).
			Msg("Circuit breaker state changed")

		if cb.config.OnStateChange != nil {
			cb.config.OnStateChange(cb.config.Name, t.from, t.to)
		}
	}
}

func (cb *CircuitBreaker) onFailure() *transition {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			t := cb.setState(StateOpen)
			return &t
		}
	case StateHalfOpen:
		// Any failure in half-open state immediately opens the circuit
		cb.failureCount = cb.config.FailureThreshold
		t := cb.setState(StateOpen)
		return &t
	}
	return nil
}

func (cb *CircuitBreaker) onSuccess() *transition {
	cb.failureCount = 0

	if cb.state != StateHalfOpen {
		cb.successCount = 0
		return nil
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		t := cb.setState(StateClosed)
		return &t
	}
	return nil
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Reset closes the circuit and clears the counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	var changes []transition
	if cb.state != StateClosed {
		changes = append(changes, cb.setState(StateClosed))
	}
	cb.failureCount = 0
	cb.successCount = 0
	cb.mu.Unlock()
	cb.notify(changes)
}

// Stats is a snapshot of circuit breaker counters.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
