package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Execute while the breaker is tripped.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig holds the trip and recovery thresholds.
type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive failures that trip the breaker
	SuccessThreshold int           // consecutive probe successes that reset it
	OpenTimeout      time.Duration // wait before allowing a probe
}

// DefaultCBConfig returns the defaults used for the share webhook.
func DefaultCBConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      time.Minute,
	}
}

// CircuitBreaker guards calls to the share webhook so that a dead endpoint
// fails fast instead of stalling every report share. It follows the usual
// closed/open/half-open cycle: after FailureThreshold consecutive failures
// calls are rejected for OpenTimeout, then single probes are let through
// until SuccessThreshold of them succeed in a row.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig

	mu        sync.Mutex
	tripped   bool
	failures  int // consecutive failures while closed
	successes int // consecutive probe successes while tripped
	trippedAt time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = time.Minute
	}
	return &CircuitBreaker{cfg: cfg}
}

// Execute runs fn unless the breaker is tripped and still inside its
// cool-down, in which case it returns ErrCircuitOpen without calling fn.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}
	err := fn()
	cb.record(err)
	return err
}

// State reports "closed", "open" or "half-open" for the health endpoint.
func (cb *CircuitBreaker) State() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch {
	case !cb.tripped:
		return "closed"
	case time.Since(cb.trippedAt) >= cb.cfg.OpenTimeout:
		return "half-open"
	default:
		return "open"
	}
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if !cb.tripped {
		return true
	}
	// Tripped: only probe once the cool-down has elapsed.
	return time.Since(cb.trippedAt) >= cb.cfg.OpenTimeout
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.successes = 0
		if cb.tripped {
			// Failed probe restarts the cool-down.
			cb.trippedAt = time.Now()
			return
		}
		cb.failures++
		if cb.failures >= cb.cfg.FailureThreshold {
			cb.tripped = true
			cb.trippedAt = time.Now()
		}
		return
	}

	if cb.tripped {
		cb.successes++
		if cb.successes >= cb.cfg.SuccessThreshold {
			cb.tripped = false
			cb.failures = 0
			cb.successes = 0
		}
		return
	}
	cb.failures = 0
}
