package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// StateChangeFunc is called outside the breaker lock after every transition.
type StateChangeFunc func(from, to CircuitState)

// CircuitBreaker trips after a run of consecutive failures and lets a
// bounded number of trial calls through once the open timeout elapses.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration
	halfOpenMaxReq   int
	onStateChange    StateChangeFunc

	state       CircuitState
	failures    int
	openedAt    time.Time
	trials      int
	trialWins   int
	rejected    uint64
	transitions uint64
	pending     pendingTransition
	now         func() time.Time
}

// Counts is a point-in-time view used for health output.
type Counts struct {
	State               CircuitState
	ConsecutiveFailures int
	Rejected            uint64
	Transitions         uint64
	OpenedAt            time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	})

	return &CircuitBreaker{
		failureThreshold: cfg.FailureThreshold,
		openTimeout:      cfg.OpenTimeout,
		halfOpenMaxReq:   cfg.HalfOpenMaxReq,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
}

// OnStateChange registers fn. Not safe to call concurrently with traffic.
func (b *CircuitBreaker) OnStateChange(fn StateChangeFunc) {
	b.mu.Lock()
	b.onStateChange = fn
	b.mu.Unlock()
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.openTimeout {
			b.rejected++
			b.unlockAndNotify()
			return ErrCircuitOpen
		}
		b.moveTo(CircuitStateHalfOpen)
	}

	if b.state == CircuitStateHalfOpen {
		if b.trials >= b.halfOpenMaxReq {
			b.rejected++
			b.unlockAndNotify()
			return ErrCircuitOpen
		}
		b.trials++
	}

	b.unlockAndNotify()
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		if b.trials > 0 {
			b.trials--
		}
		b.trialWins++
		if b.trialWins >= b.halfOpenMaxReq && b.trials == 0 {
			b.moveTo(CircuitStateClosed)
		}
	}

	b.unlockAndNotify()
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.moveTo(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.moveTo(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}

	b.unlockAndNotify()
}

// State reports half_open once the open timeout has elapsed even if no
// request has arrived to move the breaker yet.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.effectiveState()
}

func (b *CircuitBreaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Counts{
		State:               b.effectiveState(),
		ConsecutiveFailures: b.failures,
		Rejected:            b.rejected,
		Transitions:         b.transitions,
		OpenedAt:            b.openedAt,
	}
}

func (b *CircuitBreaker) effectiveState() CircuitState {
	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

// pendingTransition holds the last transition until the lock is released.
type pendingTransition struct {
	from, to CircuitState
	fn       StateChangeFunc
}

var noTransition pendingTransition

func (b *CircuitBreaker) moveTo(next CircuitState) {
	prev := b.state
	b.state = next
	b.trials = 0
	b.trialWins = 0
	switch next {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
	if prev != next {
		b.transitions++
		b.pending = pendingTransition{from: prev, to: next, fn: b.onStateChange}
	}
}

func (b *CircuitBreaker) unlockAndNotify() {
	p := b.pending
	b.pending = noTransition
	b.mu.Unlock()
	if p.fn != nil {
		p.fn(p.from, p.to)
	}
}
