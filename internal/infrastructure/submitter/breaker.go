package submitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/sony/gobreaker"
)

// BreakerConfig configures the circuit breaker around a submitter.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold uint32

	// OpenTimeout is how long the circuit stays open before a trial call.
	OpenTimeout time.Duration

	// HalfOpenRequests is the number of trial calls allowed while half-open.
	HalfOpenRequests uint32

	// Interval clears the failure counts while closed. 0 never clears.
	Interval time.Duration
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
		Interval:         time.Minute,
	}
}

// BreakerSubmitter stops calling a failing shipment backend for a while
// instead of letting every submit wait on it.
type BreakerSubmitter struct {
	next   port.ShipmentSubmitter
	cb     *gobreaker.CircuitBreaker
	logger port.Logger
}

var _ port.ShipmentSubmitter = (*BreakerSubmitter)(nil)

// NewBreakerSubmitter wraps next in a circuit breaker named name.
func NewBreakerSubmitter(name string, next port.ShipmentSubmitter, cfg BreakerConfig, logger port.Logger) *BreakerSubmitter {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// A caller that gave up says nothing about the backend.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerSubmitter{
		next:   next,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Submit implements port.ShipmentSubmitter. While the circuit is open it
// returns port.ErrSubmitterUnavailable without calling the backend.
func (b *BreakerSubmitter) Submit(ctx context.Context, submission entity.ShipmentSubmission) (port.SubmissionReceipt, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Submit(ctx, submission)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return port.SubmissionReceipt{}, fmt.Errorf("%w: %v", port.ErrSubmitterUnavailable, err)
	}
	if err != nil {
		return port.SubmissionReceipt{}, err
	}
	return result.(port.SubmissionReceipt), nil
}

// State returns the current breaker state.
func (b *BreakerSubmitter) State() gobreaker.State {
	return b.cb.State()
}
