package allocate

import (
	"context"
	"errors"
	"fmt"

	"github.com/firefly-engineering/lan-address-gen/internal/address"
	"github.com/firefly-engineering/lan-address-gen/internal/logging"
	"github.com/firefly-engineering/lan-address-gen/internal/probe"
)

// ErrExhausted is returned when the attempt limit is reached and every probed address was alive.
var ErrExhausted = errors.New("address space exhausted")

// Attempt describes one probe of the walk.
type Attempt struct {
	Number  int
	Address address.Address
	Alive   bool
}

// Result is the outcome of a successful walk.
type Result struct {
	// Address is the first candidate that did not answer.
	Address address.Address

	// Attempts counts the probes issued, including the final one.
	Attempts int
}

type options struct {
	maxAttempts int
	observer    func(Attempt)
}

// Option configures FindAvailable.
type Option func(*options)

// WithMaxAttempts stops the walk with ErrExhausted after n live addresses.
// Zero or a negative n leaves the walk unbounded.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithObserver registers fn to be called after every probe.
func WithObserver(fn func(Attempt)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// FindAvailable probes initial and its successors until p reports one as not alive.
func FindAvailable(ctx context.Context, initial address.Address, p probe.Prober, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	current := initial
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("address search stopped at %s: %w", current, err)
		}

		alive := p.Alive(ctx, current.String())

		// A probe cut short by cancellation says nothing about the host.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("address search stopped at %s: %w", current, err)
		}

		logging.Debug("probed address", "addr", current.String(), "attempt", attempt, "alive", alive)
		if o.observer != nil {
			o.observer(Attempt{Number: attempt, Address: current, Alive: alive})
		}

		if !alive {
			return &Result{Address: current, Attempts: attempt}, nil
		}

		if o.maxAttempts > 0 && attempt >= o.maxAttempts {
			return nil, fmt.Errorf("%w: %d addresses in use starting at %s", ErrExhausted, attempt, initial)
		}

		current = address.Increment(current)
	}
}
