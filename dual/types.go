package dual

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/pressure/internal/logging"
)

// Sentinel errors for orchestrator construction.
var (
	// ErrPlannerNil is returned if a nil planner is passed.
	ErrPlannerNil = errors.New("dual: planner is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dual: invalid option supplied")
)

// Option configures New.
type Option func(*Options)

// Options holds orchestrator settings.
type Options struct {
	// Workers is the number of goroutines evaluating partitions.
	Workers int

	// Logger receives one debug record per Plan call.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  logging.NewNop(),
	}
}

// WithWorkers sets the size of the evaluation pool.
//
//	n > 0:  use n goroutines (1 evaluates in the calling goroutine)
//	n == 0: use GOMAXPROCS
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
