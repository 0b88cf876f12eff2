package planner

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/pressure/internal/logging"
)

// Sentinel errors for planner construction and set building.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("planner: network is nil")

	// ErrTableNil is returned if a nil distance table is passed.
	ErrTableNil = errors.New("planner: distance table is nil")

	// ErrStartNotFound is returned when the start valve is absent.
	ErrStartNotFound = errors.New("planner: start valve not found")

	// ErrTooManyValves is returned when the flow valves exceed MaxValves.
	ErrTooManyValves = errors.New("planner: too many flow valves")

	// ErrUnreachable is returned when the distance table has no entry for a
	// pair of useful valves, which means the network is disconnected.
	ErrUnreachable = errors.New("planner: valve unreachable")

	// ErrNotFlowValve is returned by SetOf for an id outside the universe.
	ErrNotFlowValve = errors.New("planner: not a flow valve")
)

// Option configures New.
type Option func(*Options)

// Options holds planner settings.
type Options struct {
	// Logger receives construction diagnostics at debug level.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logging.NewNop()}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// state is the search state at one node of the decision tree. It is passed
// by value; every branch owns its copy.
type state struct {
	pos    int // node index of the current valve
	left   int // minutes remaining
	flow   int // sum of rates of opened valves
	total  int // pressure released so far
	opened Set // opened flow valves
}

// moveKind tags the two ways a step can advance the state.
type moveKind uint8

const (
	// moveOpen opens the valve at the current position.
	moveOpen moveKind = iota + 1
	// moveTravel walks to target so that it can be opened on arrival.
	moveTravel
)

// move is one decision taken at a search node.
type move struct {
	kind   moveKind
	target int // node index; used by moveTravel only
}
