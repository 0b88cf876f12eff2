package distance

import (
	"errors"
	"fmt"
)

// Sentinel errors for table construction.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("distance: network is nil")

	// ErrSourceNotFound is returned when a requested source is absent.
	ErrSourceNotFound = errors.New("distance: source valve not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Build.
type Options struct {
	// Sources restricts the BFS roots. Nil means every valve.
	Sources []string

	// OnVisit is called for every (source, valve) pair the first time the
	// valve is reached from source, in BFS order.
	OnVisit func(source, id string, minutes int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options that search from every valve with a
// no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, string, int) {},
	}
}

// WithSources restricts the table to rows for the given sources.
// An empty list is an option violation.
func WithSources(ids ...string) Option {
	return func(o *Options) {
		if len(ids) == 0 {
			o.err = fmt.Errorf("%w: WithSources needs at least one id", ErrOptionViolation)
			return
		}
		o.Sources = append([]string(nil), ids...)
	}
}

// WithOnVisit registers a callback invoked on every discovery.
func WithOnVisit(fn func(source, id string, minutes int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Table maps ordered valve pairs to the minimum travel time in minutes.
// It is read-only after Build and safe for concurrent use.
type Table struct {
	rows map[string]map[string]int // source → destination → minutes
}

// Between returns the distance from u to v and whether the pair is known.
func (t *Table) Between(u, v string) (int, bool) {
	d, ok := t.rows[u][v]
	return d, ok
}

// MustBetween returns the distance from u to v.
// It panics if the pair is absent: callers must only ask about pairs they
// know to be connected.
func (t *Table) MustBetween(u, v string) int {
	d, ok := t.rows[u][v]
	if !ok {
		panic(fmt.Sprintf("distance: no entry for %q -> %q", u, v))
	}

	return d
}

// Reachable returns how many valves (including u itself) have an entry in
// the row of u.
func (t *Table) Reachable(u string) int { return len(t.rows[u]) }

// Sources returns the number of rows in the table.
func (t *Table) Sources() int { return len(t.rows) }
