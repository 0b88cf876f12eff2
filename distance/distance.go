package distance

import (
	"fmt"

	"github.com/katalvlaran/pressure/valve"
)

// queueItem pairs a valve ID with its depth (minutes from the source).
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates the mutable state of one single-source BFS.
type walker struct {
	net     *valve.Network
	opts    *Options
	source  string
	queue   []queueItem
	visited map[string]int
}

// Build computes the distance table for net.
// Returns ErrNetworkNil, ErrOptionViolation or ErrSourceNotFound on bad input.
func Build(net *valve.Network, opts ...Option) (*Table, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sources := o.Sources
	if sources == nil {
		sources = net.IDs()
	}
	for _, s := range sources {
		if !net.Has(s) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, s)
		}
	}

	t := &Table{rows: make(map[string]map[string]int, len(sources))}
	for _, s := range sources {
		if _, done := t.rows[s]; done {
			continue
		}
		w := &walker{
			net:     net,
			opts:    &o,
			source:  s,
			queue:   make([]queueItem, 0, net.Len()),
			visited: make(map[string]int, net.Len()),
		}
		t.rows[s] = w.run()
	}

	return t, nil
}

// run performs the BFS from w.source and returns the depth of every
// reached valve.
func (w *walker) run() map[string]int {
	w.enqueue(w.source, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.net.Walk(item.id, func(nbr string) bool {
			if _, seen := w.visited[nbr]; !seen {
				w.enqueue(nbr, item.depth+1)
			}
			return true
		})
	}

	return w.visited
}

// enqueue records id at depth d and schedules it for expansion.
func (w *walker) enqueue(id string, d int) {
	w.visited[id] = d
	w.opts.OnVisit(w.source, id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}
