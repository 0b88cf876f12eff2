package planner

import (
	"fmt"

	"github.com/katalvlaran/pressure/distance"
	"github.com/katalvlaran/pressure/valve"
)

// Planner is a compiled single-actor search over one network and start.
//
// Node indices 0..k-1 are the flow valves (the universe, ascending ID);
// when the start valve has no flow it gets index k. A Planner is read-only
// after New and safe for concurrent Plan calls.
type Planner struct {
	ids      []string       // universe bit → valve ID
	index    map[string]int // valve ID → universe bit
	start    string
	node     int   // node index of start
	m        int   // number of nodes
	rates    []int // node index → flow rate
	w        []int // dense distances: w[u*m+v]
	universe Set
}

// New compiles net and tbl into a Planner rooted at start.
//
// The table must contain an entry from start to every flow valve and
// between every pair of flow valves; otherwise ErrUnreachable is returned.
func New(net *valve.Network, tbl *distance.Table, start string, opts ...Option) (*Planner, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if tbl == nil {
		return nil, ErrTableNil
	}
	if !net.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := net.FlowValves()
	if len(ids) > MaxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(ids), MaxValves)
	}

	p := &Planner{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		start:    start,
		universe: full(len(ids)),
	}
	for i, id := range ids {
		p.index[id] = i
	}

	nodes := ids
	if i, ok := p.index[start]; ok {
		p.node = i
	} else {
		p.node = len(ids)
		nodes = append(append(make([]string, 0, len(ids)+1), ids...), start)
	}
	p.m = len(nodes)

	p.rates = make([]int, p.m)
	for i, id := range nodes {
		p.rates[i] = net.FlowRate(id)
	}
	if err := p.prefetch(tbl, nodes); err != nil {
		return nil, err
	}

	o.Logger.Debug("planner compiled",
		"start", start,
		"flow_valves", len(ids),
		"nodes", p.m,
	)

	return p, nil
}

// prefetch copies the table rows for nodes into the dense buffer.
func (p *Planner) prefetch(tbl *distance.Table, nodes []string) error {
	p.w = make([]int, p.m*p.m)
	for i, u := range nodes {
		for j, v := range nodes {
			d, ok := tbl.Between(u, v)
			if !ok {
				return fmt.Errorf("%w: no path %q -> %q", ErrUnreachable, u, v)
			}
			p.w[i*p.m+j] = d
		}
	}

	return nil
}

// at is a fast accessor into the dense distance buffer.
func (p *Planner) at(u, v int) int { return p.w[u*p.m+v] }

// Start returns the start valve ID.
func (p *Planner) Start() string { return p.start }

// Universe returns the Set of every flow valve.
func (p *Planner) Universe() Set { return p.universe }

// SetOf returns the Set holding the given flow valves.
func (p *Planner) SetOf(ids ...string) (Set, error) {
	var s Set
	for _, id := range ids {
		i, ok := p.index[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNotFlowValve, id)
		}
		s = s.With(i)
	}

	return s, nil
}

// IDs returns the valve IDs of s in ascending order. Bits outside the
// universe are ignored.
func (p *Planner) IDs(s Set) []string {
	s &= p.universe
	out := make([]string, 0, s.Len())
	for _, i := range s.Bits() {
		out = append(out, p.ids[i])
	}

	return out
}

// Plan returns the maximum pressure one actor starting at Start can release
// within budget minutes, opening only valves in eligible.
//
// A negative budget is treated as zero. Bits of eligible outside the
// universe are ignored. An empty eligible set yields 0.
func (p *Planner) Plan(budget int, eligible Set) int {
	if budget < 0 {
		budget = 0
	}

	return p.explore(state{pos: p.node, left: budget}, eligible&p.universe)
}

// explore evaluates the decision tree rooted at s.
func (p *Planner) explore(s state, eligible Set) int {
	if p.standable(s, eligible) {
		return p.explore(p.apply(s, move{kind: moveOpen}), eligible)
	}

	best, found := 0, false
	for rest := eligible &^ s.opened; rest != 0; rest &= rest - 1 {
		t := rest.lowest()
		if p.at(s.pos, t)+1 > s.left {
			continue
		}
		if v := p.explore(p.apply(s, move{kind: moveTravel, target: t}), eligible); !found || v > best {
			best, found = v, true
		}
	}
	if !found {
		return s.total + s.left*s.flow
	}

	return best
}

// standable reports whether the valve under the actor can be opened now.
func (p *Planner) standable(s state, eligible Set) bool {
	return s.pos < len(p.ids) &&
		s.left >= 1 &&
		eligible.Has(s.pos) &&
		!s.opened.Has(s.pos)
}

// apply returns the state reached from s by taking m.
func (p *Planner) apply(s state, m move) state {
	switch m.kind {
	case moveOpen:
		return state{
			pos:    s.pos,
			left:   s.left - 1,
			flow:   s.flow + p.rates[s.pos],
			total:  s.total + s.flow,
			opened: s.opened.With(s.pos),
		}
	case moveTravel:
		d := p.at(s.pos, m.target)
		return state{
			pos:    m.target,
			left:   s.left - d,
			flow:   s.flow,
			total:  s.total + s.flow*d,
			opened: s.opened,
		}
	default:
		panic(fmt.Sprintf("planner: unknown move kind %d", m.kind))
	}
}
