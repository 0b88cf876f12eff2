// File: network.go
// Role: Network construction and read-only queries.
//
// Determinism:
//   - IDs() and FlowValves() return identifiers sorted ascending.
//
// Concurrency:
//   - A Network is read-only after New; all methods are safe for
//     concurrent use without locking.
package valve

import (
	"fmt"
	"slices"
)

// New validates valves and builds a Network from them.
//
// Validation order per valve: empty ID, negative flow, duplicate ID. Neighbor
// references are checked after all valves are registered, so tunnels may
// point forward in the input.
//
// Complexity: O(V log V + E).
func New(valves []Valve) (*Network, error) {
	n := &Network{
		valves: make(map[string]Valve, len(valves)),
		ids:    make([]string, 0, len(valves)),
	}
	for _, v := range valves {
		if v.ID == "" {
			return nil, ErrEmptyID
		}
		if v.FlowRate < 0 {
			return nil, fmt.Errorf("%w: %q has rate %d", ErrNegativeFlow, v.ID, v.FlowRate)
		}
		if _, dup := n.valves[v.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, v.ID)
		}
		n.valves[v.ID] = v.clone()
		n.ids = append(n.ids, v.ID)
	}

	for _, v := range valves {
		for _, nbr := range v.Neighbors {
			if _, ok := n.valves[nbr]; !ok {
				return nil, fmt.Errorf("%w: %q lists %q", ErrUnknownNeighbor, v.ID, nbr)
			}
		}
	}

	slices.Sort(n.ids)
	for _, id := range n.ids {
		if n.valves[id].FlowRate > 0 {
			n.flow = append(n.flow, id)
		}
	}

	return n, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.ids) }

// Has reports whether id names a valve of the network.
func (n *Network) Has(id string) bool {
	_, ok := n.valves[id]
	return ok
}

// Valve returns a copy of the valve with the given id.
func (n *Network) Valve(id string) (Valve, bool) {
	v, ok := n.valves[id]
	if !ok {
		return Valve{}, false
	}

	return v.clone(), true
}

// FlowRate returns the flow rate of id, or 0 for an unknown id.
func (n *Network) FlowRate(id string) int { return n.valves[id].FlowRate }

// Neighbors returns a copy of the neighbor list of id in input order.
// Returns nil for an unknown id.
func (n *Network) Neighbors(id string) []string {
	return slices.Clone(n.valves[id].Neighbors)
}

// IDs returns every valve identifier, sorted ascending.
func (n *Network) IDs() []string { return slices.Clone(n.ids) }

// FlowValves returns the identifiers of valves with positive flow, sorted ascending.
func (n *Network) FlowValves() []string { return slices.Clone(n.flow) }

// Walk calls fn for every neighbor of id in input order without allocating.
// Iteration stops early when fn returns false.
func (n *Network) Walk(id string, fn func(neighbor string) bool) {
	for _, nbr := range n.valves[id].Neighbors {
		if !fn(nbr) {
			return
		}
	}
}
