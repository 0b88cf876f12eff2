// Package testutil holds network fixtures shared by tests across packages.
package testutil

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pressure/valve"
)

// CanonicalInput is the ten-valve sample network in puzzle-input form.
const CanonicalInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// CanonicalValves returns the valves of CanonicalInput.
func CanonicalValves() []valve.Valve {
	return []valve.Valve{
		{ID: "AA", FlowRate: 0, Neighbors: []string{"DD", "II", "BB"}},
		{ID: "BB", FlowRate: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "CC", FlowRate: 2, Neighbors: []string{"DD", "BB"}},
		{ID: "DD", FlowRate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{ID: "EE", FlowRate: 3, Neighbors: []string{"FF", "DD"}},
		{ID: "FF", FlowRate: 0, Neighbors: []string{"EE", "GG"}},
		{ID: "GG", FlowRate: 0, Neighbors: []string{"FF", "HH"}},
		{ID: "HH", FlowRate: 22, Neighbors: []string{"GG"}},
		{ID: "II", FlowRate: 0, Neighbors: []string{"AA", "JJ"}},
		{ID: "JJ", FlowRate: 21, Neighbors: []string{"II"}},
	}
}

// Canonical builds the sample network, failing t on error.
func Canonical(t testing.TB) *valve.Network {
	t.Helper()
	return MustNetwork(t, CanonicalValves())
}

// MustNetwork builds a network from valves, failing t on error.
func MustNetwork(t testing.TB, valves []valve.Valve) *valve.Network {
	t.Helper()
	n, err := valve.New(valves)
	if err != nil {
		t.Fatalf("valve.New: %v", err)
	}

	return n
}

// Chain builds an undirected path V0–V1–…–V(n-1) where every valve Vi
// has flow rate rates[i]. len(rates) must be at least 1.
func Chain(t testing.TB, rates ...int) *valve.Network {
	t.Helper()
	valves := make([]valve.Valve, len(rates))
	for i, r := range rates {
		var nbrs []string
		if i > 0 {
			nbrs = append(nbrs, fmt.Sprintf("V%d", i-1))
		}
		if i+1 < len(rates) {
			nbrs = append(nbrs, fmt.Sprintf("V%d", i+1))
		}
		valves[i] = valve.Valve{ID: fmt.Sprintf("V%d", i), FlowRate: r, Neighbors: nbrs}
	}

	return MustNetwork(t, valves)
}
