package pressure_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/pressure"
	"github.com/katalvlaran/pressure/parse"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

// Example solves both planning modes on the sample scan.
func Example() {
	net, err := parse.Network(strings.NewReader(sample))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	single, _ := pressure.BestSingleAgentRelease(net, pressure.DefaultStart, pressure.SingleAgentMinutes)
	both, _ := pressure.BestDualAgentRelease(context.Background(), net, pressure.DefaultStart, pressure.DualAgentMinutes)
	fmt.Println(single)
	fmt.Println(both)
	// Output:
	// 1651
	// 1707
}
