package distance_test

import (
	"fmt"

	"github.com/katalvlaran/pressure/distance"
	"github.com/katalvlaran/pressure/valve"
)

// ExampleBuild computes travel times on a small ring of four valves.
func ExampleBuild() {
	net, err := valve.New([]valve.Valve{
		{ID: "A", Neighbors: []string{"B", "D"}},
		{ID: "B", Neighbors: []string{"A", "C"}},
		{ID: "C", Neighbors: []string{"B", "D"}},
		{ID: "D", Neighbors: []string{"C", "A"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tbl, err := distance.Build(net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []string{"A", "B", "C", "D"} {
		d, _ := tbl.Between("A", v)
		fmt.Printf("A->%s=%d\n", v, d)
	}
	// Output:
	// A->A=0
	// A->B=1
	// A->C=2
	// A->D=1
}
