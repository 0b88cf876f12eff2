package dual

import (
	"iter"

	"github.com/katalvlaran/pressure/planner"
)

// Partitions yields every non-empty proper subset of universe exactly once.
// The complement of each yielded set is universe &^ set.
func Partitions(universe planner.Set) iter.Seq[planner.Set] {
	return func(yield func(planner.Set) bool) {
		if universe == 0 {
			return
		}
		for sub := (universe - 1) & universe; sub != 0; sub = (sub - 1) & universe {
			if !yield(sub) {
				return
			}
		}
	}
}
