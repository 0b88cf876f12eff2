// Package dual splits the flow valves between two independent actors and
// returns the best combined release.
//
// Every non-empty proper subset A of the eligible valves is assigned to the
// first actor, its complement to the second. Both run planner.Plan from the
// same start with the same budget; the orchestrator keeps the largest sum.
// Partitions are produced lazily by an iterator, so memory does not grow
// with the number of candidates.
//
// Evaluations share nothing but the read-only Planner, so they are fanned
// out over a pool of goroutines (WithWorkers) and reduced with max.
//
// When fewer than two valves are eligible no real split exists; the result
// is then the single-actor plan over all of them.
//
// Cost is 2ⁿ−2 candidates for n eligible valves, each costing two plans.
package dual
