// Package planner finds the largest pressure release one actor can achieve
// in a valve.Network within a time budget.
//
// What
//
//   - New compiles a network and its distance.Table into a dense search
//     engine over the "useful" valves (positive flow) plus the start valve.
//   - Plan runs an exhaustive depth-first search restricted to an eligible
//     Set of flow valves and returns the best total release.
//
// Search (one recursive step, two move variants)
//
//  1. Open: the actor stands on an eligible, unopened valve with positive
//     flow and at least one minute left. Opening costs one minute, during
//     which the current flow is released; afterwards the valve's rate joins
//     the current flow. This move is always taken when it applies.
//  2. Travel: otherwise every eligible, unopened valve t that satisfies
//     d(pos,t)+1 <= minutes left is a candidate. Travelling releases
//     flow·d(pos,t) and lands on t, where the next step opens it. The
//     result is the maximum over all candidates.
//  3. Bank: with no candidate left, the current flow is released for every
//     remaining minute.
//
// The opened set is a Set bitmask carried by value, so sibling branches
// never share it. No memoization is performed.
//
// Complexity (k = eligible valves)
//
//   - Time:   O(k!) worst case; the d+1 <= left filter keeps it far lower
//     in practice.
//   - Memory: O(k) recursion depth, O(m²) dense distances for m = k+1 nodes.
//
// Errors
//
//   - ErrNetworkNil, ErrTableNil   on nil inputs.
//   - ErrStartNotFound             if the start is not a valve of the network.
//   - ErrTooManyValves             if more than MaxValves valves have flow.
//   - ErrUnreachable               if the table lacks a start/flow-valve pair.
//   - ErrNotFlowValve              from SetOf for ids outside the universe.
package planner
