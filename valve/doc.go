// Package valve defines the Valve and Network types: a static, validated
// mapping from valve identifier to flow rate and tunnel adjacency.
//
// What
//
//   - Valve: identifier, flow rate (pressure per minute while open, >= 0),
//     and an ordered list of neighbors, each one minute away.
//   - Network: an immutable set of valves built once by New. Every
//     identifier referenced in a neighbor list must itself be a valve.
//
// Why
//
//	The planners read the network from many goroutines at once. A Network
//	is never mutated after New returns, so sharing it by pointer needs no
//	locking. Accessors hand out copies of neighbor slices.
//
// Determinism
//
//	IDs and FlowValves return identifiers sorted lexicographically, so any
//	bit or index assignment derived from them is reproducible.
//
// Errors
//
//   - ErrEmptyID          if a valve has an empty identifier.
//   - ErrDuplicateID      if two valves share an identifier.
//   - ErrNegativeFlow     if a flow rate is below zero.
//   - ErrUnknownNeighbor  if a tunnel leads to an undeclared valve.
package valve
