// File: types.go
// Role: Valve and Network declarations, sentinel errors.
package valve

import (
	"errors"
	"slices"
)

// Sentinel errors for network construction.
var (
	// ErrEmptyID indicates a valve with an empty identifier.
	ErrEmptyID = errors.New("valve: identifier is empty")

	// ErrDuplicateID indicates that two valves share the same identifier.
	ErrDuplicateID = errors.New("valve: duplicate identifier")

	// ErrNegativeFlow indicates a flow rate below zero.
	ErrNegativeFlow = errors.New("valve: negative flow rate")

	// ErrUnknownNeighbor indicates a tunnel leading to an undeclared valve.
	ErrUnknownNeighbor = errors.New("valve: unknown neighbor")
)

// Valve is a node of the network.
type Valve struct {
	// ID uniquely identifies the valve within its Network.
	ID string

	// FlowRate is the pressure released per minute once the valve is open.
	// Zero marks a junction that is never worth opening.
	FlowRate int

	// Neighbors lists the valves reachable through one tunnel (one minute),
	// in input order.
	Neighbors []string
}

// clone returns a copy of v that shares no memory with it.
func (v Valve) clone() Valve {
	v.Neighbors = slices.Clone(v.Neighbors)
	return v
}

// Network is an immutable, validated collection of valves.
//
// The zero value is an empty network; use New to build a populated one.
type Network struct {
	valves map[string]Valve // valve ID → Valve (private copies)
	ids    []string         // sorted valve IDs
	flow   []string         // sorted IDs with FlowRate > 0
}
