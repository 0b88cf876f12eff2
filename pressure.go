package pressure

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pressure/distance"
	"github.com/katalvlaran/pressure/dual"
	"github.com/katalvlaran/pressure/planner"
	"github.com/katalvlaran/pressure/valve"
)

const (
	// DefaultStart is the valve both actors start from.
	DefaultStart = "AA"

	// SingleAgentMinutes is the budget of the lone actor.
	SingleAgentMinutes = 30

	// DualAgentMinutes is the budget of each actor when two work at once.
	DualAgentMinutes = 26
)

// compile builds the distance table rows the planner needs and the planner.
func compile(net *valve.Network, start string, opts ...planner.Option) (*planner.Planner, error) {
	if net == nil {
		return nil, planner.ErrNetworkNil
	}
	if !net.Has(start) {
		return nil, fmt.Errorf("%w: %q", planner.ErrStartNotFound, start)
	}
	sources := append(net.FlowValves(), start)
	tbl, err := distance.Build(net, distance.WithSources(sources...))
	if err != nil {
		return nil, err
	}

	return planner.New(net, tbl, start, opts...)
}

// BestSingleAgentRelease returns the most pressure one actor starting at
// start can release in budget minutes, opening any flow valve.
func BestSingleAgentRelease(net *valve.Network, start string, budget int, opts ...planner.Option) (int, error) {
	p, err := compile(net, start, opts...)
	if err != nil {
		return 0, err
	}

	return p.Plan(budget, p.Universe()), nil
}

// BestDualAgentRelease returns the most pressure two independent actors,
// both starting at start with budget minutes each, can release by splitting
// the flow valves between them.
func BestDualAgentRelease(ctx context.Context, net *valve.Network, start string, budget int, opts ...dual.Option) (int, error) {
	p, err := compile(net, start)
	if err != nil {
		return 0, err
	}
	d, err := dual.New(p, opts...)
	if err != nil {
		return 0, err
	}

	return d.Plan(ctx, budget, p.Universe())
}
