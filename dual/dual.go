package dual

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pressure/planner"
)

// Orchestrator evaluates two-actor splits on top of a Planner.
// It holds no mutable state and is safe for concurrent use.
type Orchestrator struct {
	p    *planner.Planner
	opts Options
}

// New returns an Orchestrator over p.
func New(p *planner.Planner, opts ...Option) (*Orchestrator, error) {
	if p == nil {
		return nil, ErrPlannerNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Orchestrator{p: p, opts: o}, nil
}

// Plan returns the best sum of two independent single-actor plans over a
// split of eligible, each with budget minutes.
//
// Bits outside the planner's universe are ignored. The only error is
// ctx.Err() when ctx is cancelled before every split has been evaluated.
func (d *Orchestrator) Plan(ctx context.Context, budget int, eligible planner.Set) (int, error) {
	universe := eligible & d.p.Universe()
	if universe.Len() < 2 {
		best := d.p.Plan(budget, universe)
		d.opts.Logger.Debug("dual plan without split",
			"eligible", universe.Len(), "budget", budget, "release", best)
		return best, nil
	}

	var (
		best int
		err  error
	)
	if d.opts.Workers == 1 {
		best, err = d.sequential(ctx, budget, universe)
	} else {
		best, err = d.parallel(ctx, budget, universe)
	}
	if err != nil {
		return 0, err
	}

	d.opts.Logger.Debug("dual plan",
		"eligible", universe.Len(),
		"partitions", (1<<universe.Len())-2,
		"workers", d.opts.Workers,
		"budget", budget,
		"release", best,
	)

	return best, nil
}

// split evaluates one candidate: a to the first actor, the rest to the second.
func (d *Orchestrator) split(budget int, a, universe planner.Set) int {
	return d.p.Plan(budget, a) + d.p.Plan(budget, a.Complement(universe))
}

// sequential evaluates every split in the calling goroutine.
func (d *Orchestrator) sequential(ctx context.Context, budget int, universe planner.Set) (int, error) {
	best := 0
	for a := range Partitions(universe) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		best = max(best, d.split(budget, a, universe))
	}

	return best, nil
}

// parallel feeds splits to a pool of workers; each keeps a local maximum
// that is reduced once the pool drains.
func (d *Orchestrator) parallel(ctx context.Context, budget int, universe planner.Set) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	work := make(chan planner.Set, d.opts.Workers)

	g.Go(func() error {
		defer close(work)
		for a := range Partitions(universe) {
			select {
			case work <- a:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	bests := make([]int, d.opts.Workers)
	for w := range bests {
		g.Go(func() error {
			for a := range work {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				bests[w] = max(bests[w], d.split(budget, a, universe))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	best := 0
	for _, b := range bests {
		best = max(best, b)
	}

	return best, nil
}
