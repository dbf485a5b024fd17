package life

import (
	"context"
	"runtime"

	"conway/internal/core"

	"golang.org/x/sync/errgroup"
)

// TrialResult summarizes one seeded run.
type TrialResult struct {
	Seed              int64
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	Generations       int
	// SettledAt is the generation at which the board first repeated a state
	// one or two generations old, or -1 if it never did within the run.
	SettledAt int
	// Period is 1 for a still board, 2 for a period-2 board, 0 if unsettled.
	Period int
}

// RunTrial seeds a board from cfg and steps it until it settles into a still
// or period-2 state, or until steps generations have run.
func RunTrial(cfg Config, seed int64, steps int) (TrialResult, error) {
	l, err := NewWithConfig(cfg)
	if err != nil {
		return TrialResult{}, err
	}
	l.Reset(seed)

	res := TrialResult{Seed: seed, SettledAt: -1}
	res.InitialPopulation = l.Population()
	res.PeakPopulation = res.InitialPopulation

	prev1, _ := core.NewGrid(cfg.Width, cfg.Height)
	prev2, _ := core.NewGrid(cfg.Width, cfg.Height)
	prev1.CopyFrom(l.Grid())
	for i := 1; i <= steps; i++ {
		l.Step()
		pop := l.Population()
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		cur := l.Grid()
		switch {
		case cur.Equal(prev1):
			res.SettledAt, res.Period = i, 1
		case i >= 2 && cur.Equal(prev2):
			res.SettledAt, res.Period = i, 2
		}
		if res.Period != 0 {
			break
		}
		prev2.CopyFrom(prev1)
		prev1.CopyFrom(cur)
	}
	res.FinalPopulation = l.Population()
	res.Generations = l.Generation()
	return res, nil
}

// Sweep runs one trial per seed on up to workers goroutines. Each board is
// owned by a single goroutine. Results keep the order of seeds.
func Sweep(ctx context.Context, cfg Config, seeds []int64, steps, workers int) ([]TrialResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, core.ConfigErrorf("steps must not be negative, got %d", steps)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]TrialResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunTrial(cfg, seed, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
