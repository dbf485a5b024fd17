package life

import (
	"conway/internal/core"
)

// Life implements Conway's Game of Life on an edge-bounded grid. Cells past
// the border count as dead.
type Life struct {
	cfg Config
	cur *core.Grid
	nxt *core.Grid

	generation int
	seed       int64
	scratch    []int
}

// New returns a Life simulation with the provided dimensions and the default
// seeding density.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life board configured from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, cur: cur, nxt: nxt, scratch: make([]int, 0, 8)}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. The returned grid is replaced on the
// next Step, so callers should not hold on to it across steps.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation counts the steps taken since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells of the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Config returns the board configuration.
func (l *Life) Config() Config { return l.cfg }

// Reset randomizes the board using the provided seed: every cell is alive
// with probability Config.Density, independently of the others.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.generation = 0
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, l.cur.Cells(), l.cfg.Density)
}

// NextState applies the B3/S23 rule to one cell.
func NextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Step advances the simulation by one generation. Neighbor counts are read
// from the current buffer only and results written to the spare buffer,
// which then becomes current.
func (l *Life) Step() {
	src := l.cur.Cells()
	dst := l.nxt.Cells()
	for i, alive := range src {
		l.scratch = l.cur.Neighbors(i, l.scratch)
		neighbors := 0
		for _, n := range l.scratch {
			if src[n] {
				neighbors++
			}
		}
		dst[i] = NextState(alive, neighbors)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
