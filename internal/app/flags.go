package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"conway/internal/core"
)

// KVList collects repeatable key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return core.ConfigErrorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Density float64
	Seed    int64

	StepEvery    int
	StepInterval time.Duration

	WindowWidth  int
	WindowHeight int
	TPS          int

	Set KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "life",
		Width:        200,
		Height:       200,
		Density:      0.3,
		StepEvery:    10,
		WindowWidth:  800,
		WindowHeight: 600,
		TPS:          60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid columns")
	fs.IntVar(&c.Height, "height", c.Height, "grid rows")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.IntVar(&c.StepEvery, "step-every", c.StepEvery, "advance the simulation every n rendered frames")
	fs.DurationVar(&c.StepInterval, "step-interval", c.StepInterval, "advance the simulation on a wall-clock interval instead of frames")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Var(&c.Set, "set", "extra sim option in key=value form (repeatable)")
}

// Validate rejects settings the front-ends cannot run with. Sim-specific
// options are checked by the sim factory.
func (c *Config) Validate() error {
	if c.StepEvery <= 0 {
		return core.ConfigErrorf("step-every must be positive, got %d", c.StepEvery)
	}
	if c.StepInterval < 0 {
		return core.ConfigErrorf("step-interval must not be negative, got %s", c.StepInterval)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return core.ConfigErrorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return core.ConfigErrorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// SimOptions renders the grid settings and -set overrides as the key/value
// map understood by sim factories.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
	for _, kv := range c.Set {
		k, v, _ := strings.Cut(kv, "=")
		opts[k] = v
	}
	return opts
}

// ResolveSeed returns the configured seed, or a clock-derived one when the
// seed was left at zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Pacer builds the step pacer selected by the flags.
func (c *Config) Pacer() core.Pacer {
	return core.NewPacer(c.StepEvery, c.StepInterval)
}

// Build validates the config and constructs the selected simulation seeded
// with seed.
func (c *Config) Build(seed int64) (core.Sim, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sim, err := core.New(c.Sim, c.SimOptions())
	if err != nil {
		return nil, err
	}
	sim.Reset(seed)
	return sim, nil
}
