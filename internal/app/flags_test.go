package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"conway/internal/core"
	_ "conway/internal/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Width != 200 || cfg.Height != 200 || cfg.Density != 0.3 || cfg.StepEvery != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if _, ok := cfg.Pacer().(*core.FrameStep); !ok {
		t.Fatal("default pacing should count frames")
	}
}

func TestBuildSeedsBoard(t *testing.T) {
	cfg := parse(t, "-width", "40", "-height", "30", "-density", "1")
	sim, err := cfg.Build(7)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.Size() != (core.Size{W: 40, H: 30}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if pop := sim.Grid().Population(); pop != 40*30 {
		t.Fatalf("density 1 seeded %d cells", pop)
	}
}

func TestBuildRejects(t *testing.T) {
	cases := [][]string{
		{"-width", "0"},
		{"-height", "-2"},
		{"-density", "1.2"},
		{"-step-every", "0"},
		{"-step-interval", "-1s"},
		{"-tps", "0"},
		{"-window-width", "0"},
		{"-sim", "highlife"},
		{"-set", "rule=B36/S23"},
	}
	for _, args := range cases {
		cfg := parse(t, args...)
		if _, err := cfg.Build(1); !errors.Is(err, core.ErrInvalidConfig) {
			t.Fatalf("%v: error = %v, expected ErrInvalidConfig", args, err)
		}
	}
}

func TestSetOverridesOptions(t *testing.T) {
	cfg := parse(t, "-set", "density=0", "-set", "w=12")
	opts := cfg.SimOptions()
	if opts["density"] != "0" || opts["w"] != "12" || opts["h"] != "200" {
		t.Fatalf("SimOptions = %v", opts)
	}
	sim, err := cfg.Build(3)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size().W != 12 || sim.Grid().Population() != 0 {
		t.Fatalf("overrides not applied: size %+v pop %d", sim.Size(), sim.Grid().Population())
	}

	var kv KVList
	if err := kv.Set("novalue"); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("malformed -set error = %v", err)
	}
}

func TestIntervalPacer(t *testing.T) {
	cfg := parse(t, "-step-interval", "250ms")
	if cfg.StepInterval != 250*time.Millisecond {
		t.Fatalf("interval = %s", cfg.StepInterval)
	}
	if _, ok := cfg.Pacer().(*core.FixedStep); !ok {
		t.Fatal("a positive interval should pace by wall clock")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := parse(t, "-seed", "99")
	if cfg.ResolveSeed() != 99 {
		t.Fatal("explicit seed should be kept")
	}
	cfg = parse(t)
	if cfg.ResolveSeed() == 0 {
		t.Fatal("zero seed should be replaced from the clock")
	}
}
