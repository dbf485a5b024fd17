package life

import (
	"context"
	"errors"
	"testing"

	"conway/internal/core"
)

func TestRunTrialEmptyBoardSettles(t *testing.T) {
	cfg := Config{Width: 16, Height: 16, Density: 0}
	res, err := RunTrial(cfg, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.SettledAt != 1 || res.Period != 1 || res.FinalPopulation != 0 || res.Generations != 1 {
		t.Fatalf("empty board trial = %+v", res)
	}
}

func TestRunTrialFullBoardDiesOut(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Density: 1}
	res, err := RunTrial(cfg, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	want := TrialResult{
		Seed:              1,
		InitialPopulation: 9,
		FinalPopulation:   0,
		PeakPopulation:    9,
		Generations:       3,
		SettledAt:         3,
		Period:            1,
	}
	if res != want {
		t.Fatalf("full 3x3 trial = %+v, expected %+v", res, want)
	}
}

func TestRunTrialStepLimit(t *testing.T) {
	res, err := RunTrial(DefaultConfig(), 42, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Generations != 3 || res.Period != 0 || res.SettledAt != -1 {
		t.Fatalf("random 200x200 board should not settle in 3 steps: %+v", res)
	}
}

func TestSweepMatchesSequentialTrials(t *testing.T) {
	cfg := Config{Width: 32, Height: 24, Density: 0.35}
	seeds := []int64{3, 1, 4, 1, 5, 9, 2, 6}
	results, err := Sweep(context.Background(), cfg, seeds, 60, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("got %d results for %d seeds", len(results), len(seeds))
	}
	for i, seed := range seeds {
		want, _ := RunTrial(cfg, seed, 60)
		if results[i] != want {
			t.Fatalf("result %d = %+v, expected %+v", i, results[i], want)
		}
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	if _, err := Sweep(context.Background(), Config{Width: 0, Height: 4}, []int64{1}, 10, 1); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("zero width error = %v", err)
	}
	if _, err := Sweep(context.Background(), DefaultConfig(), []int64{1}, -1, 1); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("negative steps error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Sweep(ctx, DefaultConfig(), []int64{1, 2}, 10, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled sweep error = %v", err)
	}
}
