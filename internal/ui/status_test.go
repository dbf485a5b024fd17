package ui

import (
	"slices"
	"strings"
	"testing"

	"conway/internal/core"
	"conway/internal/sims/life"
)

func TestLinesListsParameters(t *testing.T) {
	sim, err := life.New(10, 8)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(5)
	sim.Step()

	lines := Lines(sim, true)
	if lines[0] != "life (paused)" {
		t.Fatalf("title = %q", lines[0])
	}
	for _, want := range []string{"Board", "Run"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("lines %q missing group %q", lines, want)
		}
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Generation") || !strings.Contains(joined, "Width        10") {
		t.Fatalf("lines missing parameters:\n%s", joined)
	}
}

type bareSim struct{ gen int }

func (b *bareSim) Name() string { return "bare" }
func (b *bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (b *bareSim) Reset(int64) {}
func (b *bareSim) Step() { b.gen++ }
func (b *bareSim) Grid() *core.Grid { return nil }
func (b *bareSim) Generation() int { return b.gen }

func TestLinesWithoutProvider(t *testing.T) {
	lines := Lines(&bareSim{gen: 4}, false)
	if lines[0] != "bare" || lines[1] != "generation 4" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestStatus(t *testing.T) {
	sim, _ := life.New(4, 4)
	sim.Grid().Set(1, 1, true)
	if got := Status(sim, false); got != "life gen 0 pop 1" {
		t.Fatalf("Status = %q", got)
	}
	sim.Step()
	if got := Status(sim, true); got != "life gen 1 pop 0 [paused]" {
		t.Fatalf("Status = %q", got)
	}
	if got := Status(&bareSim{}, false); got != "bare gen 0" {
		t.Fatalf("Status = %q", got)
	}
}
