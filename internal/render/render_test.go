package render

import (
	"image/color"
	"testing"

	"conway/internal/core"
)

func TestLayoutTilesViewport(t *testing.T) {
	g, _ := core.NewGrid(200, 200)
	var count int
	var maxX, maxY float64
	EachRect(g, 800, 600, func(r Rect, alive bool) {
		count++
		if r.W != 4 || r.H != 3 {
			t.Fatalf("cell rect %+v, expected 4x3", r)
		}
		if end := r.X + r.W; end > maxX {
			maxX = end
		}
		if end := r.Y + r.H; end > maxY {
			maxY = end
		}
	})
	if count != 200*200 {
		t.Fatalf("visited %d rects, expected %d", count, 200*200)
	}
	if maxX != 800 || maxY != 600 {
		t.Fatalf("rects cover %.0fx%.0f, expected 800x600", maxX, maxY)
	}
}

func TestLayoutRectPosition(t *testing.T) {
	l := NewLayout(core.Size{W: 3, H: 2}, 90, 10)
	if got, want := l.Rect(2, 1), (Rect{X: 60, Y: 5, W: 30, H: 5}); got != want {
		t.Fatalf("Rect(2,1) = %+v, expected %+v", got, want)
	}
	if got := NewLayout(core.Size{}, 100, 100); got != (Layout{}) {
		t.Fatalf("empty size should give a zero layout, got %+v", got)
	}
}

func TestEachRectReportsState(t *testing.T) {
	g, _ := core.NewGrid(2, 2)
	g.Set(1, 0, true)
	var alive []Rect
	EachRect(g, 20, 20, func(r Rect, a bool) {
		if a {
			alive = append(alive, r)
		}
	})
	if len(alive) != 1 || alive[0] != (Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatalf("live rects = %+v", alive)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	on := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	off := color.RGBA{R: 9, G: 8, B: 7, A: 255}
	buf := make([]byte, 3*4)
	fillBinaryRGBA(buf, []bool{true, false, true}, on, off)
	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 1, 2, 3, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, expected %v", buf, want)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	if p.Color(true) != p.Alive || p.Color(false) != p.Dead {
		t.Fatal("palette should key colors by state")
	}
	if p.Alive == p.Dead {
		t.Fatal("live and dead colors must differ")
	}
}
