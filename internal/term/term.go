// Package term draws a simulation into a terminal with tcell. Each grid cell
// is painted as a filled rectangle of character cells, two columns wide so
// cells look roughly square.
package term

import (
	"context"
	"math"
	"time"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// CellColumns is the number of terminal columns used per grid cell.
const CellColumns = 2

// Palette holds the terminal colors for live and dead cells.
type Palette struct {
	Alive tcell.Color
	Dead  tcell.Color
}

// DefaultPalette mirrors render.DefaultPalette in terminal colors.
func DefaultPalette() Palette {
	p := render.DefaultPalette()
	return Palette{Alive: tcell.FromImageColor(p.Alive), Dead: tcell.FromImageColor(p.Dead)}
}

// FitSize returns the largest board that fits a cols x rows terminal while
// leaving the bottom row for the status line.
func FitSize(cols, rows int) core.Size {
	return core.Size{W: max(cols/CellColumns, 1), H: max(rows-1, 1)}
}

// FillRect paints every character cell covered by r. Edges are rounded to
// the nearest column and row so adjacent rectangles tile without gaps.
func FillRect(s tcell.Screen, r render.Rect, style tcell.Style) {
	x0, x1 := int(math.Round(r.X)), int(math.Round(r.X+r.W))
	y0, y1 := int(math.Round(r.Y)), int(math.Round(r.Y+r.H))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Loop runs a sim in a terminal until the quit key or context cancellation.
type Loop struct {
	sim     core.Sim
	pacer   core.Pacer
	screen  tcell.Screen
	palette Palette
	frame   time.Duration

	paused   bool
	tickOnce bool
	seed     int64
}

// NewLoop wires a sim, pacer and initialized screen together. frame is the
// time between rendered frames.
func NewLoop(sim core.Sim, pacer core.Pacer, screen tcell.Screen, frame time.Duration, seed int64) *Loop {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return &Loop{sim: sim, pacer: pacer, screen: screen, palette: DefaultPalette(), frame: frame, seed: seed}
}

// Run polls key events and renders frames until ctx is done or the user
// quits. The screen is not finalized; the caller owns it.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan *tcell.EventKey)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			select {
			case events <- key:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(l.frame)
	defer ticker.Stop()
	l.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if l.HandleKey(ev) {
				return nil
			}
		case <-ticker.C:
			l.Frame()
		}
	}
}

// HandleKey applies one key press and reports whether the loop should exit.
func (l *Loop) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		l.paused = !l.paused
	case 'n':
		l.tickOnce = true
	case 'r':
		l.reset(l.seed)
	case 's':
		l.reset(time.Now().UnixNano())
	}
	return false
}

func (l *Loop) reset(seed int64) {
	l.seed = seed
	l.sim.Reset(seed)
	l.tickOnce = false
}

// Frame advances the sim if a step is due, then redraws the screen.
func (l *Loop) Frame() {
	due := l.pacer.ShouldStep()
	if (!l.paused && due) || l.tickOnce {
		l.sim.Step()
		l.tickOnce = false
	}
	l.Draw()
}

// Draw paints the current generation and the status line.
func (l *Loop) Draw() {
	g := l.sim.Grid()
	alive := tcell.StyleDefault.Background(l.palette.Alive)
	dead := tcell.StyleDefault.Background(l.palette.Dead)

	l.screen.Clear()
	render.EachRect(g, float64(g.W*CellColumns), float64(g.H), func(r render.Rect, a bool) {
		if a {
			FillRect(l.screen, r, alive)
			return
		}
		FillRect(l.screen, r, dead)
	})

	status := ui.Status(l.sim, l.paused)
	for i, ch := range status {
		l.screen.SetContent(i, g.H, ch, nil, tcell.StyleDefault)
	}
	l.screen.Show()
}
