//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 14
	panelWidth   = 300
)

// HUD paints the sim's parameters and statistics over the top-left corner of
// the view.
type HUD struct {
	sim   core.Sim
	lines []string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached text from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.lines = Lines(h.sim, paused)
}

// Draw paints the HUD panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	height := float64(2*panelPadding + len(h.lines)*lineHeight)
	ebitenutil.DrawRect(screen, 0, 0, panelWidth, height, color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, fg)
	}
}
