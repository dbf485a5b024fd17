package ui

import (
	"fmt"
	"strings"

	"conway/internal/core"
)

// Lines formats the HUD text for sim: a title, then one line per parameter
// grouped as the sim reports them, then the key help.
func Lines(sim core.Sim, paused bool) []string {
	title := sim.Name()
	if paused {
		title += " (paused)"
	}
	lines := []string{title}
	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, "", group.Name)
			if group.Summary != "" {
				lines = append(lines, "  "+group.Summary)
			}
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
			}
		}
	} else {
		lines = append(lines, fmt.Sprintf("generation %d", sim.Generation()))
	}
	return append(lines, "", "space pause  n step  r reset  s reseed  q quit")
}

// Status is a one-line summary suitable for a terminal status bar.
func Status(sim core.Sim, paused bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s gen %d", sim.Name(), sim.Generation())
	if pop, ok := sim.(interface{ Population() int }); ok {
		fmt.Fprintf(&b, " pop %d", pop.Population())
	}
	if paused {
		b.WriteString(" [paused]")
	}
	return b.String()
}
