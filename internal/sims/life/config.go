package life

import (
	"math"
	"sort"
	"strconv"

	"conway/internal/core"
)

// Config holds the Game of Life board parameters.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Density: 0.3}
}

// Validate rejects dimensions and densities the simulation cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return core.ConfigErrorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return core.ConfigErrorf("height must be positive, got %d", c.Height)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return core.ConfigErrorf("density must be within [0,1], got %v", c.Density)
	}
	return nil
}

// FromMap populates a Config from flag-style key/value pairs. Recognized keys
// are w, h and density; anything else is rejected.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := cfg[k]
		switch k {
		case "w":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, core.ConfigErrorf("w: %q is not an integer", v)
			}
			c.Width = parsed
		case "h":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, core.ConfigErrorf("h: %q is not an integer", v)
			}
			c.Height = parsed
		case "density":
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c, core.ConfigErrorf("density: %q is not a number", v)
			}
			c.Density = parsed
		default:
			return c, core.ConfigErrorf("unknown life option %q", k)
		}
	}
	return c, c.Validate()
}

// Map renders the config back into FromMap's key/value form.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
