package life

import (
	"strconv"

	"conway/internal/core"
)

// Parameters reports the board configuration and running statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				floatParam("density", "Seed density", l.cfg.Density),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.seed, 10)},
			},
		},
		{
			Name:    "Run",
			Summary: "B3/S23, edges do not wrap",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 3, 64)}
}
