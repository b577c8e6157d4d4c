package wireworld

import (
	"strconv"

	"wireworld/internal/core"
)

// Interval bounds offered to input layers. The engine itself accepts any
// value.
const (
	MinIntervalMS  = 10
	MaxIntervalMS  = 10000
	IntervalStepMS = 50
)

var intervalControl = core.ParameterControl{
	Key:    "interval_ms",
	Label:  "Tick interval (ms)",
	Step:   IntervalStepMS,
	Min:    MinIntervalMS,
	Max:    MaxIntervalMS,
	HasMin: true,
	HasMax: true,
}

// IntervalControl describes the interval range accepted by the frontends.
func IntervalControl() core.ParameterControl { return intervalControl }

// Parameters reports the engine's settings and live counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	pop := e.Population()
	pattern := e.cfg.Pattern
	if pattern == "" {
		pattern = "none"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.grid.Rows()),
				intParam("columns", "Columns", e.grid.Columns()),
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeText, Value: pattern},
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(e.Running())},
				intParam("interval_ms", "Tick interval (ms)", e.IntervalMS()),
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.Ticks(), 10)},
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("heads", "Heads", pop.Heads),
				intParam("tails", "Tails", pop.Tails),
				intParam("conductors", "Conductors", pop.Conductors),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{intervalControl}
}

// SetIntParameter updates an adjustable value, clamping it to the control's
// bounds.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case intervalControl.Key:
		e.SetInterval(intervalControl.Clamp(value))
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
