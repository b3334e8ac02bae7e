package life

import (
	"strconv"

	"life-canvas/internal/core"
)

const (
	maxDimension = 200
	maxSpeed     = 60
)

// Parameters snapshots the values shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	status := "paused"
	if e.state.Running {
		status = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "status", Label: "Status", Type: core.ParamTypeText, Value: status},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(e.state.Grid.Population())},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeText, Value: e.cfg.Boundary.String()},
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				{Key: "speed", Label: "Speed (gen/s)", Type: core.ParamTypeInt, Value: strconv.Itoa(e.cfg.CyclesPerSecond)},
				{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: strconv.Itoa(e.state.Grid.Rows())},
				{Key: "cols", Label: "Columns", Type: core.ParamTypeInt, Value: strconv.Itoa(e.state.Grid.Cols())},
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed (gen/s)", Step: 1, Min: core.MinCyclesPerSecond, Max: maxSpeed, HasMin: true, HasMax: true},
		{Key: "rows", Label: "Rows", Step: 1, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
		{Key: "cols", Label: "Columns", Step: 1, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. It reports false when the key is
// unknown or the value was rejected.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		return e.SetSpeed(value) == nil
	case "rows":
		return e.Resize(value, e.state.Grid.Cols()) == nil
	case "cols":
		return e.Resize(e.state.Grid.Rows(), value) == nil
	}
	return false
}
