package fire

import (
	"strconv"

	"doomfire/internal/core"
)

// Parameters reports the current tunables for HUD display.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", f.cfg.Width),
				intParam("h", "Height", f.cfg.Height),
				int64Param("seed", "Seed", f.cfg.Seed),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				intParam("spark_chance", "Spark chance %", p.SparkChance),
				intParam("spark_variance", "Spark variance", p.SparkVariance),
				intParam("source_cooling", "Source cooling", p.SourceCooling),
				intParam("source_floor", "Source floor", p.SourceFloor),
				intParam("cooling_max", "Cooling max", p.CoolingMax),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust live.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "spark_chance", Label: "Spark chance %", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "cooling_max", Label: "Cooling max", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "source_cooling", Label: "Source cooling", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, clamping to its control bounds.
func (f *Field) SetIntParameter(key string, value int) bool {
	switch key {
	case "spark_chance":
		f.cfg.Params.SparkChance = clampInt(value, 0, 100)
	case "spark_variance":
		f.cfg.Params.SparkVariance = clampInt(value, 1, 255)
	case "source_cooling":
		f.cfg.Params.SourceCooling = clampInt(value, 0, 64)
	case "source_floor":
		f.cfg.Params.SourceFloor = clampInt(value, 0, 255)
	case "cooling_max":
		f.cfg.Params.CoolingMax = clampInt(value, 0, 32)
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}
