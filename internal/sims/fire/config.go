package fire

import "strconv"

// Params holds the tunable constants of the fire propagation kernel. The
// defaults are the values shared by the classic terminal, windowed, and GL
// renditions of the effect.
type Params struct {
	// SparkChance is the percent chance that a source-row cell reignites
	// on a given tick.
	SparkChance int
	// SparkVariance bounds the random amount subtracted from full heat
	// when a spark fires; sparks land in [255-SparkVariance+1, 255].
	SparkVariance int
	// SourceCooling is the fixed amount an un-sparked source cell loses.
	SourceCooling int
	// SourceFloor is the intensity below which un-sparked source cells
	// stop cooling.
	SourceFloor int
	// CoolingMax is the inclusive upper bound on per-cell decay during
	// upward propagation.
	CoolingMax int
}

// Config controls the fire simulation dimensions and kernel constants.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 200,
		Seed:   1337,
		Params: Params{
			SparkChance:   60,
			SparkVariance: 50,
			SourceCooling: 5,
			SourceFloor:   10,
			CoolingMax:    3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spark_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Params.SparkChance = parsed
		}
	}
	if v, ok := cfg["spark_variance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 255 {
			c.Params.SparkVariance = parsed
		}
	}
	if v, ok := cfg["source_cooling"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SourceCooling = parsed
		}
	}
	if v, ok := cfg["source_floor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.SourceFloor = parsed
		}
	}
	if v, ok := cfg["cooling_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CoolingMax = parsed
		}
	}
	return c
}
