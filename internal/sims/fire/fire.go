package fire

import (
	"errors"
	"fmt"
	"image/color"

	"doomfire/internal/core"
)

// ErrInvalidDimensions is returned when a field is constructed with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("fire: width and height must be positive")

// Field is the doom-fire heat simulation: a single in-place heat grid whose
// bottom row is continuously reignited while heat rises, decays, and drifts
// laterally. Row 0 is the top of the flame; row H-1 is the source row.
type Field struct {
	cfg   Config
	grid  *core.ByteGrid
	frame []color.RGBA
	rng   core.Source
}

// New returns a fire field with the provided dimensions and default kernel
// constants.
func New(w, h int) (*Field, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fire field configured from the provided options.
// The grid starts fully extinguished. Both buffers are sized once here;
// Step never allocates.
func NewWithConfig(cfg Config) (*Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	f := &Field{
		cfg:   cfg,
		grid:  core.NewByteGrid(cfg.Width, cfg.Height),
		frame: make([]color.RGBA, cfg.Width*cfg.Height),
		rng:   core.NewRNG(cfg.Seed),
	}
	f.renderFrame()
	return f, nil
}

// Name returns the simulation identifier.
func (f *Field) Name() string { return "fire" }

// Size reports the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.grid.W, H: f.grid.H} }

// Cells exposes the current heat values, row-major from the top.
func (f *Field) Cells() []uint8 { return f.grid.Cells() }

// Frame exposes the finished color frame. The slice is overwritten by the
// next Step call; presenters that retain it across ticks must copy.
func (f *Field) Frame() []color.RGBA { return f.frame }

// Config returns the configuration the field was built with.
func (f *Field) Config() Config { return f.cfg }

// SetRandSource replaces the field's random source. Passing nil restores the
// default deterministic source seeded from the configuration.
func (f *Field) SetRandSource(src core.Source) {
	if src == nil {
		src = core.NewRNG(f.cfg.Seed)
	}
	f.rng = src
}

// Reset extinguishes the whole grid and reinstalls the default random source
// with the provided seed.
func (f *Field) Reset(seed int64) {
	f.grid.Clear()
	f.rng = core.NewRNG(seed)
	f.renderFrame()
}

// Step advances the fire by one tick: reignite the source row, propagate
// heat upward, then refresh the color frame.
func (f *Field) Step() {
	f.seedSource()
	f.propagate()
	f.renderFrame()
}

// SourceHeat reports the mean intensity of the source row, normalized to
// [0, 1]. Presenters use it to drive effects such as crackle loudness.
func (f *Field) SourceHeat() float64 {
	cells := f.grid.Cells()
	base := f.grid.Index(0, f.grid.H-1)
	sum := 0
	for x := 0; x < f.grid.W; x++ {
		sum += int(cells[base+x])
	}
	return float64(sum) / float64(f.grid.W*255)
}

// seedSource reignites the bottom row. Sparked cells jump to near-maximum
// heat with a little variance; the rest cool by a fixed step until they reach
// the floor, so the base flickers instead of burning as a flat bar.
func (f *Field) seedSource() {
	p := f.cfg.Params
	cells := f.grid.Cells()
	base := f.grid.Index(0, f.grid.H-1)
	for x := 0; x < f.grid.W; x++ {
		idx := base + x
		if f.rng.Uniform(0, 100) < p.SparkChance {
			cells[idx] = uint8(255 - f.rng.Uniform(0, p.SparkVariance))
			continue
		}
		if int(cells[idx]) > p.SourceFloor {
			next := int(cells[idx]) - p.SourceCooling
			if next < 0 {
				next = 0
			}
			cells[idx] = uint8(next)
		}
	}
}

// propagate moves heat up one row at a time. Each cell reads the cell
// directly below it, in place, from the single shared buffer: the row above
// the source sees the sparks seeded this same tick. That is intentional;
// double-buffering here changes the flame dynamics. Columns are processed
// left to right and later writes to a drifted-into column win.
func (f *Field) propagate() {
	p := f.cfg.Params
	w, h := f.grid.W, f.grid.H
	cells := f.grid.Cells()
	decayBound := p.CoolingMax + 1
	for y := 0; y < h-1; y++ {
		rowAbove := y * w
		rowBelow := rowAbove + w
		for x := 0; x < w; x++ {
			val := cells[rowBelow+x]
			if val == 0 {
				// Extinguished cells never reignite from propagation.
				cells[rowAbove+x] = 0
				continue
			}
			decay := f.rng.Uniform(0, decayBound)
			drift := f.rng.Uniform(0, 3) - 1
			dstX := f.grid.ClampX(x + drift)
			next := int(val) - decay
			if next < 0 {
				next = 0
			}
			cells[rowAbove+dstX] = uint8(next)
		}
	}
}

// renderFrame maps every heat value through the palette. The full lookup
// runs every tick; any delta tracking belongs to the presenter.
func (f *Field) renderFrame() {
	for i, v := range f.grid.Cells() {
		f.frame[i] = firePalette[v]
	}
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Sim {
		f, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil
		}
		return f
	})
}
