package fire

import (
	"errors"
	"testing"

	"doomfire/internal/core"
)

// stubSource answers Uniform calls from a policy keyed on the requested
// range, which is enough to tell spark rolls (0,100), variance draws (0,50),
// drift draws (0,3), and decay draws apart under the default constants.
type stubSource struct {
	fn func(a, b int) int
}

func (s stubSource) Uniform(a, b int) int { return s.fn(a, b) }

// alwaysSpark ignites every source cell with the given variance draw, keeps
// drift centered, and applies no propagation decay.
func alwaysSpark(varianceDraw int) core.Source {
	return stubSource{fn: func(a, b int) int {
		switch b {
		case 100:
			return 0
		case 50:
			return varianceDraw
		case 3:
			return 1
		default:
			return 0
		}
	}}
}

// neverSpark suppresses ignition, keeps drift centered, and decays by one
// during propagation.
func neverSpark() core.Source {
	return stubSource{fn: func(a, b int) int {
		switch b {
		case 100:
			return 99
		case 3:
			return 1
		default:
			return 1
		}
	}}
}

func TestNewValidatesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}

	f, err := New(10, 10)
	if err != nil {
		t.Fatalf("New(10, 10) failed: %v", err)
	}
	for i, v := range f.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 in a fresh field", i, v)
		}
	}
	black := Palette()[0]
	for i, c := range f.Frame() {
		if c != black {
			t.Fatalf("frame cell %d = %v, want %v in a fresh field", i, c, black)
		}
	}
}

func TestSparkReignitesSourceRow(t *testing.T) {
	f, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	f.SetRandSource(alwaysSpark(49))
	f.Step()

	w := f.Size().W
	base := (f.Size().H - 1) * w
	for x := 0; x < w; x++ {
		got := f.Cells()[base+x]
		if got != 255-49 {
			t.Fatalf("source cell %d = %d, want %d", x, got, 255-49)
		}
		if got < 205 {
			t.Fatalf("source cell %d = %d, below the spark range floor 205", x, got)
		}
	}
}

func TestSourceCoolsWithoutSpark(t *testing.T) {
	f, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	w := f.Size().W
	base := (f.Size().H - 1) * w
	for x := 0; x < w; x++ {
		f.Cells()[base+x] = 255
	}
	f.SetRandSource(neverSpark())
	f.Step()

	for x := 0; x < w; x++ {
		if got := f.Cells()[base+x]; got != 250 {
			t.Fatalf("source cell %d = %d, want 250 after one cooling step", x, got)
		}
	}
}

func TestExtinguishedStaysExtinguished(t *testing.T) {
	f, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	w := f.Size().W
	// Row 6 alternates cold and hot; drift is centered so writes stay in
	// their own column.
	for x := 0; x < w; x++ {
		if x%2 == 1 {
			f.Cells()[6*w+x] = 100
		}
	}
	f.SetRandSource(neverSpark())
	f.Step()

	for x := 0; x < w; x++ {
		got := f.Cells()[5*w+x]
		if x%2 == 0 {
			if got != 0 {
				t.Fatalf("cell (%d,5) = %d, want 0 above an extinguished cell", x, got)
			}
			continue
		}
		if got != 99 {
			t.Fatalf("cell (%d,5) = %d, want 99 after decay of 1", x, got)
		}
	}
}

func TestAllZeroGridStaysZeroWithoutSparks(t *testing.T) {
	f, err := New(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	f.SetRandSource(neverSpark())
	for i := 0; i < 10; i++ {
		f.Step()
	}
	for i, v := range f.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 when nothing ever sparks", i, v)
		}
	}
}

func TestStepIsDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 48
	cfg.Seed = 7

	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}

	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d diverged: %d vs %d", i, a.Cells()[i], b.Cells()[i])
		}
	}
	for i := range a.Frame() {
		if a.Frame()[i] != b.Frame()[i] {
			t.Fatalf("frame cell %d diverged", i)
		}
	}
}

func TestFrameTracksGridThroughPalette(t *testing.T) {
	f, err := New(24, 32)
	if err != nil {
		t.Fatal(err)
	}
	palette := Palette()
	for step := 0; step < 200; step++ {
		f.Step()
		if step%50 != 0 {
			continue
		}
		for i, v := range f.Cells() {
			if f.Frame()[i] != palette[v] {
				t.Fatalf("step %d: frame cell %d = %v, want %v for intensity %d",
					step, i, f.Frame()[i], palette[v], v)
			}
		}
	}

	// The source row must be burning by now.
	w := f.Size().W
	base := (f.Size().H - 1) * w
	lit := 0
	for x := 0; x < w; x++ {
		if f.Cells()[base+x] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("source row is fully extinguished after 200 ticks")
	}
}

func TestResetExtinguishesField(t *testing.T) {
	f, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		f.Step()
	}
	f.Reset(5)

	for i, v := range f.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Reset, want 0", i, v)
		}
	}
	black := Palette()[0]
	for i, c := range f.Frame() {
		if c != black {
			t.Fatalf("frame cell %d = %v after Reset, want %v", i, c, black)
		}
	}
}

func TestStepDoesNotAllocate(t *testing.T) {
	f, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if allocs := testing.AllocsPerRun(20, f.Step); allocs != 0 {
		t.Fatalf("Step allocated %.0f times per run, want 0", allocs)
	}
}

func TestSourceHeat(t *testing.T) {
	f, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.SourceHeat(); got != 0 {
		t.Fatalf("SourceHeat = %v on a fresh field, want 0", got)
	}
	f.SetRandSource(alwaysSpark(0))
	f.Step()
	if got := f.SourceHeat(); got != 1 {
		t.Fatalf("SourceHeat = %v with a fully sparked source row, want 1", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "64",
		"h":            "40",
		"seed":         "99",
		"cooling_max":  "2",
		"spark_chance": "80",
	})
	if cfg.Width != 64 || cfg.Height != 40 || cfg.Seed != 99 {
		t.Fatalf("unexpected dimensions/seed: %+v", cfg)
	}
	if cfg.Params.CoolingMax != 2 || cfg.Params.SparkChance != 80 {
		t.Fatalf("unexpected params: %+v", cfg.Params)
	}

	// Out-of-range percentages keep the default.
	cfg = FromMap(map[string]string{"spark_chance": "150"})
	if cfg.Params.SparkChance != DefaultConfig().Params.SparkChance {
		t.Fatalf("spark_chance = %d, want default", cfg.Params.SparkChance)
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	f, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !f.SetIntParameter("spark_chance", 500) {
		t.Fatal("SetIntParameter rejected a known key")
	}
	if got := f.Config().Params.SparkChance; got != 100 {
		t.Fatalf("spark_chance = %d, want clamped to 100", got)
	}
	if f.SetIntParameter("no_such_key", 1) {
		t.Fatal("SetIntParameter accepted an unknown key")
	}
}

func TestRegistryFactory(t *testing.T) {
	factory, ok := core.Sims()["fire"]
	if !ok {
		t.Fatal("fire sim is not registered")
	}
	sim := factory(nil)
	if sim == nil {
		t.Fatal("factory rejected the default configuration")
	}
	if size := sim.Size(); size.W != 320 || size.H != 200 {
		t.Fatalf("default size = %dx%d, want 320x200", size.W, size.H)
	}
	if factory(map[string]string{"w": "0"}) != nil {
		t.Fatal("factory accepted a zero-width configuration")
	}
}
