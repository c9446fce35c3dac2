package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Row 0 is the top of the grid.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Callers
// validate dimensions before allocating.
func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// ClampX restricts a column coordinate to the grid. Values that drift past an
// edge land on the edge column rather than wrapping around.
func (g *ByteGrid) ClampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= g.W {
		return g.W - 1
	}
	return x
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
