package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates are zero-based; the grid does not wrap.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). Callers check InBounds first.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y) and returns the previous value.
func (g *ByteGrid) Set(x, y int, v uint8) uint8 {
	idx := g.Index(x, y)
	prev := g.data[idx]
	g.data[idx] = v
	return prev
}

// CopyTo copies the cell values into dst, growing it when needed.
func (g *ByteGrid) CopyTo(dst []uint8) []uint8 {
	if cap(dst) < len(g.data) {
		dst = make([]uint8, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
