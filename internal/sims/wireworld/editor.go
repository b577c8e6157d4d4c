package wireworld

import "errors"

// Editor is the painting front of an Engine. The input layer picks a brush
// with SetBrush and then calls Paint or Stroke with pointer positions.
type Editor struct {
	engine *Engine
	brush  State
}

// NewEditor returns an editor with the Empty brush selected.
func NewEditor(engine *Engine) *Editor {
	return &Editor{engine: engine}
}

// Brush returns the state painted by Paint.
func (ed *Editor) Brush() State { return ed.brush }

// SetBrush selects the state painted by Paint. Invalid states are ignored.
func (ed *Editor) SetBrush(s State) {
	if s.Valid() {
		ed.brush = s
	}
}

// Paint applies the brush at p.
func (ed *Editor) Paint(p Position) error {
	return ed.engine.Paint(p, ed.brush)
}

// Stroke paints every cell on the line from one pointer sample to the next so
// fast drags leave no gaps. In-range cells are painted even when parts of the
// line fall outside the grid; the first bounds error is returned.
func (ed *Editor) Stroke(from, to Position) error {
	var first error
	for _, p := range Line(from, to) {
		if err := ed.engine.Paint(p, ed.brush); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Line returns the cells on the Bresenham line between a and b, inclusive.
func Line(a, b Position) []Position {
	dr := abs(b.Row - a.Row)
	dc := abs(b.Column - a.Column)
	sr, sc := sign(b.Row-a.Row), sign(b.Column-a.Column)
	out := make([]Position, 0, max(dr, dc)+1)
	r, c := a.Row, a.Column
	diff := dc - dr
	for {
		out = append(out, Position{Row: r, Column: c})
		if r == b.Row && c == b.Column {
			return out
		}
		d2 := 2 * diff
		if d2 >= -dr {
			diff -= dr
			c += sc
		}
		if d2 <= dc {
			diff += dc
			r += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// IsOutOfBounds reports whether err was caused by a position off the grid.
func IsOutOfBounds(err error) bool { return errors.Is(err, ErrOutOfBounds) }
