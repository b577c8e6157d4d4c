package wireworld

import "image/color"

var palette = []color.RGBA{
	Empty:     {R: 12, G: 12, B: 16, A: 255},
	Head:      {R: 70, G: 140, B: 255, A: 255},
	Tail:      {R: 255, G: 80, B: 50, A: 255},
	Conductor: {R: 235, G: 190, B: 40, A: 255},
}

// Palette maps display values (cell states) to colors.
func (e *Engine) Palette() []color.RGBA { return palette }

// Text renders the grid as one line of glyphs per row.
func (e *Engine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	cols := e.grid.Columns()
	cells := e.grid.Cells()
	buf := make([]byte, 0, len(cells)+e.grid.Rows())
	for i, v := range cells {
		buf = append(buf, State(v).Glyph())
		if (i+1)%cols == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
