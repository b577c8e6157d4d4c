// Package web streams Wireworld frames to browser spectators over websockets.
package web

import (
	"strings"

	"wireworld/internal/sims/wireworld"
)

// Frame is one published view of the grid. Cells holds one glyph per cell in
// row-major order, without separators.
type Frame struct {
	Tick    uint64 `json:"tick"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Running bool   `json:"running"`
	Cells   string `json:"cells"`
}

// Capture builds a frame from the engine's current state.
func Capture(e *wireworld.Engine) Frame {
	size := e.Size()
	cells := e.CopyCells(nil)
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		sb.WriteByte(wireworld.State(c).Glyph())
	}
	return Frame{
		Tick:    e.Ticks(),
		Rows:    size.H,
		Columns: size.W,
		Running: e.Running(),
		Cells:   sb.String(),
	}
}

