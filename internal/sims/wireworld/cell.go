package wireworld

import (
	"fmt"
	"strings"
)

// State is the value of a single cell. The numeric value doubles as the
// display byte and palette index.
type State uint8

const (
	Empty State = iota
	Head
	Tail
	Conductor
)

// States lists every cell state in palette order.
var States = [...]State{Empty, Head, Tail, Conductor}

var stateNames = [...]string{"empty", "head", "tail", "conductor"}

// glyphs used by pattern stencils and text renderers.
var stateGlyphs = [...]byte{'.', 'H', 't', '#'}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Glyph returns the single-character form of s.
func (s State) Glyph() byte {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}
	return '?'
}

// Valid reports whether s is one of the four Wireworld states.
func (s State) Valid() bool { return s <= Conductor }

// ParseState accepts a state name or glyph.
func ParseState(v string) (State, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	for i, name := range stateNames {
		if v == name || (len(v) == 1 && strings.EqualFold(v, string(stateGlyphs[i]))) {
			return State(i), nil
		}
	}
	return Empty, fmt.Errorf("wireworld: unknown cell state %q", v)
}

// Position addresses a cell. Rows and columns are 1-indexed.
type Position struct {
	Row    int
	Column int
}

// Add returns p shifted by o.
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.Row, Column: p.Column + o.Column}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Column) }

// Offset is a relative row/column displacement.
type Offset struct {
	Row    int
	Column int
}

// EdgeType classifies where a position sits relative to the grid boundary.
type EdgeType uint8

const (
	EdgeNone EdgeType = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
	EdgeTopLeft
	EdgeTopRight
	EdgeBottomLeft
	EdgeBottomRight
)

var edgeNames = [...]string{
	"none", "top", "bottom", "left", "right",
	"top-left", "top-right", "bottom-left", "bottom-right",
}

func (e EdgeType) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("EdgeType(%d)", uint8(e))
}

// Corner reports whether e is one of the four corner types.
func (e EdgeType) Corner() bool { return e >= EdgeTopLeft && e <= EdgeBottomRight }

// Classify returns the edge type of (row, column) on a maxRow×maxColumn grid.
// Corners take precedence over edges.
func Classify(row, column, maxRow, maxColumn int) EdgeType {
	switch {
	case row == 1 && column == 1:
		return EdgeTopLeft
	case row == 1 && column == maxColumn:
		return EdgeTopRight
	case row == maxRow && column == maxColumn:
		return EdgeBottomRight
	case row == maxRow && column == 1:
		return EdgeBottomLeft
	case row == 1:
		return EdgeTop
	case column == maxColumn:
		return EdgeRight
	case row == maxRow:
		return EdgeBottom
	case column == 1:
		return EdgeLeft
	default:
		return EdgeNone
	}
}

var edgeOffsets = buildEdgeOffsets()

func buildEdgeOffsets() [len(edgeNames)][]Offset {
	var table [len(edgeNames)][]Offset
	for e := range table {
		edge := EdgeType(e)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if dr < 0 && edge.touchesTop() || dr > 0 && edge.touchesBottom() {
					continue
				}
				if dc < 0 && edge.touchesLeft() || dc > 0 && edge.touchesRight() {
					continue
				}
				table[e] = append(table[e], Offset{Row: dr, Column: dc})
			}
		}
	}
	return table
}

func (e EdgeType) touchesTop() bool {
	return e == EdgeTop || e == EdgeTopLeft || e == EdgeTopRight
}

func (e EdgeType) touchesBottom() bool {
	return e == EdgeBottom || e == EdgeBottomLeft || e == EdgeBottomRight
}

func (e EdgeType) touchesLeft() bool {
	return e == EdgeLeft || e == EdgeTopLeft || e == EdgeBottomLeft
}

func (e EdgeType) touchesRight() bool {
	return e == EdgeRight || e == EdgeTopRight || e == EdgeBottomRight
}

// Offsets returns the Moore-neighborhood offsets that can stay inside the
// grid for a cell of this edge type. The slice is shared; do not modify it.
func (e EdgeType) Offsets() []Offset {
	if int(e) < len(edgeOffsets) {
		return edgeOffsets[e]
	}
	return nil
}
