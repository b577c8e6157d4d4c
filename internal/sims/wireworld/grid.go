package wireworld

import (
	"fmt"

	"wireworld/internal/core"
)

// Grid is the fixed-size presentation board: one state per position plus the
// precomputed edge classification of every position.
type Grid struct {
	rows, columns int

	cells    *core.ByteGrid
	edges    []EdgeType
	nonEmpty int
}

// NewGrid allocates an all-Empty grid. Both dimensions must be at least 1.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows must be >= 1, got %d", ErrConfiguration, rows)
	}
	if columns < 1 {
		return nil, fmt.Errorf("%w: columns must be >= 1, got %d", ErrConfiguration, columns)
	}
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   core.NewByteGrid(columns, rows),
		edges:   make([]EdgeType, rows*columns),
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			g.edges[g.index(Position{Row: r, Column: c})] = Classify(r, c, rows, columns)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 1 && p.Row <= g.rows && p.Column >= 1 && p.Column <= g.columns
}

func (g *Grid) index(p Position) int {
	return g.cells.Index(p.Column-1, p.Row-1)
}

func (g *Grid) check(p Position) error {
	if !g.Contains(p) {
		return &BoundsError{Pos: p, Rows: g.rows, Columns: g.columns}
	}
	return nil
}

// State returns the state at p.
func (g *Grid) State(p Position) (State, error) {
	if err := g.check(p); err != nil {
		return Empty, err
	}
	return State(g.cells.At(p.Column-1, p.Row-1)), nil
}

// SetState stores s at p.
func (g *Grid) SetState(p Position, s State) error {
	if err := g.check(p); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("wireworld: invalid state %v at %v", s, p)
	}
	g.set(p, s)
	return nil
}

func (g *Grid) set(p Position, s State) {
	prev := State(g.cells.Set(p.Column-1, p.Row-1, uint8(s)))
	switch {
	case prev == Empty && s != Empty:
		g.nonEmpty++
	case prev != Empty && s == Empty:
		g.nonEmpty--
	}
}

// Edge returns the edge classification of p.
func (g *Grid) Edge(p Position) (EdgeType, error) {
	if err := g.check(p); err != nil {
		return EdgeNone, err
	}
	return g.edges[g.index(p)], nil
}

// NonEmpty returns how many positions currently hold a non-Empty state.
func (g *Grid) NonEmpty() int { return g.nonEmpty }

// Cells exposes the row-major display buffer.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

func (g *Grid) clear() {
	g.cells.Clear()
	g.nonEmpty = 0
}
