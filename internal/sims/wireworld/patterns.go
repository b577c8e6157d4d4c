package wireworld

import (
	"fmt"
	"slices"
	"strings"

	"wireworld/internal/core"
)

// Pattern is a stencil of non-Empty cells relative to its top-left corner.
// Offsets are zero-based.
type Pattern struct {
	Name    string
	Rows    int
	Columns int
	Cells   []PatternCell
}

// PatternCell is one cell of a Pattern.
type PatternCell struct {
	Offset
	State State
}

var stencils = map[string][]string{
	// An electron travelling east along a straight wire.
	"wire": {
		"tH########",
	},
	// Six-cell ring oscillator; the electron comes back every 6 ticks.
	"clock": {
		".Ht.",
		"#..#",
		".##.",
	},
	// A wire splitting into two parallel branches.
	"fanout": {
		".....######",
		"tH###......",
		".....######",
	},
}

// PatternNames lists the built-in circuits.
func PatternNames() []string {
	names := []string{"random"}
	for name := range stencils {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func knownPattern(name string) bool {
	_, ok := stencils[name]
	return ok || name == "random"
}

// ParseStencil builds a Pattern from rows of glyphs: '.' or ' ' Empty,
// 'H' Head, 't' Tail and '#' Conductor.
func ParseStencil(name string, lines ...string) (Pattern, error) {
	p := Pattern{Name: name, Rows: len(lines)}
	for r, line := range lines {
		p.Columns = max(p.Columns, len(line))
		for c := 0; c < len(line); c++ {
			if line[c] == ' ' || line[c] == '.' {
				continue
			}
			s, err := ParseState(string(line[c]))
			if err != nil {
				return Pattern{}, fmt.Errorf("wireworld: pattern %q row %d column %d: %w", name, r+1, c+1, err)
			}
			p.Cells = append(p.Cells, PatternCell{Offset: Offset{Row: r, Column: c}, State: s})
		}
	}
	return p, nil
}

// BuildPattern returns the named circuit. The random pattern fills a
// rows×columns area and is fully determined by seed.
func BuildPattern(name string, seed int64, rows, columns int) (Pattern, error) {
	if name == "random" {
		return randomPattern(seed, rows, columns), nil
	}
	lines, ok := stencils[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: unknown pattern %q (have %s)", ErrConfiguration, name, strings.Join(PatternNames(), ", "))
	}
	return ParseStencil(name, lines...)
}

// Centre returns the top-left position that centres p on a rows×columns
// grid. Patterns larger than the grid are anchored at (1,1).
func (p Pattern) Centre(rows, columns int) Position {
	return Position{
		Row:    max(1, (rows-p.Rows)/2+1),
		Column: max(1, (columns-p.Columns)/2+1),
	}
}

func randomPattern(seed int64, rows, columns int) Pattern {
	rng := core.NewRNG(seed)
	p := Pattern{Name: "random", Rows: rows, Columns: columns}
	wires := max(1, rows*columns/64)
	for i := 0; i < wires; i++ {
		length := 3 + rng.IntN(10)
		start := Offset{Row: rng.IntN(rows), Column: rng.IntN(columns)}
		step := Offset{Column: 1}
		if rng.Bool() {
			step = Offset{Row: 1}
		}
		charged := rng.Bool()
		for j := 0; j < length; j++ {
			at := Offset{Row: start.Row + j*step.Row, Column: start.Column + j*step.Column}
			if at.Row >= rows || at.Column >= columns {
				break
			}
			s := Conductor
			switch {
			case charged && j == 0:
				s = Tail
			case charged && j == 1:
				s = Head
			}
			p.Cells = append(p.Cells, PatternCell{Offset: at, State: s})
		}
	}
	return p
}

// Stamp paints p with its top-left corner at at. The whole pattern must fit;
// otherwise nothing is painted and a bounds error is returned.
func (e *Engine) Stamp(p Pattern, at Position) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, cell := range p.Cells {
		pos := at.Add(cell.Offset)
		if !e.grid.Contains(pos) {
			return &BoundsError{Pos: pos, Rows: e.grid.Rows(), Columns: e.grid.Columns()}
		}
	}
	e.stampLocked(p, at)
	e.verifyLocked()
	return nil
}

// stampLocked paints the cells of p that land on the grid.
func (e *Engine) stampLocked(p Pattern, at Position) {
	for _, cell := range p.Cells {
		pos := at.Add(cell.Offset)
		if !e.grid.Contains(pos) {
			continue
		}
		_ = e.paintLocked(pos, cell.State)
	}
}
