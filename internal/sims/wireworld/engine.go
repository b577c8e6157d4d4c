package wireworld

import (
	"fmt"
	"sync"
	"time"

	"wireworld/internal/core"
)

var _ core.Sim = (*Engine)(nil)

// Engine owns a Grid and its ActiveSet and is the only way to mutate them.
// Every method takes the engine lock, so an edit is applied either entirely
// before or entirely after a tick.
type Engine struct {
	mu sync.Mutex

	cfg    Config
	grid   *Grid
	active *ActiveSet

	running    bool
	intervalMS int
	ticks      uint64

	next []State
}

// New returns an Engine for a rows×columns grid using default settings.
func New(rows, columns int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = columns
	return NewWithConfig(cfg)
}

// NewWithConfig returns an idle Engine with an empty grid. Call Reset to
// stamp the configured pattern.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:        cfg,
		grid:       grid,
		active:     NewActiveSet(),
		intervalMS: cfg.IntervalMS,
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "wireworld" }

// Size reports the grid dimensions; W counts columns and H rows.
func (e *Engine) Size() core.Size {
	return core.Size{W: e.grid.Columns(), H: e.grid.Rows()}
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cells exposes the display buffer in row-major order. The slice is shared
// with the engine; concurrent callers should use CopyCells.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// CopyCells copies the display buffer into dst under the engine lock.
func (e *Engine) CopyCells(dst []uint8) []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.cells.CopyTo(dst)
}

// EdgeMask returns the edge classification of every cell in row-major order.
func (e *Engine) EdgeMask() []uint8 {
	mask := make([]uint8, len(e.grid.edges))
	for i, edge := range e.grid.edges {
		mask[i] = uint8(edge)
	}
	return mask
}

// Cell returns the state and edge type at p.
func (e *Engine) Cell(p Position) (State, EdgeType, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.grid.State(p)
	if err != nil {
		return Empty, EdgeNone, err
	}
	edge, _ := e.grid.Edge(p)
	return s, edge, nil
}

// Active returns a copy of the active set in iteration order.
func (e *Engine) Active() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Entry(nil), e.active.entries...)
}

// Population counts active cells by state.
type Population struct {
	Heads      int
	Tails      int
	Conductors int
}

// Total returns the number of non-Empty cells.
func (p Population) Total() int { return p.Heads + p.Tails + p.Conductors }

// Population returns the current head/tail/conductor counts.
func (e *Engine) Population() Population {
	e.mu.Lock()
	defer e.mu.Unlock()
	var pop Population
	for _, ent := range e.active.entries {
		switch ent.State {
		case Head:
			pop.Heads++
		case Tail:
			pop.Tails++
		case Conductor:
			pop.Conductors++
		}
	}
	return pop
}

// Ticks returns how many ticks have run since the last Reset or Clear.
func (e *Engine) Ticks() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

// Step advances one tick.
func (e *Engine) Step() { e.Tick() }

// Tick computes every active cell's next state from one snapshot of the
// active set and then commits all results.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.active.Snapshot()
	entries := e.active.entries
	if cap(e.next) < len(entries) {
		e.next = make([]State, len(entries))
	}
	next := e.next[:len(entries)]
	for i, ent := range entries {
		next[i] = NextState(ent, snap)
	}
	for i := range entries {
		entries[i].State = next[i]
		e.grid.set(entries[i].Pos, next[i])
	}
	e.ticks++
	e.verifyLocked()
}

// Paint sets the state at p. Painting Empty removes the cell's entry;
// any other state replaces it with a fresh entry.
func (e *Engine) Paint(p Position, s State) error {
	if !s.Valid() {
		return fmt.Errorf("wireworld: invalid state %v", s)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.paintLocked(p, s); err != nil {
		return err
	}
	e.verifyLocked()
	return nil
}

func (e *Engine) paintLocked(p Position, s State) error {
	edge, err := e.grid.Edge(p)
	if err != nil {
		return err
	}
	e.active.Remove(p)
	if s != Empty {
		e.active.Insert(Entry{Pos: p, State: s, Edge: edge})
	}
	e.grid.set(p, s)
	return nil
}

// Clear empties the grid and resets the tick counter.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearLocked()
}

func (e *Engine) clearLocked() {
	e.active.Clear()
	e.grid.clear()
	e.ticks = 0
}

// Reset clears the grid and stamps the configured pattern centred on it. A
// zero seed falls back to the configured one.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearLocked()
	if e.cfg.Pattern == "" {
		return
	}
	pat, err := BuildPattern(e.cfg.Pattern, seed, e.grid.Rows(), e.grid.Columns())
	if err != nil {
		// Validate already rejected unknown names.
		panic(err)
	}
	e.stampLocked(pat, pat.Centre(e.grid.Rows(), e.grid.Columns()))
	e.verifyLocked()
}

// Running reports whether the driver should tick the engine.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SetRunning switches between Idle and Running.
func (e *Engine) SetRunning(running bool) {
	e.mu.Lock()
	e.running = running
	e.mu.Unlock()
}

// Toggle flips Running and returns the new value.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = !e.running
	return e.running
}

// IntervalMS returns the configured time between ticks in milliseconds.
func (e *Engine) IntervalMS() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.intervalMS
}

// Interval returns the time between ticks.
func (e *Engine) Interval() time.Duration {
	return time.Duration(e.IntervalMS()) * time.Millisecond
}

// SetInterval changes the time between ticks. Range checks belong to the
// caller; drivers treat non-positive values as their own minimum.
func (e *Engine) SetInterval(ms int) {
	e.mu.Lock()
	e.intervalMS = ms
	e.mu.Unlock()
}

// verifyLocked panics if the active set and the grid disagree. Editing and
// ticking keep them in step, so a mismatch is an engine bug.
func (e *Engine) verifyLocked() {
	if n, m := e.grid.NonEmpty(), e.active.Len(); n != m {
		panic(fmt.Sprintf("wireworld: grid has %d non-empty cells but active set has %d entries", n, m))
	}
	for _, ent := range e.active.entries {
		if got := State(e.grid.cells.At(ent.Pos.Column-1, ent.Pos.Row-1)); got != ent.State {
			panic(fmt.Sprintf("wireworld: grid shows %v at %v, active set has %v", got, ent.Pos, ent.State))
		}
	}
}
