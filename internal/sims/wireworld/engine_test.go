package wireworld

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"wireworld/internal/core"
)

func mustEngine(t *testing.T, rows, cols int) *Engine {
	t.Helper()
	e, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}
	return e
}

func mustPaint(t *testing.T, e *Engine, p Position, s State) {
	t.Helper()
	if err := e.Paint(p, s); err != nil {
		t.Fatalf("Paint(%v, %v): %v", p, s, err)
	}
}

func TestSingleWireScenario(t *testing.T) {
	e := mustEngine(t, 1, 5)
	mustPaint(t, e, Position{1, 1}, Head)
	mustPaint(t, e, Position{1, 2}, Tail)
	mustPaint(t, e, Position{1, 3}, Conductor)

	e.Tick()

	if got, want := e.Text(), "t##..\n"; got != want {
		t.Fatalf("after one tick grid = %q, want %q", got, want)
	}
	if e.Active()[0].Edge != EdgeTopLeft {
		t.Fatalf("entry edge type changed: %v", e.Active()[0].Edge)
	}

	e.Tick()
	if got, want := e.Text(), "###..\n"; got != want {
		t.Fatalf("after two ticks grid = %q, want %q", got, want)
	}
	if e.Ticks() != 2 {
		t.Fatalf("tick counter = %d, want 2", e.Ticks())
	}
}

func TestTickOnEmptyGridIsStable(t *testing.T) {
	e := mustEngine(t, 6, 7)
	before := append([]uint8(nil), e.Cells()...)
	for i := 0; i < 25; i++ {
		e.Tick()
	}
	if len(e.Active()) != 0 {
		t.Fatalf("active set grew to %d entries", len(e.Active()))
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("ticking an empty grid changed it")
	}
}

func TestTickIsIndependentOfEntryOrder(t *testing.T) {
	const rows, cols = 14, 16
	pat, err := BuildPattern("random", 7, rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	final := map[Position]State{}
	for _, cell := range pat.Cells {
		final[Position{Row: cell.Row + 1, Column: cell.Column + 1}] = cell.State
	}
	order := make([]Position, 0, len(final))
	for p := range final {
		order = append(order, p)
	}
	slices.SortFunc(order, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Column - b.Column
	})

	reference := mustEngine(t, rows, cols)
	for _, p := range order {
		mustPaint(t, reference, p, final[p])
	}
	for i := 0; i < 30; i++ {
		reference.Tick()
	}

	rng := core.NewRNG(99)
	for trial := 0; trial < 5; trial++ {
		shuffled := slices.Clone(order)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		e := mustEngine(t, rows, cols)
		for _, p := range shuffled {
			mustPaint(t, e, p, final[p])
		}
		for i := 0; i < 30; i++ {
			e.Tick()
		}
		if !slices.Equal(reference.Cells(), e.Cells()) {
			t.Fatalf("trial %d: grid depends on active-set order\nwant:\n%s\ngot:\n%s", trial, reference.Text(), e.Text())
		}
	}
}

func TestTickNeverRemovesEntries(t *testing.T) {
	e := mustEngine(t, 5, 5)
	mustPaint(t, e, Position{3, 3}, Head)
	mustPaint(t, e, Position{3, 4}, Conductor)
	mustPaint(t, e, Position{1, 1}, Tail)
	for i := 0; i < 10; i++ {
		e.Tick()
		if n := len(e.Active()); n != 3 {
			t.Fatalf("tick %d: active set has %d entries, want 3", i+1, n)
		}
	}
}

func TestClockPatternOscillates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 7
	cfg.Columns = 8
	cfg.Pattern = "clock"
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(0)
	initial := e.Text()
	if strings.Count(initial, "H") != 1 || strings.Count(initial, "t") != 1 {
		t.Fatalf("clock should start with one electron:\n%s", initial)
	}

	for i := 1; i <= 6; i++ {
		e.Tick()
		pop := e.Population()
		if pop.Heads != 1 || pop.Tails != 1 || pop.Conductors != 4 {
			t.Fatalf("tick %d: population %+v, want one electron on a 6-cell ring", i, pop)
		}
		if i < 6 && e.Text() == initial {
			t.Fatalf("clock returned to its initial state after only %d ticks", i)
		}
	}
	if e.Text() != initial {
		t.Fatalf("clock period is not 6:\nwant:\n%s\ngot:\n%s", initial, e.Text())
	}
}

func TestFanoutSplitsElectron(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 5
	cfg.Columns = 13
	cfg.Pattern = "fanout"
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(0)
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	if pop := e.Population(); pop.Heads != 2 {
		t.Fatalf("after reaching the junction heads = %d, want 2\n%s", pop.Heads, e.Text())
	}
}

func TestNewWithConfigFailsFast(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if e, err := NewWithConfig(cfg); !errors.Is(err, ErrConfiguration) || e != nil {
		t.Fatalf("rows=0: engine=%v err=%v, want ErrConfiguration", e, err)
	}
	cfg = DefaultConfig()
	cfg.Pattern = "toaster"
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("unknown pattern err = %v, want ErrConfiguration", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 24
	cfg.Columns = 32
	cfg.Pattern = "random"
	cfg.Seed = 42
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	e.Reset(0)
	initial := append([]uint8(nil), e.Cells()...)
	if e.Population().Total() == 0 {
		t.Fatal("random pattern painted nothing")
	}

	e.Tick()
	mustPaint(t, e, Position{1, 1}, Head)
	e.Reset(0)
	if !slices.Equal(initial, e.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if e.Ticks() != 0 {
		t.Fatalf("Reset must zero the tick counter, got %d", e.Ticks())
	}

	e.Reset(777)
	seeded := append([]uint8(nil), e.Cells()...)
	e.Reset(777)
	if !slices.Equal(seeded, e.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different circuits")
	}
}

func TestStampRejectsPatternsThatDoNotFit(t *testing.T) {
	e := mustEngine(t, 3, 5)
	pat, err := BuildPattern("wire", 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	err = e.Stamp(pat, Position{1, 1})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Stamp err = %v, want ErrOutOfBounds", err)
	}
	if len(e.Active()) != 0 {
		t.Fatal("failed stamp must not paint anything")
	}

	wide := mustEngine(t, 3, 12)
	if err := wide.Stamp(pat, Position{2, 2}); err != nil {
		t.Fatal(err)
	}
	if got := wide.Population(); got.Heads != 1 || got.Tails != 1 || got.Conductors != 8 {
		t.Fatalf("stamped population = %+v", got)
	}
}

func TestRunningAndInterval(t *testing.T) {
	e := mustEngine(t, 2, 2)
	if e.Running() {
		t.Fatal("engine must start idle")
	}
	if !e.Toggle() || !e.Running() {
		t.Fatal("Toggle should start the engine")
	}
	e.SetRunning(false)
	if e.Running() {
		t.Fatal("SetRunning(false) should stop the engine")
	}
	if e.Interval() != time.Second {
		t.Fatalf("default interval = %v, want 1s", e.Interval())
	}
	e.SetInterval(125)
	if e.Interval() != 125*time.Millisecond || e.IntervalMS() != 125 {
		t.Fatalf("interval = %v, want 125ms", e.Interval())
	}
}

func TestSetIntParameterClampsInterval(t *testing.T) {
	e := mustEngine(t, 2, 2)
	if !e.SetIntParameter("interval_ms", 1) {
		t.Fatal("interval should be adjustable")
	}
	if e.IntervalMS() != MinIntervalMS {
		t.Fatalf("interval = %d, want clamp to %d", e.IntervalMS(), MinIntervalMS)
	}
	if e.SetIntParameter("rows", 10) {
		t.Fatal("rows must not be adjustable")
	}
	param, ok := e.Parameters().Lookup("interval_ms")
	if !ok || param.Value != "10" {
		t.Fatalf("snapshot interval = %+v", param)
	}
}

func TestVerifyCatchesDivergence(t *testing.T) {
	e := mustEngine(t, 3, 3)
	mustPaint(t, e, Position{2, 2}, Conductor)
	// Bypass the engine so the grid gains a cell the active set lacks.
	e.grid.set(Position{Row: 1, Column: 1}, Head)

	defer func() {
		if recover() == nil {
			t.Fatal("expected verify to panic on a grid/active-set mismatch")
		}
	}()
	e.Tick()
}
