package wireworld

import (
	"errors"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("NewGrid(%d,%d) err = %v, want ErrConfiguration", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d,%d) returned a partial grid", dims[0], dims[1])
		}
	}
}

func TestGridDefaultsToEmpty(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 4; c++ {
			s, err := g.State(Position{Row: r, Column: c})
			if err != nil || s != Empty {
				t.Fatalf("(%d,%d) = %v, %v; want empty", r, c, s, err)
			}
		}
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 display cells, got %d", len(g.Cells()))
	}
}

func TestGridBoundsChecks(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Position{{0, 1}, {1, 0}, {4, 1}, {1, 5}, {-2, -2}} {
		err := g.SetState(p, Conductor)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetState(%v) err = %v, want ErrOutOfBounds", p, err)
		}
		var bounds *BoundsError
		if !errors.As(err, &bounds) || bounds.Pos != p {
			t.Fatalf("SetState(%v) err = %#v, want BoundsError for the position", p, err)
		}
		if _, err := g.State(p); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("State(%v) err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if g.NonEmpty() != 0 {
		t.Fatalf("failed writes must not change the grid, non-empty = %d", g.NonEmpty())
	}

	p := Position{Row: 3, Column: 4}
	if err := g.SetState(p, Head); err != nil {
		t.Fatal(err)
	}
	if s, _ := g.State(p); s != Head {
		t.Fatalf("State(%v) = %v, want head", p, s)
	}
	if edge, _ := g.Edge(p); edge != EdgeBottomRight {
		t.Fatalf("Edge(%v) = %v, want bottom-right", p, edge)
	}
	if g.NonEmpty() != 1 {
		t.Fatalf("non-empty = %d, want 1", g.NonEmpty())
	}
}
