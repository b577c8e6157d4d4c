package core

import (
	"slices"
	"testing"
)

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(4, 3)
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	if g.InBounds(4, 0) || g.InBounds(0, 3) || g.InBounds(-1, 0) || !g.InBounds(3, 2) {
		t.Fatal("InBounds disagrees with the dimensions")
	}
	if prev := g.Set(3, 2, 7); prev != 0 {
		t.Fatalf("previous value = %d, want 0", prev)
	}
	if g.At(3, 2) != 7 || g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("value not stored row-major")
	}

	cp := g.CopyTo(nil)
	if !slices.Equal(cp, g.Cells()) {
		t.Fatal("CopyTo mismatch")
	}
	cp[0] = 9
	if g.At(0, 0) == 9 {
		t.Fatal("CopyTo must not alias the grid")
	}

	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear left data behind")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
}
