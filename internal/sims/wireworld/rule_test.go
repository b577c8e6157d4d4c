package wireworld

import "testing"

func TestHeadAndTailDecayUnconditionally(t *testing.T) {
	p := Position{Row: 2, Column: 2}
	snap := Snapshot{
		{1, 1}: Head, {1, 2}: Head, {1, 3}: Head,
	}
	if got := NextState(Entry{Pos: p, State: Head}, snap); got != Tail {
		t.Fatalf("head -> %v, want tail", got)
	}
	if got := NextState(Entry{Pos: p, State: Tail}, snap); got != Conductor {
		t.Fatalf("tail -> %v, want conductor", got)
	}
}

func TestConductorHeadCountBoundary(t *testing.T) {
	centre := Position{Row: 3, Column: 3}
	neighbors := []Position{{2, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 4}}
	want := map[int]State{0: Conductor, 1: Head, 2: Head, 3: Conductor, 4: Conductor, 5: Conductor}

	for heads := 0; heads <= len(neighbors); heads++ {
		snap := Snapshot{centre: Conductor}
		for i, p := range neighbors {
			if i < heads {
				snap[p] = Head
			} else {
				snap[p] = Conductor
			}
		}
		got := NextState(Entry{Pos: centre, State: Conductor, Edge: EdgeNone}, snap)
		if got != want[heads] {
			t.Fatalf("conductor with %d head neighbors -> %v, want %v", heads, got, want[heads])
		}
	}
}

func TestOnlyHeadsCountAsNeighbors(t *testing.T) {
	centre := Position{Row: 3, Column: 3}
	snap := Snapshot{
		centre: Conductor,
		{2, 2}: Tail, {2, 3}: Tail, {2, 4}: Conductor,
		{3, 2}: Conductor, {4, 3}: Tail,
	}
	if got := NextState(Entry{Pos: centre, State: Conductor}, snap); got != Conductor {
		t.Fatalf("conductor among tails/conductors -> %v, want conductor", got)
	}
}

func TestHeadsOutsideChebyshevRangeIgnored(t *testing.T) {
	centre := Position{Row: 4, Column: 4}
	snap := Snapshot{
		centre: Conductor,
		{2, 4}: Head, {6, 6}: Head, {4, 2}: Head,
	}
	if got := NextState(Entry{Pos: centre, State: Conductor}, snap); got != Conductor {
		t.Fatalf("distant heads must not count, got %v", got)
	}
}

func TestCornerCountsItsThreeNeighbors(t *testing.T) {
	corner := Position{Row: 1, Column: 1}
	snap := Snapshot{corner: Conductor, {1, 2}: Head, {2, 1}: Head, {2, 2}: Head}
	if got := NextState(Entry{Pos: corner, State: Conductor, Edge: EdgeTopLeft}, snap); got != Conductor {
		t.Fatalf("corner with 3 heads -> %v, want conductor", got)
	}
	delete(snap, Position{Row: 2, Column: 2})
	if got := NextState(Entry{Pos: corner, State: Conductor, Edge: EdgeTopLeft}, snap); got != Head {
		t.Fatalf("corner with 2 heads -> %v, want head", got)
	}
}
