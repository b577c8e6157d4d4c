package wireworld

// Entry is one tracked non-Empty cell.
type Entry struct {
	Pos   Position
	State State
	Edge  EdgeType
}

// ActiveSet holds one entry per non-Empty position. Iteration follows
// insertion order, except that removing an entry moves the last one into its
// slot.
type ActiveSet struct {
	entries []Entry
	index   map[Position]int
}

// NewActiveSet returns an empty set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{index: make(map[Position]int)}
}

// Len returns the number of entries.
func (a *ActiveSet) Len() int { return len(a.entries) }

// Get returns the entry at p.
func (a *ActiveSet) Get(p Position) (Entry, bool) {
	i, ok := a.index[p]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Insert adds e, replacing any entry already stored at e.Pos.
func (a *ActiveSet) Insert(e Entry) {
	a.Remove(e.Pos)
	a.index[e.Pos] = len(a.entries)
	a.entries = append(a.entries, e)
}

// Remove deletes the entry at p and reports whether one existed.
func (a *ActiveSet) Remove(p Position) bool {
	i, ok := a.index[p]
	if !ok {
		return false
	}
	last := len(a.entries) - 1
	if i != last {
		a.entries[i] = a.entries[last]
		a.index[a.entries[i].Pos] = i
	}
	a.entries = a.entries[:last]
	delete(a.index, p)
	return true
}

// Each calls fn for every entry in iteration order.
func (a *ActiveSet) Each(fn func(Entry)) {
	for _, e := range a.entries {
		fn(e)
	}
}

// Snapshot copies the state of every entry.
func (a *ActiveSet) Snapshot() Snapshot {
	snap := make(Snapshot, len(a.entries))
	for _, e := range a.entries {
		snap[e.Pos] = e.State
	}
	return snap
}

// Clear drops every entry.
func (a *ActiveSet) Clear() {
	a.entries = a.entries[:0]
	clear(a.index)
}

// Snapshot is a read-only copy of the active set as it stood at tick start.
type Snapshot map[Position]State

// HeadsAround counts Head entries at Chebyshev distance 1 from p, probing
// only the offsets that edge allows.
func (s Snapshot) HeadsAround(p Position, edge EdgeType) int {
	heads := 0
	for _, off := range edge.Offsets() {
		if s[p.Add(off)] == Head {
			heads++
		}
	}
	return heads
}
