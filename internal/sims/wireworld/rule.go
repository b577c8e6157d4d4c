package wireworld

// NextState applies the Wireworld rule to one active entry against the
// pre-tick snapshot. Empty cells never reach this function.
func NextState(e Entry, snap Snapshot) State {
	switch e.State {
	case Head:
		return Tail
	case Tail:
		return Conductor
	case Conductor:
		if n := snap.HeadsAround(e.Pos, e.Edge); n == 1 || n == 2 {
			return Head
		}
		return Conductor
	default:
		return e.State
	}
}
