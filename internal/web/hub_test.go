package web

import "testing"

func TestHubLatestWins(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	defer close(done)

	frames := h.Subscribe(done)
	for i := uint64(1); i <= 3; i++ {
		h.Publish(Frame{Tick: i})
	}
	if f := <-frames; f.Tick != 3 {
		t.Fatalf("slow subscriber got tick %d, want 3", f.Tick)
	}
	select {
	case f := <-frames:
		t.Fatalf("unexpected extra frame %+v", f)
	default:
	}
}

func TestHubReplaysLatest(t *testing.T) {
	h := NewHub()
	if _, ok := h.Latest(); ok {
		t.Fatalf("empty hub reported a frame")
	}
	h.Publish(Frame{Tick: 7})

	done := make(chan struct{})
	frames := h.Subscribe(done)
	if f := <-frames; f.Tick != 7 {
		t.Fatalf("late subscriber got tick %d, want 7", f.Tick)
	}

	close(done)
	if _, open := <-frames; open {
		t.Fatalf("channel still open after done")
	}
	if n := h.Subscribers(); n != 0 {
		t.Fatalf("subscribers = %d after done, want 0", n)
	}
}
