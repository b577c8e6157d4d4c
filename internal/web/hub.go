package web

import "sync"

// Hub fans frames out to subscribers. Each subscriber holds at most one
// pending frame; a slow reader only ever sees the newest one.
type Hub struct {
	mu     sync.Mutex
	latest Frame
	has    bool
	subs   map[chan Frame]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Frame]struct{})}
}

// Publish records f as the latest frame and offers it to every subscriber.
func (h *Hub) Publish(f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest, h.has = f, true
	for ch := range h.subs {
		offer(ch, f)
	}
}

// Latest returns the most recently published frame.
func (h *Hub) Latest() (Frame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.has
}

// Subscribers reports the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Subscribe returns a channel that receives published frames until done is
// closed, at which point the channel is closed. The latest frame, if any, is
// delivered first.
func (h *Hub) Subscribe(done <-chan struct{}) <-chan Frame {
	ch := make(chan Frame, 1)
	h.mu.Lock()
	if h.has {
		ch <- h.latest
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-done
		h.mu.Lock()
		delete(h.subs, ch)
		close(ch)
		h.mu.Unlock()
	}()
	return ch
}

// offer replaces any undelivered frame in ch with f.
func offer(ch chan Frame, f Frame) {
	select {
	case ch <- f:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- f:
	default:
	}
}
