package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now

	if fs.ShouldStep() {
		t.Fatal("first call only primes the clock")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after 110ms")
	}
	if fs.ShouldStep() {
		t.Fatal("fired twice for one interval")
	}
}

func TestFixedStepDoesNotBurst(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("a long stall queued %d ticks", fired)
	}
}

func TestFixedStepSetInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second {
		t.Fatalf("non-positive interval should fall back to 1s, got %v", fs.Interval())
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}
