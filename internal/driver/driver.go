// Package driver advances a simulation on a timer from its own goroutine.
package driver

import (
	"context"
	"time"
)

// MinInterval is used whenever the simulation reports a non-positive
// interval.
const MinInterval = time.Millisecond

// Clock is the part of a simulation the driver needs. Step must be safe to
// call concurrently with the simulation's other methods.
type Clock interface {
	Step()
	Running() bool
	Interval() time.Duration
}

// Driver owns a single timer. The interval is read from the simulation at the
// start of every wait, so changes apply on the next cycle without restarting
// anything, and a simulation switched to idle is not stepped again.
type Driver struct {
	sim    Clock
	onTick []func()
}

// New returns a driver for sim.
func New(sim Clock) *Driver {
	return &Driver{sim: sim}
}

// OnTick registers fn to run after every tick the driver performs. Register
// hooks before calling Run.
func (d *Driver) OnTick(fn func()) {
	if fn != nil {
		d.onTick = append(d.onTick, fn)
	}
}

// Run ticks the simulation until ctx is done. It returns nil on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	timer := time.NewTimer(d.wait())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if d.sim.Running() {
			d.sim.Step()
			for _, fn := range d.onTick {
				fn()
			}
		}
		timer.Reset(d.wait())
	}
}

func (d *Driver) wait() time.Duration {
	if iv := d.sim.Interval(); iv > 0 {
		return iv
	}
	return MinInterval
}
