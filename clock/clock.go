// Package clock drives simulation ticks at a fixed real-time period.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// State is the scheduler state.
type State uint8

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Clock calls a tick function once per period while running.
//
// At most one tick executes at a time. A tick that would start while
// another is still executing is dropped, never queued.
type Clock struct {
	period time.Duration
	fn     func()

	mu    sync.Mutex
	state State
	stop  chan struct{}
	done  chan struct{}

	busy    atomic.Bool
	ticks   atomic.Int64
	skipped atomic.Int64
}

// New creates a stopped clock. fn must not call Stop.
func New(period time.Duration, fn func()) *Clock {
	return &Clock{period: period, fn: fn}
}

// Start begins ticking. It is a no-op if the clock is already running.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	c.state = Running
	go c.run(c.stop, c.done)
}

// Stop cancels the schedule and waits for the scheduler goroutine to
// exit, so no tick runs after Stop returns. Start resumes ticking.
func (c *Clock) Stop() {
	c.mu.Lock()
	if c.state == Stopped {
		c.mu.Unlock()
		return
	}
	close(c.stop)
	done := c.done
	c.state = Stopped
	c.mu.Unlock()

	<-done
}

// State returns the current scheduler state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether the clock is scheduled.
func (c *Clock) Running() bool {
	return c.State() == Running
}

// Tick runs the tick function now unless a tick is already executing,
// in which case it returns false without doing anything.
func (c *Clock) Tick() bool {
	if !c.busy.CompareAndSwap(false, true) {
		c.skipped.Add(1)
		return false
	}
	defer c.busy.Store(false)

	c.fn()
	c.ticks.Add(1)
	return true
}

// Ticks returns how many ticks have completed.
func (c *Clock) Ticks() int64 {
	return c.ticks.Load()
}

// Skipped returns how many ticks were dropped by the guard.
func (c *Clock) Skipped() int64 {
	return c.skipped.Load()
}

func (c *Clock) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Tick()
		case <-stop:
			return
		}
	}
}
