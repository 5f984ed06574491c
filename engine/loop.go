package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives scene logic on a fixed tick: drain due scheduler tasks,
// update systems in priority order, then invoke the frame callback.
// All mutation happens on the loop goroutine, so systems never race
type Loop struct {
	clock        Clock
	scheduler    *Scheduler
	tickInterval time.Duration

	mu      sync.Mutex
	systems []System

	// onFrame renders the current state; nil is allowed in tests
	onFrame func()

	tickCount atomic.Uint64
	running   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewLoop creates a loop with the given tick interval
func NewLoop(clock Clock, scheduler *Scheduler, tickInterval time.Duration, onFrame func()) *Loop {
	return &Loop{
		clock:        clock,
		scheduler:    scheduler,
		tickInterval: tickInterval,
		onFrame:      onFrame,
		stopChan:     make(chan struct{}),
	}
}

// AddSystem registers a system, keeping priority order (lower first)
func (l *Loop) AddSystem(s System) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.systems = append(l.systems, s)
	sort.SliceStable(l.systems, func(i, j int) bool {
		return l.systems[i].Priority() < l.systems[j].Priority()
	})
}

// TickCount returns the number of completed ticks
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Step executes exactly one tick. Exposed for tests and for hosts
// that own their own timing
func (l *Loop) Step(dt time.Duration) {
	l.scheduler.Drain()

	l.mu.Lock()
	systems := make([]System, len(l.systems))
	copy(systems, l.systems)
	l.mu.Unlock()

	for _, s := range systems {
		s.Update(dt)
	}

	if l.onFrame != nil {
		l.onFrame()
	}
	l.tickCount.Add(1)
}

// Start begins the tick loop on its own goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go l.run()
	}
}

// Stop halts the loop and waits for the current tick to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

func (l *Loop) run() {
	defer l.wg.Done()

	deadline := l.clock.Now().Add(l.tickInterval)
	last := l.clock.Now()

	timer := time.NewTimer(l.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		now := l.clock.Now()
		l.Step(now.Sub(last))
		last = now

		deadline = deadline.Add(l.tickInterval)
		// Cap catch-up: if the loop fell far behind, restart the
		// schedule from now instead of bursting ticks
		if now.Sub(deadline) > 2*l.tickInterval {
			deadline = now.Add(l.tickInterval)
		}

		sleep := deadline.Sub(l.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
