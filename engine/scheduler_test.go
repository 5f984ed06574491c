package engine

import (
	"testing"
	"time"
)

func testClock() *ManualClock {
	return NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestSchedulerRunsDueTasksOnly(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	var ranA, ranB bool
	s.After(100*time.Millisecond, func() { ranA = true })
	s.After(500*time.Millisecond, func() { ranB = true })

	clock.Advance(100 * time.Millisecond)
	if n := s.Drain(); n != 1 {
		t.Fatalf("Drain ran %d tasks, want 1", n)
	}
	if !ranA || ranB {
		t.Errorf("ranA=%v ranB=%v, want true/false", ranA, ranB)
	}

	clock.Advance(400 * time.Millisecond)
	if n := s.Drain(); n != 1 {
		t.Fatalf("second Drain ran %d tasks, want 1", n)
	}
	if !ranB {
		t.Error("task B never ran")
	}
}

func TestSchedulerDrainOrder(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "early") })
	s.After(200*time.Millisecond, func() { order = append(order, "mid") })

	clock.Advance(time.Second)
	s.Drain()

	want := []string{"early", "mid", "late"}
	if len(order) != len(want) {
		t.Fatalf("ran %d tasks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	ran := false
	id := s.After(50*time.Millisecond, func() { ran = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for a pending task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}

	clock.Advance(time.Second)
	s.Drain()
	if ran {
		t.Error("cancelled task still ran")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	ran := 0
	for i := 0; i < 5; i++ {
		s.After(time.Duration(i)*time.Millisecond, func() { ran++ })
	}
	s.CancelAll()

	clock.Advance(time.Second)
	if n := s.Drain(); n != 0 || ran != 0 {
		t.Errorf("Drain after CancelAll ran %d tasks (counter %d), want 0", n, ran)
	}
}

func TestSchedulerTaskMayScheduleMore(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	second := false
	s.After(10*time.Millisecond, func() {
		s.After(10*time.Millisecond, func() { second = true })
	})

	clock.Advance(20 * time.Millisecond)
	s.Drain()
	if second {
		t.Fatal("chained task ran in the same drain it was scheduled")
	}
	clock.Advance(10 * time.Millisecond)
	s.Drain()
	if !second {
		t.Error("chained task never ran")
	}
}

func TestLoopStepRunsSystemsByPriority(t *testing.T) {
	clock := testClock()
	s := NewScheduler(clock)

	var order []int
	loop := NewLoop(clock, s, 50*time.Millisecond, nil)
	loop.AddSystem(fnSystem{p: 10, fn: func() { order = append(order, 10) }})
	loop.AddSystem(fnSystem{p: 1, fn: func() { order = append(order, 1) }})
	loop.AddSystem(fnSystem{p: 5, fn: func() { order = append(order, 5) }})

	loop.Step(50 * time.Millisecond)

	want := []int{1, 5, 10}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("system order %v, want %v", order, want)
		}
	}
	if loop.TickCount() != 1 {
		t.Errorf("TickCount = %d, want 1", loop.TickCount())
	}
}

type fnSystem struct {
	p  int
	fn func()
}

func (f fnSystem) Update(time.Duration) { f.fn() }
func (f fnSystem) Priority() int        { return f.p }
