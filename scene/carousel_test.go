package scene

import (
	"fmt"
	"math"
	"testing"
	"time"

	"memoa/content"
	"memoa/engine"
)

func carouselFixture(n int, onChange func(int, int)) (*Carousel, *engine.ManualClock, *engine.Scheduler) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	sched := engine.NewScheduler(clock)

	entries := make([]content.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, content.Entry{ID: fmt.Sprintf("m%d", i), Title: fmt.Sprintf("Media %d", i)})
	}
	return NewCarousel(sched, entries, onChange), clock, sched
}

// unlock advances past the transition window and fires the unlock task
func unlock(clock *engine.ManualClock, sched *engine.Scheduler) {
	clock.Advance(TransitionLock)
	sched.Drain()
}

func TestCarouselWraparound(t *testing.T) {
	for _, length := range []int{1, 2, 5, 8} {
		t.Run(fmt.Sprintf("L=%d", length), func(t *testing.T) {
			c, clock, sched := carouselFixture(length, nil)
			start := c.Index()

			for i := 0; i < length; i++ {
				c.Navigate(+1)
				unlock(clock, sched)
			}
			if c.Index() != start {
				t.Errorf("after %d steps index = %d, want %d", length, c.Index(), start)
			}
		})
	}
}

func TestCarouselTransitionLock(t *testing.T) {
	var changes []int
	c, clock, sched := carouselFixture(5, func(idx, _ int) { changes = append(changes, idx) })

	c.Navigate(+1)
	if !c.Transitioning() {
		t.Fatal("lock not taken after Navigate")
	}

	// Second call inside the window is dropped, not queued
	c.Navigate(+1)
	if len(changes) != 1 {
		t.Fatalf("listener notified %d times, want 1", len(changes))
	}
	if c.Index() != 4 {
		t.Errorf("index = %d, want 4 (one accepted step of -dir)", c.Index())
	}

	unlock(clock, sched)
	if c.Transitioning() {
		t.Fatal("lock not released after transition window")
	}

	c.Navigate(+1)
	if len(changes) != 2 {
		t.Errorf("navigation after unlock was dropped")
	}
}

func TestCarouselEmptySafety(t *testing.T) {
	c, _, _ := carouselFixture(0, nil)

	// No panic, index untouched, full-circle fallback step
	c.Navigate(+1)
	c.Navigate(-1)
	c.SetIndex(3)

	if c.Index() != 0 {
		t.Errorf("empty carousel index = %d, want 0", c.Index())
	}
	if got := c.angleStep(); got != 2*math.Pi {
		t.Errorf("empty angleStep = %v, want 2π", got)
	}
}

func TestCarouselRotationTarget(t *testing.T) {
	c, clock, sched := carouselFixture(4, nil)
	step := 2 * math.Pi / 4

	c.Navigate(+1)
	if math.Abs(c.TargetRotation()-step) > 1e-12 {
		t.Errorf("targetRotation = %v, want %v", c.TargetRotation(), step)
	}
	unlock(clock, sched)
	c.Navigate(-1)
	if math.Abs(c.TargetRotation()) > 1e-12 {
		t.Errorf("targetRotation after back-step = %v, want 0", c.TargetRotation())
	}
}

func TestCarouselRotationEasesTowardTarget(t *testing.T) {
	c, _, _ := carouselFixture(4, nil)
	c.Navigate(+1)

	target := c.TargetRotation()
	prevGap := math.Abs(target - c.Rotation())
	for i := 0; i < 200; i++ {
		c.Update(16 * time.Millisecond)
		gap := math.Abs(target - c.Rotation())
		if gap > prevGap+1e-12 {
			t.Fatalf("rotation diverged at frame %d", i)
		}
		prevGap = gap
	}
	if prevGap > 1e-3 {
		t.Errorf("rotation did not converge: gap %v", prevGap)
	}
}

func TestCarouselSetIndexBypassesLock(t *testing.T) {
	c, _, _ := carouselFixture(6, nil)

	c.Navigate(+1) // take the lock
	before := c.TargetRotation()

	c.SetIndex(3)
	if c.Index() != 3 {
		t.Errorf("SetIndex ignored while locked: index %d", c.Index())
	}
	if c.TargetRotation() == before {
		t.Error("SetIndex did not adjust targetRotation")
	}
	if !c.Transitioning() {
		t.Error("SetIndex should not have released the navigate lock")
	}
}

func TestCarouselSetIndexShortestPath(t *testing.T) {
	c, _, _ := carouselFixture(8, nil)
	step := 2 * math.Pi / 8

	// 0 -> 7 should rotate one step backward, not seven forward
	c.SetIndex(7)
	if math.Abs(c.TargetRotation()-step) > 1e-12 {
		t.Errorf("targetRotation = %v, want %v (single backward step)", c.TargetRotation(), step)
	}

	// Same index is a no-op
	before := c.TargetRotation()
	c.SetIndex(7)
	if c.TargetRotation() != before {
		t.Error("SetIndex to the current index changed the target")
	}
}

func TestCarouselItemScaleContrast(t *testing.T) {
	c, clock, sched := carouselFixture(3, nil)

	if c.ItemScale(0) != ActiveScale {
		t.Errorf("active scale = %v, want %v", c.ItemScale(0), ActiveScale)
	}
	if c.ItemScale(1) != InactiveScale || c.ItemScale(2) != InactiveScale {
		t.Error("inactive items must share the small scale")
	}

	c.Navigate(-1)
	unlock(clock, sched)
	if c.ItemScale(c.Index()) != ActiveScale {
		t.Error("scale did not follow the active index")
	}
}

func TestCarouselCloseCancelsUnlockTask(t *testing.T) {
	c, clock, sched := carouselFixture(3, nil)

	c.Navigate(+1)
	c.Close()

	if sched.Pending() != 0 {
		t.Errorf("pending tasks after Close = %d, want 0", sched.Pending())
	}
	// The unlock callback must not run against the closed carousel
	clock.Advance(10 * TransitionLock)
	if n := sched.Drain(); n != 0 {
		t.Errorf("drained %d tasks after Close, want 0", n)
	}
}
