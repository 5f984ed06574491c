package scene

import (
	"time"

	"memoa/content"
	"memoa/engine"
	"memoa/vmath"
)

const (
	// TransitionLock is the animation window during which further
	// navigation input is ignored
	TransitionLock = 300 * time.Millisecond

	// rotationLerpFactor eases the camera toward targetRotation each
	// frame (exponential ease, not an instant snap)
	rotationLerpFactor = 0.05

	// ActiveScale / InactiveScale is a binary size contrast for the
	// current item, not a continuous falloff
	ActiveScale   = 1.2
	InactiveScale = 0.9
)

// Carousel pages through one category's media on a fixed-radius ring
// facing the center. All methods run on the frame loop goroutine;
// the transition lock serializes navigation, not a mutex
type Carousel struct {
	sched *engine.Scheduler

	items          []content.Entry
	index          int
	rotation       float64
	targetRotation float64
	transitioning  bool
	lockTask       engine.TaskID

	// onIndexChange is notified after every accepted navigation with
	// (newIndex, direction)
	onIndexChange func(index, direction int)
}

// NewCarousel creates a carousel over the given entries. An empty
// entry list is a valid, inert carousel: nothing renders and
// navigation is a no-op
func NewCarousel(sched *engine.Scheduler, entries []content.Entry, onIndexChange func(index, direction int)) *Carousel {
	return &Carousel{
		sched:         sched,
		items:         entries,
		onIndexChange: onIndexChange,
	}
}

// angleStep falls back to a full circle when empty to avoid a zero
// divide; navigation is already a no-op in that state
func (c *Carousel) angleStep() float64 {
	return vmath.TwoPi / float64(max(len(c.items), 1))
}

// Navigate advances one step in the given direction (+1 or -1).
// Ignored while a transition is in flight or the carousel is empty
func (c *Carousel) Navigate(direction int) {
	if c.transitioning || len(c.items) == 0 {
		return
	}
	if direction != 1 && direction != -1 {
		return
	}

	c.targetRotation += float64(direction) * c.angleStep()
	c.index = (c.index - direction + len(c.items)) % len(c.items)

	c.transitioning = true
	c.lockTask = c.sched.After(TransitionLock, func() {
		c.transitioning = false
		c.lockTask = 0
	})

	if c.onIndexChange != nil {
		c.onIndexChange(c.index, direction)
	}
}

// SetIndex drives the index externally (scrub slider). The shortest
// angular delta between the old and new index is added to the
// rotation target directly, bypassing the single-step path and the
// transition lock
func (c *Carousel) SetIndex(i int) {
	if len(c.items) == 0 {
		return
	}
	i = ((i % len(c.items)) + len(c.items)) % len(c.items)
	if i == c.index {
		return
	}

	step := c.angleStep()
	oldAngle := -float64(c.index) * step
	newAngle := -float64(i) * step
	c.targetRotation += vmath.ShortestAngleDelta(oldAngle, newAngle)
	c.index = i
}

// Update interpolates the camera rotation toward its target
func (c *Carousel) Update(time.Duration) {
	c.rotation += (c.targetRotation - c.rotation) * rotationLerpFactor
}

// Priority orders the carousel after layout, before rendering
func (c *Carousel) Priority() int { return 20 }

// Index returns the active item index, always in [0, len) when
// non-empty
func (c *Carousel) Index() int { return c.index }

// Rotation returns the current interpolated camera rotation
func (c *Carousel) Rotation() float64 { return c.rotation }

// TargetRotation returns the rotation the camera is easing toward
func (c *Carousel) TargetRotation() float64 { return c.targetRotation }

// Transitioning reports whether the navigation lock is held
func (c *Carousel) Transitioning() bool { return c.transitioning }

// Items returns the carousel's entries
func (c *Carousel) Items() []content.Entry { return c.items }

// ItemAngle returns the fixed ring angle of item i
func (c *Carousel) ItemAngle(i int) float64 {
	return float64(i) * c.angleStep()
}

// ItemScale returns the render scale for item i: the active index
// draws larger than the rest
func (c *Carousel) ItemScale(i int) float64 {
	if i == c.index {
		return ActiveScale
	}
	return InactiveScale
}

// Close cancels the pending transition unlock so teardown during the
// animation window cannot touch a dead carousel
func (c *Carousel) Close() {
	if c.lockTask != 0 {
		c.sched.Cancel(c.lockTask)
		c.lockTask = 0
	}
	c.transitioning = false
}
