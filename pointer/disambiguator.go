package pointer

import (
	"time"

	"memoa/engine"
)

const (
	// DoubleClickThreshold separates a click pair from two singles
	DoubleClickThreshold = 300 * time.Millisecond

	// ResolveDelay is the selected-feedback window before the detail
	// callback fires
	ResolveDelay = 300 * time.Millisecond

	// ClickFeedback is how long the single-click highlight lasts
	ClickFeedback = 200 * time.Millisecond
)

// Feedback is the visual state the host should apply to an item
type Feedback uint8

const (
	FeedbackNone Feedback = iota
	FeedbackClicked
	FeedbackSelected
)

// Disambiguator classifies timestamped activations per item as single
// or double clicks. State is owned by the instance, never
// package-level, so separate scenes cannot interfere and tests inject
// a manual clock. All timers are scheduler tasks cancelled by Close
//
// Guarantees: at most one open invocation per double-click gesture;
// single clicks never invoke open; while one resolution is in flight
// every activation repo-wide is dropped, not queued
type Disambiguator struct {
	clock engine.Clock
	sched *engine.Scheduler

	// onOpen receives the resolved double-click with its payload
	onOpen func(itemID string, data any)
	// onFeedback applies or clears transient item highlights
	onFeedback func(itemID string, f Feedback)

	lastClick map[string]time.Time
	resolving bool

	resolveTask   engine.TaskID
	feedbackTasks map[string]engine.TaskID
	closed        bool
}

// New creates a disambiguator. onOpen and onFeedback may be nil
func New(clock engine.Clock, sched *engine.Scheduler, onOpen func(string, any), onFeedback func(string, Feedback)) *Disambiguator {
	return &Disambiguator{
		clock:         clock,
		sched:         sched,
		onOpen:        onOpen,
		onFeedback:    onFeedback,
		lastClick:     make(map[string]time.Time),
		feedbackTasks: make(map[string]engine.TaskID),
	}
}

// Activate registers one click/tap on an item. Timing against the
// previous activation of the same item decides single vs double
func (d *Disambiguator) Activate(itemID string, data any) {
	if d.closed || d.resolving {
		// No queuing: gestures during a pending resolution are dropped
		return
	}

	now := d.clock.Now()
	last := d.lastClick[itemID]

	if !last.IsZero() && now.Sub(last) < DoubleClickThreshold {
		d.resolveDouble(itemID, data)
		return
	}

	d.singleClick(itemID, now)
}

func (d *Disambiguator) resolveDouble(itemID string, data any) {
	d.resolving = true

	// The first click of the pair armed a clicked-clear task; drop it
	// so it cannot wipe the selected highlight mid-resolution
	if prev, ok := d.feedbackTasks[itemID]; ok {
		d.sched.Cancel(prev)
		delete(d.feedbackTasks, itemID)
	}
	d.feedback(itemID, FeedbackSelected)

	d.resolveTask = d.sched.After(ResolveDelay, func() {
		d.resolveTask = 0
		d.resolving = false
		d.feedback(itemID, FeedbackNone)
		// Reset so a third rapid click starts a fresh pair instead of
		// resolving instantly
		d.lastClick[itemID] = time.Time{}

		if d.onOpen != nil {
			d.onOpen(itemID, data)
		}
	})
}

func (d *Disambiguator) singleClick(itemID string, now time.Time) {
	d.lastClick[itemID] = now
	d.feedback(itemID, FeedbackClicked)

	if prev, ok := d.feedbackTasks[itemID]; ok {
		d.sched.Cancel(prev)
	}
	d.feedbackTasks[itemID] = d.sched.After(ClickFeedback, func() {
		delete(d.feedbackTasks, itemID)
		d.feedback(itemID, FeedbackNone)
	})
}

func (d *Disambiguator) feedback(itemID string, f Feedback) {
	if d.onFeedback != nil {
		d.onFeedback(itemID, f)
	}
}

// Resolving reports whether a double-click resolution is in flight
func (d *Disambiguator) Resolving() bool { return d.resolving }

// Close cancels every pending timer. Activations after Close are
// ignored, so teardown during a resolution window never invokes the
// open callback against disposed state
func (d *Disambiguator) Close() {
	d.closed = true
	if d.resolveTask != 0 {
		d.sched.Cancel(d.resolveTask)
		d.resolveTask = 0
	}
	for id, task := range d.feedbackTasks {
		d.sched.Cancel(task)
		delete(d.feedbackTasks, id)
	}
	d.resolving = false
}
