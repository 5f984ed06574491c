package settings

import (
	"sync"
	"time"

	"memoa/engine"
)

// SaveDebounce is how long edits must stay quiet before a save fires
const SaveDebounce = 800 * time.Millisecond

// Saver persists a settings value
type Saver interface {
	Save(Settings) error
}

// Autosaver debounces settings writes: rapid slider edits collapse
// into one save once input goes quiet. The pending save is a
// cancellable scheduler task, so Close during the debounce window
// never fires a write against a torn-down store
type Autosaver struct {
	sched *engine.Scheduler
	saver Saver

	mu      sync.Mutex
	current Settings
	dirty   bool
	pending engine.TaskID
	closed  bool
	onError func(error)
}

// NewAutosaver creates an autosaver on the given scheduler. onError
// may be nil; save failures are then dropped silently
func NewAutosaver(sched *engine.Scheduler, saver Saver, onError func(error)) *Autosaver {
	return &Autosaver{
		sched:   sched,
		saver:   saver,
		onError: onError,
	}
}

// Update records a new settings value and (re)arms the debounce timer
func (a *Autosaver) Update(s Settings) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	a.current = s
	a.dirty = true

	if a.pending != 0 {
		a.sched.Cancel(a.pending)
	}
	a.pending = a.sched.After(SaveDebounce, a.flushTask)
}

func (a *Autosaver) flushTask() {
	a.mu.Lock()
	if a.closed || !a.dirty {
		a.pending = 0
		a.mu.Unlock()
		return
	}
	s := a.current
	a.dirty = false
	a.pending = 0
	a.mu.Unlock()

	if err := a.saver.Save(s); err != nil && a.onError != nil {
		a.onError(err)
	}
}

// Flush saves immediately if edits are pending
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.pending != 0 {
		a.sched.Cancel(a.pending)
		a.pending = 0
	}
	if !a.dirty || a.closed {
		a.mu.Unlock()
		return
	}
	s := a.current
	a.dirty = false
	a.mu.Unlock()

	if err := a.saver.Save(s); err != nil && a.onError != nil {
		a.onError(err)
	}
}

// Close flushes pending edits and cancels the debounce task. Further
// Updates are ignored
func (a *Autosaver) Close() {
	a.Flush()

	a.mu.Lock()
	a.closed = true
	if a.pending != 0 {
		a.sched.Cancel(a.pending)
		a.pending = 0
	}
	a.mu.Unlock()
}
