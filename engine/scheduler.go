package engine

import (
	"sort"
	"sync"
	"time"
)

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

type task struct {
	id       TaskID
	deadline time.Time
	fn       func()
}

// Scheduler holds deadline tasks drained cooperatively from the frame
// loop. It replaces fire-and-forget timers: every pending task can be
// cancelled, so component teardown never leaves a callback firing
// against disposed state
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	nextID TaskID
	tasks  map[TaskID]*task
}

// NewScheduler creates a scheduler on the given time source
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:  clock,
		nextID: 1,
		tasks:  make(map[TaskID]*task),
	}
}

// After schedules fn to run once d has elapsed, at the next Drain
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.tasks[id] = &task{
		id:       id,
		deadline: s.clock.Now().Add(d),
		fn:       fn,
	}
	return id
}

// Cancel removes a pending task. Returns false if the task already
// ran or was cancelled
func (s *Scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// CancelAll drops every pending task
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[TaskID]*task)
}

// Pending returns the number of tasks not yet due or cancelled
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Drain runs every task whose deadline has passed, in deadline order,
// and returns how many ran. Task callbacks execute outside the
// scheduler lock so they may schedule or cancel further tasks
func (s *Scheduler) Drain() int {
	now := s.clock.Now()

	s.mu.Lock()
	var due []*task
	for _, t := range s.tasks {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	for _, t := range due {
		delete(s.tasks, t.id)
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].id < due[j].id
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	for _, t := range due {
		t.fn()
	}
	return len(due)
}
