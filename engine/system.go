package engine

import "time"

// System is a per-tick unit of scene logic
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
