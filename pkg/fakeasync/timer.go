package fakeasync

import (
	"time"

	"github.com/go-drift/fakeasync/pkg/async"
)

// fakeTimer is a single pending unit of delayed work in the engine.
//
// One-shot and periodic timers carry different callback shapes, so exactly
// one of run and runPeriodic is set, selected by the periodic flag at fire
// time. A periodic callback receives its own handle so it can cancel from
// within a firing.
type fakeTimer struct {
	engine *FakeAsync

	// seq is the creation sequence number. Timers sharing a deadline fire
	// in creation order, and seq is the tie-break that guarantees it.
	seq uint64

	// nextFire is the virtual time of the next firing. For periodic
	// timers it advances by period after each firing, keeping a fixed
	// cadence from creation time regardless of when the callback ran.
	nextFire time.Duration
	period   time.Duration

	periodic    bool
	run         func()
	runPeriodic func(async.TimerHandle)

	// active mirrors registry membership: a timer is active exactly while
	// it is in the engine's heap. The heap owns both transitions.
	active    bool
	heapIndex int
}

// Cancel removes the timer from the engine. Idempotent; observable
// immediately by IsActive and by the firing loop.
func (t *fakeTimer) Cancel() {
	t.engine.timers.remove(t)
}

// IsActive reports whether the timer is still pending.
func (t *fakeTimer) IsActive() bool {
	return t.active
}

// Tick always fails: the engine does not track fire counts.
func (t *fakeTimer) Tick() (int, error) {
	return 0, &Error{Op: "fakeasync.Tick", Kind: KindUnimplemented, Err: async.ErrTickUnsupported}
}
