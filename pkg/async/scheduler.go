package async

import (
	"errors"
	"sync"
	"time"
)

// ErrTickUnsupported is returned by TimerHandle.Tick when the scheduler does
// not track fire counts. Both the real scheduler and the fakeasync engine
// return it, so code under test cannot come to depend on a count that only
// one of the two providers could supply.
var ErrTickUnsupported = errors.New("timer tick count is not supported")

// TimerHandle controls a pending timer created through a Scheduler.
type TimerHandle interface {
	// Cancel stops the timer. It is idempotent; canceling an already
	// fired or canceled timer is a no-op.
	Cancel()
	// IsActive reports whether the timer is still pending. A one-shot
	// timer becomes inactive when it fires or is canceled; a periodic
	// timer stays active until canceled.
	IsActive() bool
	// Tick returns the number of times the timer has fired. No scheduler
	// in this module tracks fire counts; it always returns
	// ErrTickUnsupported rather than a meaningless value.
	Tick() (int, error)
}

// Scheduler creates deferred work. It is the three-method boundary an async
// runtime calls instead of its native timer and microtask primitives, so
// that a test can capture everything scheduled through it.
type Scheduler interface {
	// CreateTimer schedules callback to run once after delay.
	// A negative delay is clamped to zero.
	CreateTimer(delay time.Duration, callback func()) TimerHandle
	// CreatePeriodicTimer schedules callback to run every period until
	// the returned handle is canceled. The callback receives the handle
	// so it can cancel from within its own firing.
	CreatePeriodicTimer(period time.Duration, callback func(TimerHandle)) TimerHandle
	// ScheduleMicrotask schedules callback to run as soon as possible,
	// before any pending timer work.
	ScheduleMicrotask(callback func())
}

// scheduler is the package-level provider, replaceable for testing.
var (
	schedulerMu sync.Mutex
	scheduler   Scheduler = &realScheduler{}
)

// SetScheduler replaces the current scheduler. Returns the previous
// scheduler so callers can restore it during cleanup.
func SetScheduler(s Scheduler) Scheduler {
	schedulerMu.Lock()
	defer schedulerMu.Unlock()
	prev := scheduler
	scheduler = s
	return prev
}

func currentScheduler() Scheduler {
	schedulerMu.Lock()
	defer schedulerMu.Unlock()
	return scheduler
}

// CreateTimer schedules callback to run once after delay on the current
// scheduler.
func CreateTimer(delay time.Duration, callback func()) TimerHandle {
	return currentScheduler().CreateTimer(delay, callback)
}

// CreatePeriodicTimer schedules callback to run every period on the current
// scheduler until canceled.
func CreatePeriodicTimer(period time.Duration, callback func(TimerHandle)) TimerHandle {
	return currentScheduler().CreatePeriodicTimer(period, callback)
}

// ScheduleMicrotask schedules callback on the current scheduler to run
// before any pending timer work.
func ScheduleMicrotask(callback func()) {
	currentScheduler().ScheduleMicrotask(callback)
}
