package async

import (
	"testing"
	"time"
)

// recordingScheduler captures scheduling calls for assertions.
type recordingScheduler struct {
	timers     []time.Duration
	periodics  []time.Duration
	microtasks int
}

func (r *recordingScheduler) CreateTimer(delay time.Duration, callback func()) TimerHandle {
	r.timers = append(r.timers, delay)
	return &recordedHandle{active: true}
}

func (r *recordingScheduler) CreatePeriodicTimer(period time.Duration, callback func(TimerHandle)) TimerHandle {
	r.periodics = append(r.periodics, period)
	return &recordedHandle{active: true}
}

func (r *recordingScheduler) ScheduleMicrotask(callback func()) {
	r.microtasks++
}

type recordedHandle struct {
	active bool
}

func (h *recordedHandle) Cancel()            { h.active = false }
func (h *recordedHandle) IsActive() bool     { return h.active }
func (h *recordedHandle) Tick() (int, error) { return 0, ErrTickUnsupported }

func TestSetScheduler_SwapAndRestore(t *testing.T) {
	rec := &recordingScheduler{}
	prev := SetScheduler(rec)
	defer SetScheduler(prev)

	CreateTimer(time.Second, func() {})
	CreatePeriodicTimer(2*time.Second, func(TimerHandle) {})
	ScheduleMicrotask(func() {})

	if len(rec.timers) != 1 || rec.timers[0] != time.Second {
		t.Errorf("front func did not delegate CreateTimer: %v", rec.timers)
	}
	if len(rec.periodics) != 1 || rec.periodics[0] != 2*time.Second {
		t.Errorf("front func did not delegate CreatePeriodicTimer: %v", rec.periodics)
	}
	if rec.microtasks != 1 {
		t.Errorf("front func did not delegate ScheduleMicrotask: %d", rec.microtasks)
	}
}

func TestSetScheduler_ReturnsPrevious(t *testing.T) {
	first := &recordingScheduler{}
	second := &recordingScheduler{}

	original := SetScheduler(first)
	defer SetScheduler(original)

	if got := SetScheduler(second); got != Scheduler(first) {
		t.Error("SetScheduler did not return the scheduler it replaced")
	}

	ScheduleMicrotask(func() {})
	if second.microtasks != 1 || first.microtasks != 0 {
		t.Error("replaced scheduler still receiving work")
	}
}
