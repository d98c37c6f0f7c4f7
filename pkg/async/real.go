package async

import (
	"sync"
	"time"
)

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function the real scheduler uses to run
// microtasks on the host runtime's main thread. This should be called once
// by the runtime during initialization. When no dispatch function is
// registered, microtasks run on their own goroutine.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// realScheduler drives deferred work with OS timers. It is the default
// scheduler outside of tests.
type realScheduler struct{}

func (realScheduler) CreateTimer(delay time.Duration, callback func()) TimerHandle {
	if delay < 0 {
		delay = 0
	}
	t := &realTimer{active: true}
	timer := time.AfterFunc(delay, func() {
		t.mu.Lock()
		if !t.active {
			t.mu.Unlock()
			return
		}
		t.active = false
		t.mu.Unlock()
		callback()
	})
	t.stop = func() { timer.Stop() }
	return t
}

func (realScheduler) CreatePeriodicTimer(period time.Duration, callback func(TimerHandle)) TimerHandle {
	if period <= 0 {
		// time.NewTicker rejects non-positive periods.
		period = time.Nanosecond
	}
	t := &realTimer{active: true}
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	t.stop = func() {
		ticker.Stop()
		close(done)
	}
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				callback(t)
			}
		}
	}()
	return t
}

func (realScheduler) ScheduleMicrotask(callback func()) {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn != nil {
		fn(callback)
		return
	}
	go callback()
}

// realTimer is the handle for timers created by realScheduler.
// All methods are safe for concurrent use.
type realTimer struct {
	mu     sync.Mutex
	active bool
	stop   func()
}

func (t *realTimer) Cancel() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	stop := t.stop
	t.mu.Unlock()
	stop()
}

func (t *realTimer) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *realTimer) Tick() (int, error) {
	return 0, ErrTickUnsupported
}
