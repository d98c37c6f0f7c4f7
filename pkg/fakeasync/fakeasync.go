package fakeasync

import (
	"time"

	"github.com/go-drift/fakeasync/pkg/async"
)

// DefaultFlushTimeout is the virtual-time budget FlushTimers uses when
// FlushOptions.Timeout is zero.
const DefaultFlushTimeout = time.Hour

// FlushOptions configures [FakeAsync.FlushTimers]. The zero value means:
// flush periodic timers too, with a DefaultFlushTimeout budget.
type FlushOptions struct {
	// Timeout bounds how far virtual time may advance during the flush.
	// A flush that would need to advance further fails with a KindTimeout
	// error instead of spinning on a runaway periodic timer.
	// Zero means DefaultFlushTimeout.
	Timeout time.Duration

	// SkipPeriodic stops the flush once only periodic timers remain and
	// each has already had its chance to fire at the clock's final value.
	// When false (the default), periodic timers keep firing until the
	// timeout intervenes or they are canceled.
	SkipPeriodic bool
}

// FakeAsync is a virtual-time scheduling engine. Work scheduled through it
// — one-shot timers, periodic timers, microtasks — is captured instead of
// run against real time, and fires only when the test advances the virtual
// clock with Elapse, FlushMicrotasks, or FlushTimers.
//
// The engine is a single-threaded, synchronous simulation: every callback
// runs on the caller's goroutine inside the advancing call, and the only
// reentrancy permitted is ElapseBlocking from within a running callback.
// FakeAsync is not safe for concurrent use.
type FakeAsync struct {
	clock      virtualClock
	timers     timerHeap
	microtasks microtaskQueue

	// cursor is the target of an in-flight Elapse, nil when idle. It
	// rejects nested Elapse calls and lets ElapseBlocking stretch the
	// horizon of the Elapse it was called from.
	cursor *time.Duration

	nextSeq uint64
}

// New creates an engine with an empty registry and the virtual clock at
// zero elapsed time.
func New() *FakeAsync {
	return &FakeAsync{}
}

// Run installs a fresh engine as the current scheduler, invokes fn with it,
// and returns the engine so the caller can inspect or advance it afterward.
func Run(fn func(*FakeAsync)) *FakeAsync {
	f := New()
	f.Run(func() { fn(f) })
	return f
}

// Run installs the engine as the current async scheduler for the duration
// of fn, restoring the previous scheduler before returning. Work scheduled
// through the async package inside fn is captured by this engine; unrelated
// work outside fn is untouched.
func (f *FakeAsync) Run(fn func()) {
	prev := async.SetScheduler(f)
	defer async.SetScheduler(prev)
	fn()
}

// CreateTimer schedules callback to fire once, delay after the current
// virtual time. A negative delay is clamped to zero.
func (f *FakeAsync) CreateTimer(delay time.Duration, callback func()) async.TimerHandle {
	t := f.newTimer(delay, false)
	t.run = callback
	f.timers.insert(t)
	return t
}

// CreatePeriodicTimer schedules callback to fire every period of virtual
// time until canceled, keeping a fixed cadence from creation time. A
// negative period is clamped to zero.
func (f *FakeAsync) CreatePeriodicTimer(period time.Duration, callback func(async.TimerHandle)) async.TimerHandle {
	t := f.newTimer(period, true)
	t.runPeriodic = callback
	f.timers.insert(t)
	return t
}

// ScheduleMicrotask queues callback to run before any further timer work.
func (f *FakeAsync) ScheduleMicrotask(callback func()) {
	f.microtasks.enqueue(callback)
}

func (f *FakeAsync) newTimer(delay time.Duration, periodic bool) *fakeTimer {
	if delay < 0 {
		delay = 0
	}
	t := &fakeTimer{
		engine:   f,
		seq:      f.nextSeq,
		nextFire: f.clock.elapsed + delay,
		periodic: periodic,
	}
	if periodic {
		t.period = delay
	}
	f.nextSeq++
	return t
}

// Elapse advances virtual time by d, firing every due timer in deadline
// order and draining microtasks to quiescence before the first timer and
// after every firing. It returns a KindInvalidArgument error for a negative
// d and a KindIllegalState error when called from within a running Elapse.
func (f *FakeAsync) Elapse(d time.Duration) error {
	if d < 0 {
		return &Error{Op: "fakeasync.Elapse", Kind: KindInvalidArgument, Err: ErrNegativeDuration}
	}
	if f.cursor != nil {
		return &Error{Op: "fakeasync.Elapse", Kind: KindIllegalState, Err: ErrElapseInProgress}
	}
	target := f.clock.elapsed + d
	f.cursor = &target
	defer func() { f.cursor = nil }()
	// Re-read the cursor each step: an ElapseBlocking inside a callback
	// may have stretched it.
	f.fireWhile(func(t *fakeTimer) (bool, error) {
		return t.nextFire <= *f.cursor, nil
	})
	f.clock.advanceTo(*f.cursor)
	return nil
}

// ElapseBlocking advances virtual time by d without firing any timers or
// microtasks, as if the simulated thread were busy for that long. Unlike
// Elapse it may be called from within a running callback; doing so inside
// an Elapse stretches that Elapse's horizon rather than being capped by it.
func (f *FakeAsync) ElapseBlocking(d time.Duration) error {
	if d < 0 {
		return &Error{Op: "fakeasync.ElapseBlocking", Kind: KindInvalidArgument, Err: ErrNegativeDuration}
	}
	f.clock.elapsed += d
	if f.cursor != nil && f.clock.elapsed > *f.cursor {
		*f.cursor = f.clock.elapsed
	}
	return nil
}

// FlushMicrotasks runs queued microtasks until none remain. No timers fire.
func (f *FakeAsync) FlushMicrotasks() {
	f.microtasks.drainAll()
}

// FlushTimers advances virtual time until no pending work remains, within
// the limits set by opts. It fails with a KindTimeout error when the next
// due timer lies beyond the timeout budget, which is what stops a periodic
// timer from flushing forever.
func (f *FakeAsync) FlushTimers(opts ...FlushOptions) error {
	var o FlushOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultFlushTimeout
	}
	absoluteLimit := f.clock.elapsed + timeout
	return f.fireWhile(func(t *fakeTimer) (bool, error) {
		if t.nextFire > absoluteLimit {
			return false, &Error{Op: "fakeasync.FlushTimers", Kind: KindTimeout, Err: ErrFlushTimeout}
		}
		if o.SkipPeriodic {
			// Keep going only while some timer is one-shot, or is a
			// periodic timer already due at the clock's final value.
			// Stopping one instant before a due periodic firing would
			// leave the flush incomplete.
			return f.hasFlushableTimers(), nil
		}
		return true, nil
	})
}

func (f *FakeAsync) hasFlushableTimers() bool {
	for _, t := range f.timers {
		if !t.periodic || t.nextFire <= f.clock.elapsed {
			return true
		}
	}
	return false
}

// fireWhile is the shared firing loop of Elapse and FlushTimers: drain
// microtasks, then repeatedly fire the earliest timer the predicate admits,
// draining microtasks again after every single firing. Two timers never
// fire back-to-back without an intervening drain.
func (f *FakeAsync) fireWhile(pred func(*fakeTimer) (bool, error)) error {
	f.microtasks.drainAll()
	for {
		next := f.timers.earliest()
		if next == nil {
			return nil
		}
		due, err := pred(next)
		if err != nil {
			return err
		}
		if !due {
			return nil
		}
		f.clock.advanceTo(next.nextFire)
		f.fire(next)
		f.microtasks.drainAll()
	}
}

func (f *FakeAsync) fire(t *fakeTimer) {
	if t.periodic {
		t.runPeriodic(t)
		// The callback may have canceled its own timer; only an entry
		// still in the registry gets its next occurrence.
		if t.active {
			t.nextFire += t.period
			f.timers.reschedule(t)
		}
		return
	}
	// Deactivate before invoking so the callback observes its own timer
	// as no longer pending.
	f.timers.remove(t)
	t.run()
}

// Clock returns a reader reporting base plus the engine's elapsed virtual
// time. The reader holds a live reference to the engine, not a snapshot.
func (f *FakeAsync) Clock(base time.Time) ClockReader {
	return func() time.Time {
		return f.clock.now(base)
	}
}

// Elapsed returns the total virtual time the engine has advanced through.
func (f *FakeAsync) Elapsed() time.Duration {
	return f.clock.elapsed
}

// PeriodicTimerCount returns the number of active periodic timers.
func (f *FakeAsync) PeriodicTimerCount() int {
	n := 0
	for _, t := range f.timers {
		if t.periodic {
			n++
		}
	}
	return n
}

// NonPeriodicTimerCount returns the number of active one-shot timers.
func (f *FakeAsync) NonPeriodicTimerCount() int {
	n := 0
	for _, t := range f.timers {
		if !t.periodic {
			n++
		}
	}
	return n
}

// MicrotaskCount returns the number of queued microtasks.
func (f *FakeAsync) MicrotaskCount() int {
	return f.microtasks.len()
}
