// Package fakeasync simulates the passage of time for deterministic tests.
//
// Timers and microtasks scheduled through the async package while code runs
// under [Run] are captured by a [FakeAsync] engine instead of being handed
// to OS timers. Nothing fires until the test advances the virtual clock, so
// timeouts, polling loops, retries, and backoff logic run in zero wall-clock
// time with fully reproducible ordering.
//
// # Quick Start
//
//	fakeasync.Run(func(f *fakeasync.FakeAsync) {
//	    fired := false
//	    async.CreateTimer(5*time.Second, func() { fired = true })
//
//	    f.Elapse(4 * time.Second) // fired == false
//	    f.Elapse(1 * time.Second) // fired == true
//	})
//
// # Ordering
//
// Advancing time fires due timers in deadline order, breaking ties by
// creation order. Microtasks drain to quiescence before the first timer of
// an advance and again after every single firing, so a timer callback's
// microtasks always run before the next timer.
//
// # Flushing
//
// [FakeAsync.FlushTimers] advances until no pending work remains, bounded
// by a virtual-time timeout so a runaway periodic timer fails the flush
// instead of hanging it. [FakeAsync.FlushMicrotasks] drains the microtask
// queue without firing any timers.
package fakeasync
