// Package async defines the scheduling boundary between application code
// and whatever drives its deferred work.
//
// Application code that needs a delayed callback, a repeating callback, or a
// deferred microtask calls [CreateTimer], [CreatePeriodicTimer], or
// [ScheduleMicrotask] instead of reaching for the time package directly.
// Those front functions delegate to the current [Scheduler], which defaults
// to a real implementation backed by OS timers. Tests swap in a virtual-time
// scheduler via [SetScheduler] (the fakeasync package does this in its Run
// method) so the same application code runs against simulated time without
// modification.
//
//	timer := async.CreateTimer(5*time.Second, onTimeout)
//	defer timer.Cancel()
//
// The swap pattern mirrors injecting a fake clock for animation tests:
// SetScheduler returns the previous scheduler so callers can restore it
// during cleanup.
package async
