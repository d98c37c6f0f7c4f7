package fakeasync

import "time"

// ClockReader reports the current virtual time. Readers returned by
// [FakeAsync.Clock] track a live engine, so repeated calls observe
// subsequent Elapse and ElapseBlocking activity.
type ClockReader func() time.Time

// virtualClock tracks virtual time as a duration elapsed since engine
// creation. The duration is monotonically non-decreasing and is mutated only
// by the engine's own loops.
type virtualClock struct {
	elapsed time.Duration
}

func (c *virtualClock) now(base time.Time) time.Time {
	return base.Add(c.elapsed)
}

// advanceTo moves elapsed forward to target. A target at or before the
// current elapsed value is a no-op; the clock never moves backward.
func (c *virtualClock) advanceTo(target time.Duration) {
	if target > c.elapsed {
		c.elapsed = target
	}
}
