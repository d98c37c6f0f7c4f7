package fakeasync_test

import (
	"fmt"
	"time"

	"github.com/go-drift/fakeasync/pkg/async"
	"github.com/go-drift/fakeasync/pkg/fakeasync"
)

// This example tests a retry-with-backoff helper in zero wall-clock time.
func ExampleRun() {
	attempts := 0
	var attempt func()
	attempt = func() {
		attempts++
		if attempts < 3 {
			// Retry with doubling backoff: 1s, then 2s.
			delay := time.Duration(1<<(attempts-1)) * time.Second
			async.CreateTimer(delay, attempt)
		}
	}

	f := fakeasync.Run(func(f *fakeasync.FakeAsync) {
		attempt()
		f.FlushTimers()
	})

	fmt.Println("attempts:", attempts)
	fmt.Println("virtual time:", f.Elapsed())
	// Output:
	// attempts: 3
	// virtual time: 3s
}

// This example shows microtasks draining before a due timer fires.
func ExampleFakeAsync_Elapse() {
	fakeasync.Run(func(f *fakeasync.FakeAsync) {
		async.CreateTimer(time.Second, func() { fmt.Println("timer") })
		async.ScheduleMicrotask(func() { fmt.Println("microtask") })
		f.Elapse(time.Second)
	})
	// Output:
	// microtask
	// timer
}

// This example drives a polling loop built on a periodic timer.
func ExampleFakeAsync_FlushTimers() {
	fakeasync.Run(func(f *fakeasync.FakeAsync) {
		polls := 0
		async.CreatePeriodicTimer(10*time.Second, func(poll async.TimerHandle) {
			polls++
			if polls == 3 {
				poll.Cancel()
			}
		})

		if err := f.FlushTimers(); err != nil {
			fmt.Println("flush:", err)
			return
		}
		fmt.Println("polls:", polls, "at", f.Elapsed())
	})
	// Output:
	// polls: 3 at 30s
}
