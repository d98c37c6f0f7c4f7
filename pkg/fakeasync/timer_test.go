package fakeasync

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/fakeasync/pkg/async"
)

func TestTimerHandle_CancelPreventsFiring(t *testing.T) {
	f := New()
	fired := false
	handle := f.CreateTimer(time.Second, func() { fired = true })

	handle.Cancel()
	f.Elapse(time.Minute)
	if fired {
		t.Error("canceled timer fired")
	}
}

func TestTimerHandle_CancelObservableImmediately(t *testing.T) {
	f := New()
	handle := f.CreatePeriodicTimer(time.Second, func(async.TimerHandle) {})

	if !handle.IsActive() {
		t.Fatal("expected new periodic timer active")
	}
	handle.Cancel()
	if handle.IsActive() {
		t.Error("cancel not observable through IsActive")
	}
	if f.PeriodicTimerCount() != 0 {
		t.Error("cancel not observable through the registry")
	}
}

func TestTimerHandle_CancelOtherDuringCallback(t *testing.T) {
	f := New()
	var victim async.TimerHandle
	victimFired := false
	// Both due at 1s; the first-created fires first and cancels the
	// second before the loop reaches it.
	f.CreateTimer(time.Second, func() { victim.Cancel() })
	victim = f.CreateTimer(time.Second, func() { victimFired = true })

	f.Elapse(time.Second)
	if victimFired {
		t.Error("timer fired after being canceled earlier in the same elapse")
	}
}

func TestTimerHandle_TickUnsupported(t *testing.T) {
	f := New()
	handle := f.CreateTimer(time.Second, func() {})

	_, err := handle.Tick()
	if KindOf(err) != KindUnimplemented {
		t.Fatalf("expected unimplemented error, got %v", err)
	}
	if !errors.Is(err, async.ErrTickUnsupported) {
		t.Errorf("expected ErrTickUnsupported cause, got %v", err)
	}
}

func TestPeriodicHandle_StaysActiveAcrossFirings(t *testing.T) {
	f := New()
	handle := f.CreatePeriodicTimer(time.Second, func(async.TimerHandle) {})

	f.Elapse(5 * time.Second)
	if !handle.IsActive() {
		t.Error("periodic timer went inactive without cancel")
	}
}
