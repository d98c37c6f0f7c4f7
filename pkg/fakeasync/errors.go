package fakeasync

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an engine error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a negative duration was passed to
	// Elapse or ElapseBlocking.
	KindInvalidArgument
	// KindIllegalState indicates Elapse was called while another Elapse
	// was already in progress.
	KindIllegalState
	// KindTimeout indicates FlushTimers would have to advance past its
	// configured timeout to let a pending timer become due.
	KindTimeout
	// KindUnimplemented indicates a deliberately unsupported attribute
	// was accessed.
	KindUnimplemented
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindIllegalState:
		return "illegal state"
	case KindTimeout:
		return "timeout"
	case KindUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Sentinel causes, matchable with errors.Is.
var (
	// ErrNegativeDuration is the cause of KindInvalidArgument errors.
	ErrNegativeDuration = errors.New("duration must not be negative")
	// ErrElapseInProgress is the cause of KindIllegalState errors.
	ErrElapseInProgress = errors.New("an elapse is already in progress")
	// ErrFlushTimeout is the cause of KindTimeout errors.
	ErrFlushTimeout = errors.New("a pending timer is due after the flush timeout")
)

// Error represents a structured error from the fakeasync engine.
type Error struct {
	// Op is the operation that failed (e.g., "fakeasync.Elapse").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown if err is not an engine
// error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
