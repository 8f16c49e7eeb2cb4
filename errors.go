package schedcore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Dispatcher methods. Callers should
// compare against these with errors.Is, not against SchedulerError directly.
var (
	// ErrInvalidCores is returned by New when the requested core count is
	// not positive.
	ErrInvalidCores = errors.New("schedcore: core count must be positive")

	// ErrUnknownPolicy is returned by New when the Policy value has no
	// registered scheduling behavior.
	ErrUnknownPolicy = errors.New("schedcore: unknown policy")

	// ErrInvalidCore is returned when a core id falls outside [0, cores).
	ErrInvalidCore = errors.New("schedcore: invalid core id")

	// ErrUnknownJob is returned when a completion event names a job id
	// that does not match the job currently occupying the given core.
	ErrUnknownJob = errors.New("schedcore: job id does not match core occupant")

	// ErrWrongPolicy is returned when QuantumExpired is called under a
	// policy other than RR.
	ErrWrongPolicy = errors.New("schedcore: quantum expiry is only valid under RR")

	// ErrClosed is returned by any event method called after Close.
	ErrClosed = errors.New("schedcore: dispatcher is closed")
)

// SchedulerError carries the structured context behind a precondition
// violation: which sentinel it wraps, plus the core/job ids involved.
// Detecting these is a courtesy for callers that want errors.Is/As
// diagnostics; the event path never panics on either these or any other
// documented-undefined input.
type SchedulerError struct {
	Op     string // the method that rejected the call, e.g. "JobFinished"
	CoreID int    // -1 when not applicable
	JobID  int    // -1 when not applicable
	Err    error  // one of the Err* sentinels above
}

func (e *SchedulerError) Error() string {
	switch {
	case e.CoreID >= 0 && e.JobID >= 0:
		return fmt.Sprintf("schedcore: %s: core %d, job %d: %v", e.Op, e.CoreID, e.JobID, e.Err)
	case e.CoreID >= 0:
		return fmt.Sprintf("schedcore: %s: core %d: %v", e.Op, e.CoreID, e.Err)
	default:
		return fmt.Sprintf("schedcore: %s: %v", e.Op, e.Err)
	}
}

func (e *SchedulerError) Unwrap() error {
	return e.Err
}

func newError(op string, coreID, jobID int, err error) *SchedulerError {
	return &SchedulerError{Op: op, CoreID: coreID, JobID: jobID, Err: err}
}
