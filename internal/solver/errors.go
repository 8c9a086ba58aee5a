package solver

import "fmt"

// ConfigurationError is fatal and never retried. Build returns it when
// a request's class has no dedicated room; subjects whose required
// lessons name a class missing from the input are not checked and do
// not produce it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("solver: configuration error: %s", e.Reason)
}

// InfeasibleAttempt means the Constructive Solver reached a request
// with no legal slot during one restart attempt. The orchestrator
// recovers by restarting C with fresh randomness.
type InfeasibleAttempt struct {
	Request         interface{} // the domain.LessonRequest that had no legal slot
	CandidatesTried int
}

func (e *InfeasibleAttempt) Error() string {
	return fmt.Sprintf("solver: no legal slot for request %v (%d candidates considered)", e.Request, e.CandidatesTried)
}

// DemandUnmet means C returned a schedule but some (class, subject)
// pair's placed-lesson count does not match its required count (H5).
// The orchestrator recovers by restarting C.
type DemandUnmet struct {
	ClassID   string
	SubjectID string
	Required  int
	Placed    int
}

func (e *DemandUnmet) Error() string {
	return fmt.Sprintf("solver: demand unmet for class=%s subject=%s: required %d, placed %d",
		e.ClassID, e.SubjectID, e.Required, e.Placed)
}

// ExhaustedAttempts is surfaced to the caller when the orchestrator's
// retry cap is reached with no valid schedule produced.
type ExhaustedAttempts struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedAttempts) Error() string {
	return fmt.Sprintf("solver: exhausted %d construction attempts, last error: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedAttempts) Unwrap() error { return e.LastErr }

// AbortedByCaller is not an error in the reporting sense: it flags
// that the external cancellation signal was set during SA, so the
// returned schedule is the best found so far rather than a converged
// result. Solve does not return this value; an abort is reported
// through Statistics.SAStats.Aborted instead of as a failure.
type AbortedByCaller struct{}

func (e *AbortedByCaller) Error() string {
	return "solver: optimization aborted by caller, returning best-so-far"
}
