package gateway

import "fmt"

// ErrCVAnalysisFailed indicates the provider returned a CV analysis payload
// that does not conform to the expected schema. Partial data is never
// returned in its place.
type ErrCVAnalysisFailed struct {
	Cause error
}

func (e *ErrCVAnalysisFailed) Error() string {
	return fmt.Sprintf("failed to analyze CV content: %v", e.Cause)
}

func (e *ErrCVAnalysisFailed) Unwrap() error {
	return e.Cause
}
