package calibration

import "fmt"

// RetrievalError reports a failed calculator round-trip. The call can be retried.
type RetrievalError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("calibration %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("calibration %s failed: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Temporary reports that the failure is transient.
func (e *RetrievalError) Temporary() bool {
	return true
}
