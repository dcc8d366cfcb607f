package pipeline

import "fmt"

// StageError reports a stage that could not compute its output for one resume,
// for example when a remote similarity backend is unavailable.
type StageError struct {
	Stage string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
