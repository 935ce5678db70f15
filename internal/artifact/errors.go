package artifact

import "fmt"

// IOError represents a failure reading or writing an artifact.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifact io error: %s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("artifact io error: %s %s", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
