package oerror

import "fmt"

// PongError is returned for invalid configuration and contract violations
// inside the game core.
type PongError struct {
	Err string
}

// New formats a PongError.
func New(format string, args ...interface{}) *PongError {
	return &PongError{Err: fmt.Sprintf(format, args...)}
}

func (e *PongError) Error() string {
	return e.Err
}
