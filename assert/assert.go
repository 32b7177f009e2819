package assert

import "github.com/jerry930829/ML-pingpong/oerror"

// IsTrue panics with a formatted PongError if ok is false. It guards internal
// invariants only; invalid input is reported with an error instead.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
