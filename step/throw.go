package step

import "github.com/pkg/errors"

// Threading errors up and down the recursive engine code would add a ton of
// complexity for conditions that can only arise from degenerate input. Instead
// the engines panic with an EngineError, and the Trace rebuild boundary
// recovers it into a single diagnostic step.

type EngineError error

// Fatalf panics with an EngineError.
func Fatalf(format string, args ...interface{}) {
	panic(EngineError(errors.Errorf(format, args...)))
}

// RecoverEngineError converts a recovered EngineError into an error, and
// re-panics on anything else.
func RecoverEngineError(r interface{}) error {
	if r != nil {
		if engineErr, ok := r.(EngineError); ok {
			return engineErr
		}
		panic(r)
	}
	return nil
}
