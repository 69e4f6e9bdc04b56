package repositories

import (
	"errors"
	"fmt"
)

// LoadError reports a store file that exists but could not be parsed. The
// engine's documented recovery policy is to substitute the empty default
// and log a warning, so callers receive both the error and a usable zero
// value from Load.
type LoadError struct {
	Store string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("store %s: malformed data: %v", e.Store, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err is a malformed-store error (as opposed
// to an I/O failure, which is not recoverable by defaulting).
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
