package advanced

import "github.com/pkg/errors"

// Threading errors through every step of the greedy sweep and the merge pass
// would bury the geometry under error plumbing. Instead, the engine panics
// with a DecomposeError, and the public API recovers to convert to an error.

type DecomposeError error

// Panic with a DecomposeError.
func fatalf(format string, args ...interface{}) {
	panic(DecomposeError(errors.Errorf(format, args...)))
}

// Panic with a DecomposeError wrapping err.
func fatalWrap(err error, format string, args ...interface{}) {
	panic(DecomposeError(errors.Wrapf(err, format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeError, ok := r.(DecomposeError); ok {
			return decomposeError
		}
		panic(r)
	}
	return nil
}
