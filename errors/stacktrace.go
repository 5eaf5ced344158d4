package errors

import (
	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created with
// github.com/pkg/errors WithStack function.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found when unwrapping given
// error, or nil if no error in the cause chain carries one.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
