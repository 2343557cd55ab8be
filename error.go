package errfactory

import (
	"fmt"
	"io"
	"maps"
)

// Error is one occurrence of a family.
// It is immutable and holds no reference to the family that built it.
type Error struct {
	code     string
	name     string
	message  string
	status   int
	params   Params
	cause    any
	hasCause bool
	stack    []uintptr
	tag      *familyTag
}

// compile-time guarantee that *Error satisfies Coded
var _ Coded = (*Error)(nil)

// Error returns the string representation of the error.
// Format: "Name: message".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.name + ": " + e.message
}

// Code returns the family code.
func (e *Error) Code() string {
	return e.code
}

// Name returns the display name derived from the code.
func (e *Error) Name() string {
	return e.name
}

// Message returns the interpolated message.
func (e *Error) Message() string {
	return e.message
}

// Status returns the family status.
func (e *Error) Status() int {
	return e.status
}

// Params returns a copy of the parameters used to interpolate the message.
// Returns nil if the instance was built without parameters.
func (e *Error) Params() Params {
	return maps.Clone(e.params)
}

// Cause returns the cause and whether one was supplied. A supplied nil or
// zero value is reported as present.
func (e *Error) Cause() (any, bool) {
	return e.cause, e.hasCause
}

// Unwrap returns the cause when it is an error, for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// Is reports whether target is an instance of the same family.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && e.tag == t.tag
}

// StackTrace returns the trace captured at construction. The first frame is
// the construction site.
func (e *Error) StackTrace() []Frame {
	return framesOf(e.stack)
}

// Format implements fmt.Formatter. %+v appends the stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			for _, f := range e.StackTrace() {
				_, _ = fmt.Fprintf(s, "\n%s\n\t%s:%d", f.Function, f.File, f.Line)
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}
