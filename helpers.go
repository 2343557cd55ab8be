package errfactory

import (
	stderrors "errors"
	"reflect"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	var ErrTimeout = errors.New("timeout")
//	err := Internal.Wrap(ErrTimeout)
//	if errfactory.Is(err, ErrTimeout) {
//	    // Handle timeout
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var e *errfactory.Error
//	if errfactory.As(err, &e) {
//	    log.Println(e.Code(), e.Params())
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// IsCoded reports whether v is a non-nil error with a Code method returning a
// string and a Status method returning a number, regardless of which family
// or package produced it. Any integer or floating-point status type is
// accepted, not only int.
//
// Example:
//
//	if errfactory.IsCoded(err) {
//	    // Safe to report GetCode(err) and GetStatus(err)
//	}
func IsCoded(v any) bool {
	_, _, ok := codedOf(v)
	return ok
}

// GetCode extracts the code of the outermost coded error in err's chain, as
// recognised by IsCoded. Returns an empty string if there is none.
//
// Example:
//
//	switch errfactory.GetCode(err) {
//	case "NOT_FOUND":
//	    // Handle not found
//	}
func GetCode(err error) string {
	code, _, _ := findCoded(err)
	return code
}

// GetStatus extracts the status of the outermost coded error in err's chain,
// as recognised by IsCoded. Non-int statuses are converted to int.
// The boolean is false if the chain holds no coded error.
//
// Example:
//
//	if status, ok := errfactory.GetStatus(err); ok {
//	    w.WriteHeader(status)
//	}
func GetStatus(err error) (int, bool) {
	_, status, ok := findCoded(err)
	return status, ok
}

// CauseOf returns the cause attached to the outermost *Error in err's chain.
// The boolean distinguishes an absent cause from a nil or zero one.
//
// Example:
//
//	err := InvalidInput.New("bad flag", errfactory.WithCause(false))
//	cause, ok := errfactory.CauseOf(err) // false, true
func CauseOf(err error) (any, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Cause()
	}
	return nil, false
}

// GetName returns the display name of the outermost *Error in err's chain.
// Returns an empty string if there is none.
//
// Example:
//
//	name := errfactory.GetName(fmt.Errorf("lookup: %w", NotFound.New())) // "NotFound"
func GetName(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Name()
	}
	return ""
}

// findCoded walks err's chain depth-first, in the order used by errors.As,
// and returns the code and status of the first coded error.
func findCoded(err error) (string, int, bool) {
	if err == nil {
		return "", 0, false
	}
	if code, status, ok := codedOf(err); ok {
		return code, status, true
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return findCoded(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if code, status, ok := findCoded(e); ok {
				return code, status, true
			}
		}
	}
	return "", 0, false
}

// codedOf returns the code and status of v if v is a non-nil coded error.
func codedOf(v any) (string, int, bool) {
	if _, ok := v.(error); !ok || isNil(v) {
		return "", 0, false
	}
	if c, ok := v.(Coded); ok {
		return c.Code(), c.Status(), true
	}

	rv := reflect.ValueOf(v)
	codeFn, statusFn := rv.MethodByName("Code"), rv.MethodByName("Status")
	if !codeFn.IsValid() || !statusFn.IsValid() {
		return "", 0, false
	}
	if !returnsOne(codeFn.Type()) || codeFn.Type().Out(0).Kind() != reflect.String {
		return "", 0, false
	}
	if !returnsOne(statusFn.Type()) {
		return "", 0, false
	}

	var status int
	switch out := statusFn.Type().Out(0); out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		status = int(statusFn.Call(nil)[0].Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		status = int(statusFn.Call(nil)[0].Uint())
	case reflect.Float32, reflect.Float64:
		status = int(statusFn.Call(nil)[0].Float())
	default:
		return "", 0, false
	}
	return codeFn.Call(nil)[0].String(), status, true
}

func returnsOne(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() == 1
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
