package errfactory

import "fmt"

// Fields is an untyped object argument to Family.New. When it contains the
// ReservedName key it is an options value: that key carries the cause and any
// other keys are used as parameters.
type Fields map[string]any

// WithCause returns an options value carrying cause. Any value, including a
// nil or zero one, is kept as the cause.
func WithCause(cause any) Fields {
	return Fields{ReservedName: cause}
}

// resolved is the outcome of disambiguating constructor arguments.
type resolved struct {
	message   string
	params    Params
	hasParams bool
	cause     any
	hasCause  bool
}

// resolveArgs maps the raw arguments of Family.New to a message, an optional
// parameter set and an optional cause. Accepted shapes:
//
//	()                          default message
//	(params)                    default message, params
//	(params, {cause})           default message, params, cause
//	(msg)                       custom message
//	(msg, params)               custom message, params
//	(msg, {cause, ...params})   custom message, cause, remaining keys as params
//	(msg, params, {cause})      custom message, params, cause
//
// An object is an options value iff it has the reserved key; this holds for
// the leading object too, so ({cause}) keeps the default message and sets the
// cause. Arguments of any other kind, and arguments past the third, are
// ignored.
func resolveArgs(template string, args []any) resolved {
	r := resolved{message: template}
	if len(args) == 0 {
		return r
	}

	switch first := args[0].(type) {
	case string:
		r.message = first
		if len(args) > 1 {
			if obj, ok := asObject(args[1]); ok {
				r.takeObject(obj)
			}
		}
		if len(args) > 2 {
			if obj, ok := asObject(args[2]); ok {
				r.takeCause(obj)
			}
		}
	default:
		obj, ok := asObject(first)
		if !ok {
			return r
		}
		r.takeObject(obj)
		if len(args) > 1 {
			if opts, ok := asObject(args[1]); ok {
				r.takeCause(opts)
			}
		}
	}
	return r
}

// takeObject applies an object that may be either parameters or options.
func (r *resolved) takeObject(obj map[string]any) {
	if !r.takeCause(obj) {
		r.params, r.hasParams = toParams(obj), true
		return
	}
	if len(obj) > 1 {
		r.params, r.hasParams = toParams(obj), true
	}
}

// takeCause records the cause carried by obj, if any.
func (r *resolved) takeCause(obj map[string]any) bool {
	cause, ok := obj[ReservedName]
	if ok {
		r.cause, r.hasCause = cause, true
	}
	return ok
}

func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case Fields:
		return o, true
	case map[string]any:
		return o, true
	case Params:
		return stringsToAny(o), true
	case map[string]string:
		return stringsToAny(o), true
	}
	return nil, false
}

func stringsToAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// toParams converts an object to a parameter set. The reserved key is never
// a parameter; non-string values are formatted with fmt.Sprint.
func toParams(obj map[string]any) Params {
	params := make(Params, len(obj))
	for k, v := range obj {
		if k == ReservedName {
			continue
		}
		if s, ok := v.(string); ok {
			params[k] = s
			continue
		}
		params[k] = fmt.Sprint(v)
	}
	return params
}
