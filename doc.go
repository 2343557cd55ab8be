// Package errfactory builds typed error families from declarative definitions.
//
// A definition is a stable code, a message template and a numeric status.
// Define turns it into a Family whose instances carry the code and status
// verbatim, a display name derived from the code, an interpolated message,
// an optional cause and a stack trace rooted at the construction site. It
// remains fully compatible with the standard library errors package
// (errors.Is, errors.As, errors.Unwrap).
//
// # Defining families
//
//	var NotFound = errfactory.MustDefine(errfactory.Definition{
//	    Code:    "NOT_FOUND",
//	    Message: "{resource} {id} not found",
//	    Status:  404,
//	})
//
//	NotFound.Code()   // "NOT_FOUND"
//	NotFound.Name()   // "NotFound"
//	NotFound.Status() // 404
//
// Define rejects a code outside [A-Z0-9_] and any template that uses the
// reserved placeholder {cause}. Both failures are a *DefinitionError, and no
// family is returned.
//
// # Creating instances
//
// Family.New takes up to three positional arguments:
//
//	NotFound.New()                                            // default message as-is
//	NotFound.New(errfactory.Params{"resource": "user", "id": "42"})
//	NotFound.New(params, errfactory.WithCause(err))
//	NotFound.New("lookup failed")                             // custom message
//	NotFound.New("{what} is gone", errfactory.Params{"what": "user"})
//	NotFound.New("{what} is gone", errfactory.Fields{"what": "user", "cause": err})
//	NotFound.New("{what} is gone", params, errfactory.WithCause(err))
//
// An object argument is an options value when it has a "cause" key. The cause
// may be any value; nil, 0, false and "" are kept and reported as present by
// Error.Cause.
//
// Placeholders without a value are left in the message unchanged. Runtime
// construction never fails.
//
// # Checking errors
//
//	if NotFound.Match(err) {
//	    // err, or something it wraps, came from NotFound
//	}
//
//	if errfactory.IsCoded(err) {
//	    status, _ := errfactory.GetStatus(err)
//	}
//
// # Static contract
//
// Go cannot derive a parameter struct from a string literal, so the errgen
// command generates one per family together with typed constructors:
//
//	//go:generate go run github.com/jmgilman/go/errfactory/cmd/errgen -i errors.yaml -o errors_gen.go
//
// Contract.Check offers the same exact-key check at runtime.
package errfactory
