package errfactory

import (
	"errors"
	"slices"
)

// familyTag identifies the family an instance belongs to. It is never empty
// so that distinct allocations compare unequal.
type familyTag struct {
	code string
}

// Family is the constructible type built from one Definition.
// Code, Name and Status are available without creating an instance.
type Family struct {
	def      Definition
	name     string
	contract Contract
	tag      *familyTag
}

// Define builds a family from def.
//
// Returns a *DefinitionError if the code is malformed or the message template
// uses the reserved placeholder. No family is returned in that case.
//
// Example:
//
//	NotFound, err := errfactory.Define(errfactory.Definition{
//	    Code:    "NOT_FOUND",
//	    Message: "{resource} {id} not found",
//	    Status:  404,
//	})
func Define(def Definition) (*Family, error) {
	contract, err := def.analyze()
	if err != nil {
		return nil, err
	}

	return &Family{
		def:      def,
		name:     DeriveName(def.Code),
		contract: contract,
		tag:      &familyTag{code: def.Code},
	}, nil
}

// MustDefine is like Define but panics on an invalid definition.
// It is meant for package-level variables.
func MustDefine(def Definition) *Family {
	f, err := Define(def)
	if err != nil {
		panic(err)
	}
	return f
}

// Code returns the family code.
func (f *Family) Code() string {
	return f.def.Code
}

// Name returns the display name derived from the code.
func (f *Family) Name() string {
	return f.name
}

// Status returns the family status.
func (f *Family) Status() int {
	return f.def.Status
}

// Template returns the default message template.
func (f *Family) Template() string {
	return f.def.Message
}

// Definition returns the definition the family was built from.
func (f *Family) Definition() Definition {
	return f.def
}

// Contract returns the required-argument shape of the default message.
func (f *Family) Contract() Contract {
	return Contract{Placeholders: slices.Clone(f.contract.Placeholders)}
}

// New creates an instance. See resolveArgs for the accepted argument shapes:
//
//	NotFound.New(errfactory.Params{"resource": "user", "id": "42"})
//	NotFound.New("user lookup failed", errfactory.WithCause(err))
//	NotFound.New("{what} is gone", errfactory.Fields{"what": "user", "cause": err})
//
// The stack trace starts at the caller of New.
func (f *Family) New(args ...any) *Error {
	return f.build(1, args)
}

// NewSkip is like New but starts the stack trace skip frames above its
// caller. Wrappers around a family pass 1 to hide their own frame.
func (f *Family) NewSkip(skip int, args ...any) *Error {
	return f.build(skip+1, args)
}

// Wrap creates an instance whose cause is err.
// Returns nil if err is nil.
func (f *Family) Wrap(err error, args ...any) *Error {
	if err == nil {
		return nil
	}

	e := f.build(1, args)
	e.cause, e.hasCause = err, true
	return e
}

// Match reports whether err, or any error in its chain, was created by f.
func (f *Family) Match(err error) bool {
	return errors.Is(err, &Error{tag: f.tag})
}

func (f *Family) build(skip int, args []any) *Error {
	r := resolveArgs(f.def.Message, args)

	message := r.message
	var params Params
	if r.hasParams {
		message = Interpolate(message, r.params)
		params = r.params
	}

	return &Error{
		code:     f.def.Code,
		name:     f.name,
		message:  message,
		status:   f.def.Status,
		params:   params,
		cause:    r.cause,
		hasCause: r.hasCause,
		stack:    callers(skip + 1),
		tag:      f.tag,
	}
}
