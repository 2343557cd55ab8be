package errfactory

import (
	"errors"
	"fmt"
	"regexp"
)

// ReservedName is the placeholder name that may never appear in a message
// template. It is the key that carries a cause inside an options argument.
const ReservedName = "cause"

var (
	// ErrReservedPlaceholder is returned when a message template uses {cause}.
	ErrReservedPlaceholder = errors.New("message template uses the reserved placeholder {" + ReservedName + "}")

	// ErrInvalidCode is returned when a code contains characters other than
	// upper-case letters, digits and underscores, or has no letter or digit.
	ErrInvalidCode = errors.New("code must contain only A-Z, 0-9 and _ and at least one letter or digit")
)

var codePattern = regexp.MustCompile(`^_*[A-Z0-9][A-Z0-9_]*$`)

// Definition is the static description of one error family.
type Definition struct {
	// Code uniquely identifies the family, e.g. "NOT_FOUND".
	Code string `json:"code" yaml:"code"`

	// Message is the default message template with zero or more {name} placeholders.
	Message string `json:"message" yaml:"message"`

	// Status is attached verbatim to every instance.
	Status int `json:"status" yaml:"status"`
}

// DefinitionError reports a definition rejected by Define.
// It unwraps to ErrReservedPlaceholder or ErrInvalidCode.
type DefinitionError struct {
	Code     string
	Template string
	Err      error
}

// Error returns the string representation of the error.
func (e *DefinitionError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid error definition: %v", e.Err)
	}
	return fmt.Sprintf("invalid error definition %s: %v", e.Code, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// Validate checks the definition without building a family.
func (d Definition) Validate() error {
	_, err := d.analyze()
	return err
}

func (d Definition) analyze() (Contract, error) {
	if !codePattern.MatchString(d.Code) {
		return Contract{}, &DefinitionError{Code: d.Code, Template: d.Message, Err: ErrInvalidCode}
	}

	contract, err := Analyze(d.Message)
	if err != nil {
		var defErr *DefinitionError
		if errors.As(err, &defErr) {
			defErr.Code = d.Code
		}
		return Contract{}, err
	}
	return contract, nil
}
