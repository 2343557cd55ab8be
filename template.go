package errfactory

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrParamsMismatch is returned by Contract.Check when a parameter set does
// not match the placeholders of a template exactly.
var ErrParamsMismatch = errors.New("parameters do not match message placeholders")

// placeholderPattern matches {name} where name has no braces or whitespace.
var placeholderPattern = regexp.MustCompile(`\{([^{}\s]+)\}`)

// Params maps placeholder names to their substitution values.
type Params map[string]string

// Contract is the required-argument shape derived from a message template.
type Contract struct {
	// Placeholders lists the distinct placeholder names in order of first use.
	Placeholders []string
}

// Parameterized reports whether the template has at least one placeholder.
// Fixed templates require no parameters.
func (c Contract) Parameterized() bool {
	return len(c.Placeholders) > 0
}

// Check reports whether params has exactly the template's placeholder names
// as keys. The returned error wraps ErrParamsMismatch.
func (c Contract) Check(params Params) error {
	var missing, extra []string
	for _, name := range c.Placeholders {
		if _, ok := params[name]; !ok {
			missing = append(missing, name)
		}
	}
	for key := range params {
		if !slices.Contains(c.Placeholders, key) {
			extra = append(extra, key)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	slices.Sort(extra)
	return fmt.Errorf("%w: missing [%s], unexpected [%s]",
		ErrParamsMismatch, strings.Join(missing, ", "), strings.Join(extra, ", "))
}

// Placeholders returns the distinct placeholder names of template in order of
// first occurrence. Returns nil for a fixed template.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

// Analyze derives the Contract of a template. A template that uses the
// reserved placeholder yields a *DefinitionError.
func Analyze(template string) (Contract, error) {
	names := Placeholders(template)
	if slices.Contains(names, ReservedName) {
		return Contract{}, &DefinitionError{Template: template, Err: ErrReservedPlaceholder}
	}
	return Contract{Placeholders: names}, nil
}

// Interpolate replaces every {name} in template whose name is a key of
// params. Placeholders without a value are left untouched.
func Interpolate(template string, params Params) string {
	if len(params) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		if value, ok := params[token[1:len(token)-1]]; ok {
			return value
		}
		return token
	})
}
