package generate

import (
	"fmt"

	"github.com/jmgilman/go/errfactory"
)

var (
	// InvalidDefinition wraps a definition rejected by errfactory.Define.
	InvalidDefinition = errfactory.MustDefine(errfactory.Definition{
		Code:    "INVALID_DEFINITION",
		Message: "invalid definition {code}: {reason}",
		Status:  422,
	})

	// InvalidIdentifier is raised when a definition cannot be mapped to Go
	// identifiers, or two definitions would declare the same one.
	InvalidIdentifier = errfactory.MustDefine(errfactory.Definition{
		Code:    "INVALID_IDENTIFIER",
		Message: "{code}: cannot derive Go identifier: {reason}",
		Status:  422,
	})

	// InvalidPackage is raised for a package name that is not a Go identifier.
	InvalidPackage = errfactory.MustDefine(errfactory.Definition{
		Code:    "INVALID_PACKAGE",
		Message: "invalid package name {package}",
		Status:  400,
	})

	// RenderFailed wraps template execution and gofmt failures.
	RenderFailed = errfactory.MustDefine(errfactory.Definition{
		Code:    "RENDER_FAILED",
		Message: "failed to {step} generated source: {reason}",
		Status:  500,
	})
)

func wrap(f *errfactory.Family, err error, params errfactory.Params) *errfactory.Error {
	params["reason"] = err.Error()
	return f.NewSkip(1, params, errfactory.WithCause(err))
}

func invalidIdentifier(code, format string, args ...any) *errfactory.Error {
	return InvalidIdentifier.NewSkip(1, errfactory.Params{
		"code":   code,
		"reason": fmt.Sprintf(format, args...),
	})
}
