package definitions

import "github.com/jmgilman/go/errfactory"

var (
	// UnsupportedFormat is raised for file extensions without a decoder.
	UnsupportedFormat = errfactory.MustDefine(errfactory.Definition{
		Code:    "UNSUPPORTED_FORMAT",
		Message: "unsupported definitions format {format}",
		Status:  415,
	})

	// LoadFailed wraps failures to read a definitions file.
	LoadFailed = errfactory.MustDefine(errfactory.Definition{
		Code:    "LOAD_FAILED",
		Message: "failed to load {path}: {reason}",
		Status:  500,
	})

	// BuildFailed wraps CUE loading and evaluation failures.
	BuildFailed = errfactory.MustDefine(errfactory.Definition{
		Code:    "BUILD_FAILED",
		Message: "failed to build CUE {path}: {reason}",
		Status:  422,
	})

	// DecodeFailed wraps failures to decode a document into definitions.
	DecodeFailed = errfactory.MustDefine(errfactory.Definition{
		Code:    "DECODE_FAILED",
		Message: "failed to decode {format} {path}: {reason}",
		Status:  422,
	})

	// NoDefinitions is raised when a document contains no definitions.
	NoDefinitions = errfactory.MustDefine(errfactory.Definition{
		Code:    "NO_DEFINITIONS",
		Message: "no error definitions found in {path}",
		Status:  422,
	})
)

// wrap raises f caused by err, recording the cause's text as {reason}.
func wrap(f *errfactory.Family, err error, params errfactory.Params) *errfactory.Error {
	params["reason"] = err.Error()
	return f.NewSkip(1, params, errfactory.WithCause(err))
}
