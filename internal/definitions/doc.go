// Package definitions decodes error definition documents.
//
// A document holds a single top-level "errors" list. YAML, JSON and CUE are
// supported and chosen by file extension:
//
//	errors:
//	  - code: NOT_FOUND
//	    message: "{resource} {id} not found"
//	    status: 404
//
// The same document in CUE may use comprehensions, references, constraints
// and imports; it must evaluate to concrete values.
//
// A Loader reads documents through a core.ReadFS, so the same code serves the
// local disk and in-memory filesystems:
//
//	loader := definitions.NewLoader(billy.NewLocal())
//	defs, err := loader.Load(ctx, "/path/to/errors.cue")
//
// Failures are errfactory errors of the families declared in this package,
// such as LoadFailed and DecodeFailed, wrapping the underlying cause.
package definitions
