package definitions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"github.com/jmgilman/go/errfactory"
	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a definitions document.
type Format string

const (
	// FormatYAML is a YAML document (.yaml, .yml).
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON document (.json).
	FormatJSON Format = "json"
	// FormatCUE is a CUE document (.cue).
	FormatCUE Format = "cue"
)

// document is the top-level shape shared by every format.
type document struct {
	Errors []errfactory.Definition `json:"errors" yaml:"errors"`
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", UnsupportedFormat.New(errfactory.Params{"format": `"` + ext + `"`})
	}
}

// Loader reads definitions documents from a filesystem.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
	}
}

// Load reads and decodes the definitions file at path, relative to the
// loader's filesystem root. Definitions are returned in document order and
// are not validated.
//
// CUE files are loaded as CUE instances, so they may import packages.
func (l *Loader) Load(ctx context.Context, path string) ([]errfactory.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap(LoadFailed, err, errfactory.Params{"path": path})
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	if format == FormatCUE {
		value, err := l.loadCUE(path)
		if err != nil {
			return nil, err
		}
		return decodeValue(value, path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, wrap(LoadFailed, err, errfactory.Params{"path": path})
	}
	return Decode(data, format, path)
}

// loadCUE builds the CUE file at path from an overlay of its contents.
func (l *Loader) loadCUE(path string) (cue.Value, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return cue.Value{}, wrap(LoadFailed, err, errfactory.Params{"path": path})
	}

	absPath := filepath.ToSlash(path)
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	config := &load.Config{
		Dir:     "/",
		Overlay: map[string]load.Source{absPath: load.FromBytes(data)},
	}

	insts := load.Instances([]string{absPath}, config)
	if len(insts) == 0 {
		return cue.Value{}, wrap(LoadFailed, errors.New("no instances loaded"), errfactory.Params{"path": path})
	}
	if err := insts[0].Err; err != nil {
		return cue.Value{}, wrap(BuildFailed, err, errfactory.Params{"path": path})
	}

	value := l.cueCtx.BuildInstance(insts[0])
	if err := value.Err(); err != nil {
		return cue.Value{}, wrap(BuildFailed, err, errfactory.Params{"path": path})
	}
	return value, nil
}

// Decode decodes a definitions document held in memory. name identifies the
// document in errors and CUE positions. CUE sources decoded this way cannot
// import packages; use a Loader for that.
func Decode(data []byte, format Format, name string) ([]errfactory.Definition, error) {
	var doc document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, decodeFailed(err, format, name)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, decodeFailed(err, format, name)
		}
	case FormatCUE:
		value := cuecontext.New().CompileBytes(data, cue.Filename(name))
		if err := value.Err(); err != nil {
			return nil, wrap(BuildFailed, err, errfactory.Params{"path": name})
		}
		return decodeValue(value, name)
	default:
		return nil, UnsupportedFormat.New(errfactory.Params{"format": `"` + string(format) + `"`})
	}

	return definitionsOf(doc, name)
}

// decodeValue decodes a built CUE value, which must be concrete.
func decodeValue(value cue.Value, name string) ([]errfactory.Definition, error) {
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, decodeFailed(err, FormatCUE, name)
	}

	var doc document
	if err := value.Decode(&doc); err != nil {
		return nil, decodeFailed(err, FormatCUE, name)
	}
	return definitionsOf(doc, name)
}

func decodeFailed(err error, format Format, name string) *errfactory.Error {
	return wrap(DecodeFailed, err, errfactory.Params{
		"format": strings.ToUpper(string(format)),
		"path":   name,
	})
}

func definitionsOf(doc document, name string) ([]errfactory.Definition, error) {
	if len(doc.Errors) == 0 {
		return nil, NoDefinitions.New(errfactory.Params{"path": name})
	}
	return doc.Errors, nil
}
