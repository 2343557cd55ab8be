// Package generate emits typed Go constructors for error definitions.
//
// Each parameterized family gets a params struct whose fields are exactly the
// placeholders of its default message, so a missing or misspelled parameter
// is a compile error in the calling package.
package generate

import (
	"bytes"
	_ "embed"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"

	"github.com/jmgilman/go/errfactory"
)

//go:embed file.go.tmpl
var fileTemplate string

var tmpl = template.Must(template.New("file").Parse(fileTemplate))

// Family is the template view of one definition.
type Family struct {
	Name       string
	Definition errfactory.Definition
	Fields     []Field
}

// Field maps one placeholder to a struct field.
type Field struct {
	Name        string
	Placeholder string
}

type fileData struct {
	Package  string
	Families []Family
}

// File renders a gofmt'ed Go source file declaring one family per definition.
//
// Definitions are validated with errfactory.Define. A later definition with
// the same code replaces an earlier one in place, matching errfactory.ByCode.
func File(pkg string, defs []errfactory.Definition) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, InvalidPackage.New(errfactory.Params{"package": pkg})
	}

	families, err := Families(defs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fileData{Package: pkg, Families: families}); err != nil {
		return nil, wrap(RenderFailed, err, errfactory.Params{"step": "render"})
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, wrap(RenderFailed, err, errfactory.Params{"step": "format"})
	}
	return src, nil
}

// Families validates defs and maps them to template views in document order.
func Families(defs []errfactory.Definition) ([]Family, error) {
	byCode := make(map[string]int, len(defs))
	families := make([]Family, 0, len(defs))

	for _, def := range defs {
		f, err := errfactory.Define(def)
		if err != nil {
			return nil, wrap(InvalidDefinition, err, errfactory.Params{"code": def.Code})
		}

		fields, err := fieldsOf(def.Code, f.Contract().Placeholders)
		if err != nil {
			return nil, err
		}

		family := Family{Name: f.Name(), Definition: def, Fields: fields}
		if i, ok := byCode[def.Code]; ok {
			families[i] = family
			continue
		}
		byCode[def.Code] = len(families)
		families = append(families, family)
	}

	if err := checkIdentifiers(families); err != nil {
		return nil, err
	}
	return families, nil
}

// checkIdentifiers rejects families whose generated declarations would collide.
func checkIdentifiers(families []Family) error {
	declared := make(map[string]string)
	for _, f := range families {
		if !token.IsIdentifier(f.Name) || !unicode.IsUpper(rune(f.Name[0])) {
			return invalidIdentifier(f.Definition.Code, "derived name %q is not an exported identifier", f.Name)
		}

		idents := []string{f.Name, "New" + f.Name, "Wrap" + f.Name}
		if len(f.Fields) > 0 {
			idents = append(idents, f.Name+"Params")
		}
		for _, ident := range idents {
			if other, ok := declared[ident]; ok {
				return invalidIdentifier(f.Definition.Code, "%s is already declared by %s", ident, other)
			}
			declared[ident] = f.Definition.Code
		}
	}
	return nil
}

func fieldsOf(code string, placeholders []string) ([]Field, error) {
	fields := make([]Field, 0, len(placeholders))
	seen := make(map[string]string, len(placeholders))

	for _, p := range placeholders {
		name := FieldName(p)
		if name == "" {
			return nil, invalidIdentifier(code, "placeholder {%s} has no letters or digits", p)
		}
		if other, ok := seen[name]; ok {
			return nil, invalidIdentifier(code, "placeholders {%s} and {%s} both map to field %s", other, p, name)
		}
		seen[name] = p
		fields = append(fields, Field{Name: name, Placeholder: p})
	}
	return fields, nil
}

// FieldName converts a placeholder to an exported Go field name. Runs of
// letters and digits become words with an upper-cased first letter:
//
//	FieldName("user_id")   // "UserId"
//	FieldName("userName")  // "UserName"
//	FieldName("2fa")       // "P2fa"
//
// Returns an empty string if the placeholder has no letters or digits.
func FieldName(placeholder string) string {
	words := strings.FieldsFunc(placeholder, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for _, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	name := b.String()
	if !unicode.IsUpper([]rune(name)[0]) {
		name = "P" + name
	}
	return name
}
