package errfactory

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeriveName converts a code to its display name: each underscore-delimited
// segment is lower-cased, its first character upper-cased, and the segments
// are joined without a separator.
//
//	DeriveName("INTERNAL_SERVER_ERROR") // "InternalServerError"
func DeriveName(code string) string {
	var b strings.Builder
	b.Grow(len(code))

	for _, segment := range strings.Split(code, "_") {
		if segment == "" {
			continue
		}
		segment = strings.ToLower(segment)
		r, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(segment[size:])
	}
	return b.String()
}
