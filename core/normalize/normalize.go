// Package normalize canonicalizes free-text identifiers so that grouping and
// matching by name is reliable across datasets exported by different systems.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text returns the canonical form of s: surrounding whitespace removed,
// accented characters decomposed and stripped of their combining marks, and
// the result uppercased. It is idempotent and never fails; the empty string
// maps to itself.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// transform chains are stateful, so build one per call.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}
