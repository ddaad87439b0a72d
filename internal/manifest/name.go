package manifest

import (
	"regexp"
	"strings"
)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// SpecName returns the distribution name at the start of a requirement
// specifier, dropping extras, version constraints and markers.
func SpecName(spec string) string {
	s := strings.TrimSpace(spec)
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(isBareKeyRune(r) || r == '.')
	})
	if end >= 0 {
		s = s[:end]
	}
	return s
}

// NormalizeName lowercases a distribution name and collapses runs of
// "-", "_" and "." to a single "-".
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}
