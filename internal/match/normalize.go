package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a manifest value for fuzzy comparison: case is
// folded to lower and separators (_, -, spaces) are removed.
// Examples:
//   - "Protected_Internal" -> "protectedinternal"
//   - "record struct" -> "recordstruct"
//   - "Pascal-Case" -> "pascalcase"
func NormalizeIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '\t'
}
