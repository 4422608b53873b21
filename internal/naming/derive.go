package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPrefix is the prefix pattern used when no layer configures one.
const DefaultPrefix = "^(_|m_)"

// ErrInvalidPattern is wrapped by every prefix compilation failure.
var ErrInvalidPattern = errors.New("invalid prefix pattern")

// AnchorPrefix returns text anchored to the start of input.
func AnchorPrefix(text string) string {
	if strings.HasPrefix(text, "^") || strings.HasPrefix(text, `\A`) {
		return text
	}

	return "^(?:" + text + ")"
}

// CompilePrefix anchors and compiles a prefix pattern.
func CompilePrefix(text string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(AnchorPrefix(text))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, text, err)
	}

	return re, nil
}

// Derive removes the first match of prefix from the start of field and
// re-cases the first rune of the remainder. An empty remainder yields "".
// A nil prefix removes nothing.
func Derive(field string, prefix *regexp.Regexp, rule Rule) string {
	rest := field

	if prefix != nil {
		// Only a match at offset 0 counts, even for caller-anchored
		// alternations such as "^_|m_".
		if loc := prefix.FindStringIndex(field); loc != nil && loc[0] == 0 {
			rest = field[loc[1]:]
		}
	}

	if rest == "" {
		return ""
	}

	return Recase(rest, rule)
}

// DeriveString compiles pattern and derives the property name for field.
func DeriveString(field, pattern string, rule Rule) (string, error) {
	re, err := CompilePrefix(pattern)
	if err != nil {
		return "", err
	}

	return Derive(field, re, rule), nil
}

// Recase changes the case of the first rune of s. RuleDefault behaves as
// PascalCase.
func Recase(s string, rule Rule) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	switch rule {
	case CamelCase:
		r = unicode.ToLower(r)
	default:
		r = unicode.ToUpper(r)
	}

	return string(r) + s[size:]
}
