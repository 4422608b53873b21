package config

import "strings"

//go:generate go tool stringer -type=AccessModifier -trimprefix=Access -output=access_string.go

// AccessModifier is the accessibility of a generated property.
type AccessModifier int

const (
	// AccessDefault defers to the next configuration layer.
	AccessDefault AccessModifier = iota
	AccessPublic
	AccessProtected
	AccessInternal
	AccessPrivate
	AccessProtectedInternal
	AccessPrivateProtected
	AccessFile
)

// IsSet reports whether a is an explicit, recognised modifier.
func (a AccessModifier) IsSet() bool {
	return a > AccessDefault && a <= AccessFile
}

// Keyword returns the modifier as it appears in source. Values that are not
// set render as public.
func (a AccessModifier) Keyword() string {
	switch a {
	case AccessProtected:
		return "protected"
	case AccessInternal:
		return "internal"
	case AccessPrivate:
		return "private"
	case AccessProtectedInternal:
		return "protected internal"
	case AccessPrivateProtected:
		return "private protected"
	case AccessFile:
		return "file"
	default:
		return "public"
	}
}

var accessNames = map[string]AccessModifier{
	"default":           AccessDefault,
	"public":            AccessPublic,
	"protected":         AccessProtected,
	"internal":          AccessInternal,
	"private":           AccessPrivate,
	"protectedinternal": AccessProtectedInternal,
	"privateprotected":  AccessPrivateProtected,
	"file":              AccessFile,
}

// ParseAccess parses a modifier name. Case, spaces, dashes and underscores
// are ignored, so "protected internal" and "ProtectedInternal" are equal.
// Unknown names return AccessDefault and false.
func ParseAccess(s string) (AccessModifier, bool) {
	a, ok := accessNames[foldName(s)]
	return a, ok
}

// AccessNames returns the canonical names accepted by ParseAccess.
func AccessNames() []string {
	return []string{
		"default", "public", "protected", "internal", "private",
		"protected internal", "private protected", "file",
	}
}

func foldName(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '\t':
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
