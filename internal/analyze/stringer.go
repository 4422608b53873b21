package analyze

import (
	"strings"
)

// MemberPath builds a readable path to a member.
// Examples:
//   - "Game.Player" for a type
//   - "Game.Player._health" for a field of that type
type MemberPath struct {
	parts []string
}

// NewMemberPath creates a new MemberPath from a root type name.
func NewMemberPath(root string) *MemberPath {
	return &MemberPath{
		parts: []string{root},
	}
}

// Member appends a member name to the path.
func (p *MemberPath) Member(name string) *MemberPath {
	return &MemberPath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// String returns the full path string.
func (p *MemberPath) String() string {
	return strings.Join(p.parts, ".")
}

// FieldPath returns the path of a field within a declared type.
// Example: Game.Player, _health -> "Game.Player._health"
func FieldPath(decl *TypeDeclaration, field string) string {
	return NewMemberPath(decl.ID.String()).Member(field).String()
}

// GenericName returns name followed by its type parameter list.
// Example: Box, [TKey TValue] -> "Box<TKey, TValue>"
func GenericName(name string, params []string) string {
	if len(params) == 0 {
		return name
	}

	return name + "<" + strings.Join(params, ", ") + ">"
}
