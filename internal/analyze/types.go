package analyze

import (
	"strconv"
	"strings"

	"propgen/internal/common"
	"propgen/internal/config"
)

// TypeID uniquely identifies a declared type, however many partial
// fragments it is declared in.
type TypeID struct {
	Namespace string // e.g., "Game.Model"
	Container string // dotted containing types, e.g., "Outer`1.Inner"
	Name      string // e.g., "Player"
	Arity     int    // number of generic type parameters
}

// String returns the dotted name with a `N arity suffix for generic types.
func (t TypeID) String() string {
	parts := make([]string, 0, 3)
	if t.Namespace != "" {
		parts = append(parts, t.Namespace)
	}

	if t.Container != "" {
		parts = append(parts, t.Container)
	}

	parts = append(parts, arityName(t.Name, t.Arity))

	return strings.Join(parts, ".")
}

func arityName(name string, arity int) string {
	if arity == 0 {
		return name
	}

	return name + "`" + strconv.Itoa(arity)
}

// Location points at a declaration in host source.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String renders the location as file(line,col).
func (l Location) String() string {
	switch {
	case l.IsZero():
		return ""
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return l.File + "(" + strconv.Itoa(l.Line) + ")"
	default:
		return l.File + "(" + strconv.Itoa(l.Line) + "," + strconv.Itoa(l.Column) + ")"
	}
}

// TypeKind is the declaration keyword of a type.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindRecord
	KindRecordStruct
	KindInterface
)

// Keyword returns the kind as written in a declaration.
func (k TypeKind) Keyword() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindRecord:
		return "record"
	case KindRecordStruct:
		return "record struct"
	case KindInterface:
		return "interface"
	default:
		return "class"
	}
}

// String returns a human-readable kind name.
func (k TypeKind) String() string {
	switch k {
	case KindClass, KindStruct, KindRecord, KindRecordStruct, KindInterface:
		return k.Keyword()
	default:
		return common.UnknownStr
	}
}

// ParseTypeKind parses a declaration keyword. An empty string is a class.
func ParseTypeKind(s string) (TypeKind, bool) {
	switch strings.Join(strings.Fields(strings.ToLower(s)), " ") {
	case "", "class":
		return KindClass, true
	case "struct":
		return KindStruct, true
	case "record", "record class":
		return KindRecord, true
	case "record struct":
		return KindRecordStruct, true
	case "interface":
		return KindInterface, true
	default:
		return KindClass, false
	}
}

// TypeKindNames returns the keywords accepted by ParseTypeKind.
func TypeKindNames() []string {
	return []string{"class", "struct", "record", "record struct", "interface"}
}

// Container is a type enclosing the declared type.
type Container struct {
	Name           string
	Kind           TypeKind
	TypeParameters []string
}

// TypeDeclaration is a type reported by the host.
type TypeDeclaration struct {
	ID             TypeID
	Kind           TypeKind
	TypeParameters []string
	// Containers lists enclosing types, outermost first.
	Containers []Container
	Location   Location
	// Eligible is true when the type carries the generation marker.
	Eligible bool
	// Config is the optional type-level configuration layer.
	Config *config.Settings
	Fields []FieldDeclaration
}

// NewTypeID builds the identity of a type from its declaration parts.
func NewTypeID(namespace string, containers []Container, name string, arity int) TypeID {
	outer := make([]string, 0, len(containers))
	for _, c := range containers {
		outer = append(outer, arityName(c.Name, len(c.TypeParameters)))
	}

	return TypeID{
		Namespace: namespace,
		Container: strings.Join(outer, "."),
		Name:      name,
		Arity:     arity,
	}
}

// HasField reports whether a field with the given name is declared.
func (d *TypeDeclaration) HasField(name string) bool {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return true
		}
	}

	return false
}

// CapsuleKind tells whether a field type delegates property storage.
type CapsuleKind int

const (
	CapsuleNone      CapsuleKind = iota // plain field
	CapsuleReadOnly                     // exposes Get(owner)
	CapsuleReadWrite                    // exposes Get(owner) and Set(owner, value)
)

// String returns a human-readable capsule kind.
func (k CapsuleKind) String() string {
	switch k {
	case CapsuleNone:
		return "none"
	case CapsuleReadOnly:
		return "readonly"
	case CapsuleReadWrite:
		return "readwrite"
	default:
		return common.UnknownStr
	}
}

// TypeRef describes the declared type of a field.
type TypeRef struct {
	// Display is the fully qualified type as it should appear in source.
	Display string
	Capsule CapsuleKind
	// Owner is the capsule's owner type argument, empty for single-argument capsules.
	Owner string
	// Value is the capsule's wrapped value type.
	Value string
}

// Plain returns a non-capsule type reference.
func Plain(display string) TypeRef {
	return TypeRef{Display: display}
}

// ReadOnlyCapsule returns a read-only capsule type wrapping value.
func ReadOnlyCapsule(display, owner, value string) TypeRef {
	return TypeRef{Display: display, Capsule: CapsuleReadOnly, Owner: owner, Value: value}
}

// ReadWriteCapsule returns a read-write capsule type wrapping value.
func ReadWriteCapsule(display, owner, value string) TypeRef {
	return TypeRef{Display: display, Capsule: CapsuleReadWrite, Owner: owner, Value: value}
}

// IsCapsule reports whether the type delegates to a capsule.
func (t TypeRef) IsCapsule() bool {
	return t.Capsule == CapsuleReadOnly || t.Capsule == CapsuleReadWrite
}

// FieldDeclaration is a data member of a declared type.
type FieldDeclaration struct {
	Name     string
	Type     TypeRef
	ReadOnly bool
	// Getter and Setter record the presence of the corresponding markers.
	Getter bool
	Setter bool
	// Config is the optional member-level configuration layer.
	Config   *config.Settings
	Location Location
}

// IsCandidate reports whether the field takes part in property generation:
// it carries a marker or its type is a capsule.
func (f *FieldDeclaration) IsCandidate() bool {
	return f.Getter || f.Setter || f.Type.IsCapsule()
}
