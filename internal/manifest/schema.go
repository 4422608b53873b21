package manifest

// File is the root of a declaration manifest.
type File struct {
	Version string     `yaml:"version,omitempty"`
	Types   []TypeYAML `yaml:"types"`

	// Path is the file the manifest was loaded from, if any.
	Path string `yaml:"-"`
}

// TypeYAML is one type fragment as reported by the host.
type TypeYAML struct {
	Name           string          `yaml:"name"`
	Namespace      string          `yaml:"namespace,omitempty"`
	Kind           string          `yaml:"kind,omitempty"`
	TypeParameters []string        `yaml:"typeParameters,omitempty"`
	Containers     []ContainerYAML `yaml:"containers,omitempty"`
	Location       LocationYAML    `yaml:"location,omitempty"`

	// AutoProperty is the generation marker. Nil means the type is not eligible.
	AutoProperty *Marker     `yaml:"autoProperty,omitempty"`
	Fields       []FieldYAML `yaml:"fields,omitempty"`
}

// ContainerYAML is an enclosing type.
type ContainerYAML struct {
	Name           string   `yaml:"name"`
	Kind           string   `yaml:"kind,omitempty"`
	TypeParameters []string `yaml:"typeParameters,omitempty"`
}

// LocationYAML is a host source position.
type LocationYAML struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

// FieldYAML is one declared data member.
type FieldYAML struct {
	Name     string   `yaml:"name"`
	Type     TypeSpec `yaml:"type"`
	ReadOnly bool     `yaml:"readonly,omitempty"`
	Getter   bool     `yaml:"getter,omitempty"`
	Setter   bool     `yaml:"setter,omitempty"`

	// AutoProperty is the optional member-level configuration override.
	AutoProperty *Marker      `yaml:"autoProperty,omitempty"`
	Location     LocationYAML `yaml:"location,omitempty"`
}

// Marker holds the configuration arguments of a marker. Every setting is
// optional; blank values defer to the enclosing layer.
type Marker struct {
	Access string `yaml:"access,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Naming string `yaml:"naming,omitempty"`

	// Disabled is set by `autoProperty: false`.
	Disabled bool `yaml:"-"`
}

// Enabled reports whether the marker is present and switched on.
func (m *Marker) Enabled() bool {
	return m != nil && !m.Disabled
}

// TypeSpec is a declared field type. Plain types are written as a string;
// capsule types use the mapping form.
type TypeSpec struct {
	Display string `yaml:"display"`
	Capsule string `yaml:"capsule,omitempty"`
	Owner   string `yaml:"owner,omitempty"`
	Value   string `yaml:"value,omitempty"`
}

// Capsule kind names accepted in TypeSpec.Capsule.
const (
	CapsuleReadOnly  = "readonly"
	CapsuleReadWrite = "readwrite"
)

// CapsuleNames returns the accepted capsule kinds.
func CapsuleNames() []string {
	return []string{CapsuleReadOnly, CapsuleReadWrite}
}
