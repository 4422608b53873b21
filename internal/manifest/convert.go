package manifest

import (
	"fmt"

	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/match"
	"propgen/internal/naming"
)

// Warning is a recoverable problem found while converting a manifest.
type Warning struct {
	Location analyze.Location
	Subject  string
	Message  string
}

func (w Warning) String() string {
	if loc := w.Location.String(); loc != "" {
		return loc + ": " + w.Message
	}

	if w.Subject != "" {
		return w.Subject + ": " + w.Message
	}

	return w.Message
}

// converter accumulates warnings while converting one manifest.
type converter struct {
	warnings []Warning
}

func (c *converter) warn(loc analyze.Location, subject, format string, args ...any) {
	c.warnings = append(c.warnings, Warning{
		Location: loc,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	})
}

// unknown reports an unrecognised enum value with a suggestion when one is close.
func (c *converter) unknown(loc analyze.Location, subject, what, value string, accepted []string) {
	if hint, ok := match.Suggest(value, accepted); ok {
		c.warn(loc, subject, "unknown %s %q, using the default; did you mean %q?", what, value, hint)
		return
	}

	c.warn(loc, subject, "unknown %s %q, using the default", what, value)
}

// Declarations converts the manifest into type declarations in manifest
// order. Unrecognised enum values fall back to their defaults and are
// returned as warnings.
func (mf *File) Declarations() ([]*analyze.TypeDeclaration, []Warning) {
	c := &converter{}
	decls := make([]*analyze.TypeDeclaration, 0, len(mf.Types))

	for i := range mf.Types {
		decls = append(decls, c.typeDecl(&mf.Types[i]))
	}

	return decls, c.warnings
}

func (c *converter) typeDecl(t *TypeYAML) *analyze.TypeDeclaration {
	loc := location(t.Location)
	subject := t.Name

	containers := make([]analyze.Container, 0, len(t.Containers))
	for _, ct := range t.Containers {
		containers = append(containers, analyze.Container{
			Name:           ct.Name,
			Kind:           c.kind(loc, subject, ct.Kind),
			TypeParameters: ct.TypeParameters,
		})
	}

	decl := &analyze.TypeDeclaration{
		ID:             analyze.NewTypeID(t.Namespace, containers, t.Name, len(t.TypeParameters)),
		Kind:           c.kind(loc, subject, t.Kind),
		TypeParameters: t.TypeParameters,
		Containers:     containers,
		Location:       loc,
		Eligible:       t.AutoProperty.Enabled(),
	}

	subject = decl.ID.String()

	if decl.Eligible {
		decl.Config = c.settings(loc, subject, t.AutoProperty)
	}

	decl.Fields = make([]analyze.FieldDeclaration, 0, len(t.Fields))
	for i := range t.Fields {
		decl.Fields = append(decl.Fields, c.field(decl, &t.Fields[i]))
	}

	return decl
}

func (c *converter) field(decl *analyze.TypeDeclaration, f *FieldYAML) analyze.FieldDeclaration {
	loc := location(f.Location)
	subject := analyze.FieldPath(decl, f.Name)

	field := analyze.FieldDeclaration{
		Name:     f.Name,
		Type:     c.typeRef(loc, subject, f.Type),
		ReadOnly: f.ReadOnly,
		Getter:   f.Getter,
		Setter:   f.Setter,
		Location: loc,
	}

	if f.AutoProperty.Enabled() {
		field.Config = c.settings(loc, subject, f.AutoProperty)
	}

	return field
}

func (c *converter) typeRef(loc analyze.Location, subject string, t TypeSpec) analyze.TypeRef {
	if t.Capsule == "" {
		return analyze.Plain(t.Display)
	}

	switch match.NormalizeIdent(t.Capsule) {
	case CapsuleReadOnly:
		return analyze.ReadOnlyCapsule(t.Display, t.Owner, t.Value)
	case CapsuleReadWrite:
		return analyze.ReadWriteCapsule(t.Display, t.Owner, t.Value)
	default:
		c.unknown(loc, subject, "capsule kind", t.Capsule, CapsuleNames())
		return analyze.Plain(t.Display)
	}
}

func (c *converter) kind(loc analyze.Location, subject, s string) analyze.TypeKind {
	k, ok := analyze.ParseTypeKind(s)
	if !ok {
		c.unknown(loc, subject, "type kind", s, analyze.TypeKindNames())
	}

	return k
}

func (c *converter) settings(loc analyze.Location, subject string, m *Marker) *config.Settings {
	s := &config.Settings{Prefix: m.Prefix}

	if m.Access != "" {
		access, ok := config.ParseAccess(m.Access)
		if !ok {
			c.unknown(loc, subject, "access modifier", m.Access, config.AccessNames())
		}

		s.Access = access
	}

	if m.Naming != "" {
		rule, ok := naming.ParseRule(m.Naming)
		if !ok {
			c.unknown(loc, subject, "naming rule", m.Naming, naming.RuleNames())
		}

		s.Naming = rule
	}

	return s
}

func location(l LocationYAML) analyze.Location {
	return analyze.Location{File: l.File, Line: l.Line, Column: l.Column}
}
