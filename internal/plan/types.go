package plan

import (
	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/diagnostic"
)

// ResolvedProperty is the specification of one generated property.
// It always has a getter, a setter or both.
type ResolvedProperty struct {
	// Access is the effective accessibility of the property.
	Access config.AccessModifier
	// ExposedType is the property type. For delegated properties it is the
	// capsule's value type, never the capsule type.
	ExposedType string
	// PropertyName is the derived name; it never equals BackingField.
	PropertyName string
	// BackingField is the declared field the accessors read and write.
	BackingField string
	HasGetter    bool
	HasSetter    bool
	// InitOnlySetter marks a setter usable only during construction. Only
	// set together with HasSetter, for readonly plain fields.
	InitOnlySetter bool
	// Delegated accessors call the capsule's Get/Set with the owning instance.
	Delegated bool
	// Location is the host location of the backing field.
	Location analyze.Location
}

// TypeResult is the outcome of processing one type.
type TypeResult struct {
	// Decl is the processed declaration.
	Decl *analyze.TypeDeclaration
	// Properties are the resolved properties in field declaration order.
	Properties []ResolvedProperty
	// Diagnostics are all diagnostics in field declaration order.
	Diagnostics diagnostic.Diagnostics
}
