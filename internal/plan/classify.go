package plan

import (
	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/diagnostic"
	"propgen/internal/naming"
)

// Classify resolves one field under its effective configuration.
//
// It returns nil when the field produces no property; the diagnostics
// collected so far are returned either way. Error diagnostics suppress only
// the capability they concern: a redundant marker keeps the implied
// accessor, a mutable capsule field loses its delegated accessors.
func Classify(owner analyze.TypeID, field *analyze.FieldDeclaration, eff config.Effective) (*ResolvedProperty, []diagnostic.Diagnostic) {
	var diags diagnostic.Diagnostics

	subject := analyze.NewMemberPath(owner.String()).Member(field.Name).String()
	report := func(d diagnostic.Descriptor, args ...any) {
		diags.Report(d, field.Location, subject, args...)
	}

	hasGetter := field.Getter
	hasSetter := field.Setter
	exposed := field.Type.Display

	name := naming.Derive(field.Name, eff.Prefix, eff.Naming)
	if name == "" {
		report(diagnostic.InvalidPropertyNameAfterPrefixRemoval, field.Name, eff.PrefixText)
		return nil, diags.Items
	}

	if name == field.Name {
		report(diagnostic.PropertyNameSameAsFieldName, field.Name)
		return nil, diags.Items
	}

	delegated := field.Type.IsCapsule()

	switch field.Type.Capsule {
	case analyze.CapsuleReadOnly:
		exposed = field.Type.Value

		if !field.ReadOnly {
			report(diagnostic.DelegatedPropertyMustBeReadonly, field.Name, field.Type.Display)
			hasGetter = false
		} else {
			if field.Getter {
				report(diagnostic.GetterRedundantForDelegatedProperty, field.Name)
			}

			hasGetter = true
		}

		// No set operation to delegate to.
		if field.Setter {
			report(diagnostic.SetterUnsupportedForDelegatedProperty, field.Name)
			hasSetter = false
		}

	case analyze.CapsuleReadWrite:
		exposed = field.Type.Value

		if !field.ReadOnly {
			report(diagnostic.DelegatedPropertyMustBeReadonly, field.Name, field.Type.Display)
			hasGetter = false
			hasSetter = false

			break
		}

		if field.Getter {
			report(diagnostic.GetterRedundantForDelegatedProperty, field.Name)
		}

		if field.Setter {
			report(diagnostic.SetterRedundantForDelegatedProperty, field.Name)
		}

		hasGetter = true
		hasSetter = true

	case analyze.CapsuleNone:
		// Plain fields only expose what their markers request.
	}

	if !hasGetter && !hasSetter {
		return nil, diags.Items
	}

	return &ResolvedProperty{
		Access:         eff.Access,
		ExposedType:    exposed,
		PropertyName:   name,
		BackingField:   field.Name,
		HasGetter:      hasGetter,
		HasSetter:      hasSetter,
		InitOnlySetter: hasSetter && !delegated && field.ReadOnly,
		Delegated:      delegated,
		Location:       field.Location,
	}, diags.Items
}
