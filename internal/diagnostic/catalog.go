package diagnostic

import "fmt"

// Code is the stable symbolic name of a rule.
type Code string

const (
	CodeDelegatedPropertyMustBeReadonly       Code = "DelegatedPropertyMustBeReadonly"
	CodeGetterRedundantForDelegatedProperty   Code = "GetterRedundantForDelegatedProperty"
	CodeSetterRedundantForDelegatedProperty   Code = "SetterRedundantForDelegatedProperty"
	CodeInvalidPropertyNameAfterPrefixRemoval Code = "InvalidPropertyNameAfterPrefixRemoval"
	CodePropertyNameSameAsFieldName           Code = "PropertyNameSameAsFieldName"
	CodeInvalidPrefixPattern                  Code = "InvalidPrefixPattern"
	CodeSetterUnsupportedForDelegatedProperty Code = "SetterUnsupportedForDelegatedProperty"
	CodeDuplicatePropertyName                 Code = "DuplicatePropertyName"
	CodePropertyNameConflictsWithMember       Code = "PropertyNameConflictsWithMember"
)

const categoryUsage = "Usage"

// Descriptor describes one rule. MessageFormat uses fmt indexed verbs.
type Descriptor struct {
	ID            string
	Code          Code
	Title         string
	MessageFormat string
	Category      string
	Severity      Severity
}

// Format renders the message with the given arguments.
func (d Descriptor) Format(args ...any) string {
	return fmt.Sprintf(d.MessageFormat, args...)
}

var (
	// DelegatedPropertyMustBeReadonly: a capsule-typed field is not readonly.
	// Args: field name, capsule type.
	DelegatedPropertyMustBeReadonly = Descriptor{
		ID:            "PA0001",
		Code:          CodeDelegatedPropertyMustBeReadonly,
		Title:         "Delegated property field must be readonly",
		MessageFormat: "Field '%[1]s' of delegated property type '%[2]s' must be declared readonly",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// GetterRedundantForDelegatedProperty: explicit getter marker on a capsule field.
	// Args: field name.
	GetterRedundantForDelegatedProperty = Descriptor{
		ID:            "PA0002",
		Code:          CodeGetterRedundantForDelegatedProperty,
		Title:         "Getter marker is redundant for delegated properties",
		MessageFormat: "Field '%[1]s' is a delegated property; its getter is implied and the Getter marker must be removed",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// SetterRedundantForDelegatedProperty: explicit setter marker on a read-write capsule field.
	// Args: field name.
	SetterRedundantForDelegatedProperty = Descriptor{
		ID:            "PA0003",
		Code:          CodeSetterRedundantForDelegatedProperty,
		Title:         "Setter marker is redundant for delegated read-write properties",
		MessageFormat: "Field '%[1]s' is a delegated read-write property; its setter is implied and the Setter marker must be removed",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// InvalidPropertyNameAfterPrefixRemoval: nothing is left once the prefix is removed.
	// Args: field name, prefix text.
	InvalidPropertyNameAfterPrefixRemoval = Descriptor{
		ID:            "PA0004",
		Code:          CodeInvalidPropertyNameAfterPrefixRemoval,
		Title:         "Property name is empty after prefix removal",
		MessageFormat: "Removing prefix '%[2]s' from field '%[1]s' leaves no property name",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// PropertyNameSameAsFieldName: the derived name equals the field name.
	// Args: field name.
	PropertyNameSameAsFieldName = Descriptor{
		ID:            "PA0005",
		Code:          CodePropertyNameSameAsFieldName,
		Title:         "Property name is identical to the field name",
		MessageFormat: "Property name derived from field '%[1]s' is identical to the field name; no property is generated",
		Category:      categoryUsage,
		Severity:      SeverityWarning,
	}

	// InvalidPrefixPattern: the configured prefix is not a valid regular expression.
	// Args: prefix text, parser reason.
	InvalidPrefixPattern = Descriptor{
		ID:            "PA0006",
		Code:          CodeInvalidPrefixPattern,
		Title:         "Prefix is not a valid regular expression",
		MessageFormat: "Prefix '%[1]s' is not a valid regular expression: %[2]s",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// SetterUnsupportedForDelegatedProperty: setter marker on a read-only capsule field.
	// Args: field name.
	SetterUnsupportedForDelegatedProperty = Descriptor{
		ID:            "PA0007",
		Code:          CodeSetterUnsupportedForDelegatedProperty,
		Title:         "Read-only delegated properties cannot have a setter",
		MessageFormat: "Field '%[1]s' is a read-only delegated property and cannot have a setter",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// DuplicatePropertyName: two members of a type derive the same property name.
	// Args: property name, field name, earlier field name.
	DuplicatePropertyName = Descriptor{
		ID:            "PA0008",
		Code:          CodeDuplicatePropertyName,
		Title:         "Property name is generated more than once",
		MessageFormat: "Property '%[1]s' generated from field '%[2]s' is already generated from field '%[3]s'",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}

	// PropertyNameConflictsWithMember: the derived name equals another declared member.
	// Args: property name, field name.
	PropertyNameConflictsWithMember = Descriptor{
		ID:            "PA0009",
		Code:          CodePropertyNameConflictsWithMember,
		Title:         "Property name conflicts with a declared member",
		MessageFormat: "Property '%[1]s' generated from field '%[2]s' conflicts with a member of the same name",
		Category:      categoryUsage,
		Severity:      SeverityError,
	}
)

var catalog = []Descriptor{
	DelegatedPropertyMustBeReadonly,
	GetterRedundantForDelegatedProperty,
	SetterRedundantForDelegatedProperty,
	InvalidPropertyNameAfterPrefixRemoval,
	PropertyNameSameAsFieldName,
	InvalidPrefixPattern,
	SetterUnsupportedForDelegatedProperty,
	DuplicatePropertyName,
	PropertyNameConflictsWithMember,
}

// Catalog returns every rule in ID order.
func Catalog() []Descriptor {
	return append([]Descriptor(nil), catalog...)
}

// Lookup finds a rule by code.
func Lookup(code Code) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Code == code {
			return d, true
		}
	}

	return Descriptor{}, false
}
