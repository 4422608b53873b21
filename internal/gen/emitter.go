package gen

import (
	"propgen/internal/plan"
)

const indentUnit = "    "

// Render returns the accessor block for one resolved property.
// A nil property, or one without accessors, renders nothing.
//
// Example output:
//
//	public int Health
//	{
//	    get => _health;
//	    set => _health = value;
//	}
func Render(prop *plan.ResolvedProperty) []string {
	if prop == nil || (!prop.HasGetter && !prop.HasSetter) {
		return nil
	}

	field := backingRef(prop.BackingField)
	lines := []string{
		prop.Access.Keyword() + " " + prop.ExposedType + " " + EscapeIdentifier(prop.PropertyName),
		"{",
	}

	if prop.HasGetter {
		lines = append(lines, indentUnit+getterLine(prop, field))
	}

	if prop.HasSetter {
		lines = append(lines, indentUnit+setterLine(prop, field))
	}

	return append(lines, "}")
}

func getterLine(prop *plan.ResolvedProperty, field string) string {
	if prop.Delegated {
		return "get => " + field + ".Get(this);"
	}

	return "get => " + field + ";"
}

func setterLine(prop *plan.ResolvedProperty, field string) string {
	switch {
	case prop.Delegated:
		return "set => " + field + ".Set(this, value);"
	case prop.InitOnlySetter:
		return "init => " + field + " = value;"
	default:
		return "set => " + field + " = value;"
	}
}

// backingRef returns the expression naming the backing field inside an
// accessor body. A field named "value" is shadowed by the setter parameter.
func backingRef(name string) string {
	if name == "value" {
		return "this.value"
	}

	return EscapeIdentifier(name)
}

// JoinBlocks concatenates rendered blocks with a blank line between them.
// Empty blocks are skipped.
func JoinBlocks(blocks [][]string) []string {
	var out []string

	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}

		if len(out) > 0 {
			out = append(out, "")
		}

		out = append(out, block...)
	}

	return out
}
