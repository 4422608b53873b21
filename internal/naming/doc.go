// Package naming derives property names from backing field names.
//
// A property name is the field name with its leading prefix removed once,
// re-cased on its first rune according to a Rule:
//
//	_name   + ^(_|m_) + PascalCase -> Name
//	m_count + ^(_|m_) + CamelCase  -> count
//
// Prefix patterns are regular expressions. They are always anchored to the
// start of the name: text that does not already begin with ^ or \A is wrapped
// as ^(?:text) before compilation.
package naming
