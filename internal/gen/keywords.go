package gen

// reservedWords are the C# keywords that cannot be used as plain identifiers.
// Contextual keywords (get, set, init, value, var, ...) are valid identifiers
// and are not listed.
var reservedWords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {},
	"byte": {}, "case": {}, "catch": {}, "char": {}, "checked": {},
	"class": {}, "const": {}, "continue": {}, "decimal": {}, "default": {},
	"delegate": {}, "do": {}, "double": {}, "else": {}, "enum": {},
	"event": {}, "explicit": {}, "extern": {}, "false": {}, "finally": {},
	"fixed": {}, "float": {}, "for": {}, "foreach": {}, "goto": {},
	"if": {}, "implicit": {}, "in": {}, "int": {}, "interface": {},
	"internal": {}, "is": {}, "lock": {}, "long": {}, "namespace": {},
	"new": {}, "null": {}, "object": {}, "operator": {}, "out": {},
	"override": {}, "params": {}, "private": {}, "protected": {}, "public": {},
	"readonly": {}, "ref": {}, "return": {}, "sbyte": {}, "sealed": {},
	"short": {}, "sizeof": {}, "stackalloc": {}, "static": {}, "string": {},
	"struct": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "uint": {}, "ulong": {}, "unchecked": {},
	"unsafe": {}, "ushort": {}, "using": {}, "virtual": {}, "void": {},
	"volatile": {}, "while": {},
}

// IsReserved reports whether name is a reserved word.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// EscapeIdentifier prefixes reserved words with '@'.
// Example: "event" -> "@event", "Health" -> "Health"
func EscapeIdentifier(name string) string {
	if IsReserved(name) {
		return "@" + name
	}

	return name
}
