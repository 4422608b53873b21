package naming

import "strings"

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule selects how the first rune of a derived property name is cased.
type Rule int

const (
	// RuleDefault defers to the next configuration layer.
	RuleDefault Rule = iota
	PascalCase
	CamelCase
)

// ruleNames lists the accepted spellings for each rule, lowercased.
var ruleNames = map[string]Rule{
	"default":    RuleDefault,
	"pascal":     PascalCase,
	"pascalcase": PascalCase,
	"camel":      CamelCase,
	"camelcase":  CamelCase,
}

// ParseRule parses a rule name case-insensitively.
// Unknown names return RuleDefault and false.
func ParseRule(s string) (Rule, bool) {
	r, ok := ruleNames[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

// RuleNames returns the canonical names accepted by ParseRule.
func RuleNames() []string {
	return []string{"default", "pascal", "camel"}
}
