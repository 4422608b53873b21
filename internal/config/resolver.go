package config

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"propgen/internal/naming"
)

// DefaultCacheSize bounds the number of compiled prefix patterns kept by a Resolver.
const DefaultCacheSize = 256

// Settings is one configuration layer, as declared on a type or a member.
// Zero values defer to the next layer.
type Settings struct {
	Access AccessModifier
	// Prefix is the raw prefix pattern text. Blank text defers.
	Prefix string
	Naming naming.Rule
}

// IsZero reports whether every setting defers.
func (s *Settings) IsZero() bool {
	return s == nil || (!s.Access.IsSet() && !namingSet(s.Naming) && strings.TrimSpace(s.Prefix) == "")
}

// Effective is a fully merged configuration for one member.
type Effective struct {
	Access AccessModifier
	Prefix *regexp.Regexp
	// PrefixText is the pattern as configured, before anchoring.
	PrefixText string
	Naming     naming.Rule
}

// PatternError reports a prefix that failed to compile.
type PatternError struct {
	Text string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("prefix %q: %v", e.Text, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Reason returns the regular expression parser's description of the failure.
func (e *PatternError) Reason() string {
	var se *syntax.Error
	if errors.As(e.Err, &se) {
		return fmt.Sprintf("%s: `%s`", se.Code, se.Expr)
	}

	return e.Err.Error()
}

type compiled struct {
	re  *regexp.Regexp
	err error
}

// Resolver merges configuration layers. It is safe for concurrent use; the
// compiled pattern cache is shared by every call.
type Resolver struct {
	defaults Effective
	cache    *lru.Cache[string, compiled]
}

// NewResolver creates a Resolver with the built-in defaults:
// public access, the ^(_|m_) prefix and PascalCase naming.
func NewResolver() *Resolver {
	cache, err := lru.New[string, compiled](DefaultCacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}

	r := &Resolver{cache: cache}
	r.defaults = Effective{
		Access:     AccessPublic,
		Prefix:     r.compile(naming.DefaultPrefix).re,
		PrefixText: naming.DefaultPrefix,
		Naming:     naming.PascalCase,
	}

	return r
}

// NewResolverWith creates a Resolver whose outermost layer is the project
// settings layered over the built-in defaults. Nil project settings give
// the built-in defaults.
func NewResolverWith(project *Settings) (*Resolver, error) {
	r := NewResolver()

	defaults, err := r.layer(project, r.defaults)
	if err != nil {
		return nil, err
	}

	r.defaults = defaults

	return r, nil
}

// Defaults returns the outermost layer.
func (r *Resolver) Defaults() Effective {
	return r.defaults
}

// ResolveType layers type-level settings (nil allowed) over the defaults.
func (r *Resolver) ResolveType(s *Settings) (Effective, error) {
	return r.layer(s, r.defaults)
}

// ResolveField layers member-level settings (nil allowed) over the
// effective configuration of the declaring type.
func (r *Resolver) ResolveField(s *Settings, outer Effective) (Effective, error) {
	return r.layer(s, outer)
}

func (r *Resolver) layer(s *Settings, outer Effective) (Effective, error) {
	eff := outer
	if s == nil {
		return eff, nil
	}

	if s.Access.IsSet() {
		eff.Access = s.Access
	}

	if namingSet(s.Naming) {
		eff.Naming = s.Naming
	}

	if strings.TrimSpace(s.Prefix) != "" {
		c := r.compile(s.Prefix)
		if c.err != nil {
			return Effective{}, &PatternError{Text: s.Prefix, Err: c.err}
		}

		eff.Prefix = c.re
		eff.PrefixText = s.Prefix
	}

	return eff, nil
}

func (r *Resolver) compile(text string) compiled {
	if c, ok := r.cache.Get(text); ok {
		return c
	}

	re, err := naming.CompilePrefix(text)
	c := compiled{re: re, err: err}
	r.cache.Add(text, c)

	return c
}

func namingSet(rule naming.Rule) bool {
	return rule == naming.PascalCase || rule == naming.CamelCase
}
