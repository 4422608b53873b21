package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propgen/internal/naming"
)

func TestResolver_Defaults(t *testing.T) {
	r := NewResolver()

	eff, err := r.ResolveType(nil)
	require.NoError(t, err)
	assert.Equal(t, AccessPublic, eff.Access)
	assert.Equal(t, naming.PascalCase, eff.Naming)
	assert.Equal(t, "^(_|m_)", eff.PrefixText)
	require.NotNil(t, eff.Prefix)
	assert.Equal(t, "Count", naming.Derive("m_count", eff.Prefix, eff.Naming))
}

func TestResolver_SentinelDefers(t *testing.T) {
	r := NewResolver()

	typeEff, err := r.ResolveType(&Settings{})
	require.NoError(t, err)
	assert.Equal(t, r.Defaults().Access, typeEff.Access)

	fieldEff, err := r.ResolveField(&Settings{Prefix: "   "}, typeEff)
	require.NoError(t, err)
	assert.Equal(t, typeEff.PrefixText, fieldEff.PrefixText)
}

func TestResolver_LayersIndependently(t *testing.T) {
	r := NewResolver()

	typeEff, err := r.ResolveType(&Settings{Access: AccessInternal, Prefix: "f_"})
	require.NoError(t, err)
	assert.Equal(t, AccessInternal, typeEff.Access)
	assert.Equal(t, "f_", typeEff.PrefixText)
	assert.Equal(t, naming.PascalCase, typeEff.Naming)

	fieldEff, err := r.ResolveField(&Settings{Naming: naming.CamelCase}, typeEff)
	require.NoError(t, err)
	assert.Equal(t, AccessInternal, fieldEff.Access, "access comes from the type layer")
	assert.Equal(t, "f_", fieldEff.PrefixText, "prefix comes from the type layer")
	assert.Equal(t, naming.CamelCase, fieldEff.Naming, "naming comes from the member layer")

	fieldEff, err = r.ResolveField(&Settings{Access: AccessPrivate, Prefix: "^x"}, typeEff)
	require.NoError(t, err)
	assert.Equal(t, AccessPrivate, fieldEff.Access)
	assert.Equal(t, "^x", fieldEff.PrefixText)
}

func TestResolver_OutOfRangeValuesDefer(t *testing.T) {
	r := NewResolver()

	eff, err := r.ResolveType(&Settings{Access: AccessModifier(42), Naming: naming.Rule(-3)})
	require.NoError(t, err)
	assert.Equal(t, AccessPublic, eff.Access)
	assert.Equal(t, naming.PascalCase, eff.Naming)
}

func TestResolver_InvalidPattern(t *testing.T) {
	r := NewResolver()

	_, err := r.ResolveType(&Settings{Prefix: "(_"})
	require.Error(t, err)

	var pe *PatternError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "(_", pe.Text)
	assert.Contains(t, pe.Reason(), "missing closing )")
	assert.ErrorIs(t, err, naming.ErrInvalidPattern)

	// Cached failures are reported again.
	_, err = r.ResolveField(&Settings{Prefix: "(_"}, r.Defaults())
	assert.Error(t, err)
}

func TestResolver_CachesCompiledPatterns(t *testing.T) {
	r := NewResolver()

	a, err := r.ResolveType(&Settings{Prefix: "s_"})
	require.NoError(t, err)
	b, err := r.ResolveField(&Settings{Prefix: "s_"}, r.Defaults())
	require.NoError(t, err)

	assert.Same(t, a.Prefix, b.Prefix)
}

func TestSettings_IsZero(t *testing.T) {
	var nilSettings *Settings
	assert.True(t, nilSettings.IsZero())
	assert.True(t, (&Settings{Prefix: " "}).IsZero())
	assert.False(t, (&Settings{Naming: naming.CamelCase}).IsZero())
}

func TestAccessModifier(t *testing.T) {
	a, ok := ParseAccess("Protected Internal")
	assert.True(t, ok)
	assert.Equal(t, AccessProtectedInternal, a)
	assert.Equal(t, "protected internal", a.Keyword())

	a, ok = ParseAccess("private_protected")
	assert.True(t, ok)
	assert.Equal(t, "private protected", a.Keyword())

	_, ok = ParseAccess("publik")
	assert.False(t, ok)

	assert.Equal(t, "public", AccessDefault.Keyword())
	assert.Equal(t, "file", AccessFile.Keyword())
	assert.Equal(t, "ProtectedInternal", AccessProtectedInternal.String())
	assert.False(t, AccessModifier(99).IsSet())
}

func TestNewResolverWith_ProjectDefaults(t *testing.T) {
	r, err := NewResolverWith(&Settings{Access: AccessInternal, Naming: naming.CamelCase})
	require.NoError(t, err)

	eff, err := r.ResolveType(nil)
	require.NoError(t, err)
	assert.Equal(t, AccessInternal, eff.Access)
	assert.Equal(t, naming.CamelCase, eff.Naming)
	assert.Equal(t, naming.DefaultPrefix, eff.PrefixText)

	typeEff, err := r.ResolveType(&Settings{Access: AccessPrivate})
	require.NoError(t, err)
	assert.Equal(t, AccessPrivate, typeEff.Access)
	assert.Equal(t, naming.CamelCase, typeEff.Naming)
}

func TestNewResolverWith_InvalidPrefix(t *testing.T) {
	_, err := NewResolverWith(&Settings{Prefix: "(["})

	var pe *PatternError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "([", pe.Text)
}
