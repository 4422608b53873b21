package plan

import (
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propgen/internal/analyze"
	"propgen/internal/config"
	"propgen/internal/diagnostic"
)

func playerDecl() *analyze.TypeDeclaration {
	return &analyze.TypeDeclaration{
		ID:       playerID,
		Eligible: true,
		Location: analyze.Location{File: "Player.cs", Line: 3},
		Fields: []analyze.FieldDeclaration{
			{Name: "_name", Type: analyze.Plain("string"), Getter: true, Setter: true},
			{Name: "_untouched", Type: analyze.Plain("int")},
			{Name: "Level", Type: analyze.Plain("int"), Getter: true},
			{Name: "_score", Type: analyze.ReadOnlyCapsule("global::Props.LazyProperty<int>", "", "int"), ReadOnly: true},
			{Name: "m_id", Type: analyze.Plain("long"), ReadOnly: true, Getter: true, Setter: true},
		},
	}
}

func propertyNames(props []ResolvedProperty) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.PropertyName)
	}

	return out
}

func TestPass_ProcessKeepsFieldOrder(t *testing.T) {
	pass := NewPass(nil)

	result, ok := pass.Process(playerDecl())
	require.True(t, ok)

	assert.Equal(t, []string{"Name", "Score", "Id"}, propertyNames(result.Properties), spew.Sdump(result))
	assert.Equal(t, []diagnostic.Code{diagnostic.CodePropertyNameSameAsFieldName}, result.Diagnostics.Codes())
	assert.True(t, result.Properties[2].InitOnlySetter)
}

func TestPass_ProcessesEachTypeOnce(t *testing.T) {
	pass := NewPass(nil)

	first, ok := pass.Process(playerDecl())
	require.True(t, ok)
	require.NotEmpty(t, first.Properties)

	// Another fragment of the same type.
	fragment := playerDecl()
	fragment.Fields = fragment.Fields[:1]

	second, ok := pass.Process(fragment)
	assert.False(t, ok)
	assert.Empty(t, second.Properties)
	assert.Equal(t, 1, pass.Visited())

	// A new pass starts from scratch.
	_, ok = NewPass(nil).Process(playerDecl())
	assert.True(t, ok)
}

func TestPass_InvalidTypePattern(t *testing.T) {
	decl := playerDecl()
	decl.Config = &config.Settings{Prefix: "(_"}

	result, ok := NewPass(nil).Process(decl)
	require.True(t, ok)
	assert.Empty(t, result.Properties)
	require.Equal(t, 1, result.Diagnostics.Len())

	d := result.Diagnostics.Items[0]
	assert.Equal(t, diagnostic.CodeInvalidPrefixPattern, d.Code)
	assert.Equal(t, decl.Location, d.Location)
	assert.Contains(t, d.Message, "'(_'")
}

func TestPass_InvalidMemberPatternIsScoped(t *testing.T) {
	decl := playerDecl()
	decl.Fields[0].Config = &config.Settings{Prefix: "[_"}
	decl.Fields[0].Location = analyze.Location{File: "Player.cs", Line: 5}

	result, ok := NewPass(nil).Process(decl)
	require.True(t, ok)

	assert.Equal(t, []string{"Score", "Id"}, propertyNames(result.Properties))
	assert.Equal(t, []diagnostic.Code{
		diagnostic.CodeInvalidPrefixPattern,
		diagnostic.CodePropertyNameSameAsFieldName,
	}, result.Diagnostics.Codes())
	assert.Equal(t, 5, result.Diagnostics.Items[0].Location.Line)
	assert.Equal(t, "Game.Player._name", result.Diagnostics.Items[0].Subject)
}

func TestPass_DuplicatePropertyName(t *testing.T) {
	decl := &analyze.TypeDeclaration{
		ID: playerID,
		Fields: []analyze.FieldDeclaration{
			{Name: "_count", Type: analyze.Plain("int"), Getter: true},
			{Name: "m_count", Type: analyze.Plain("int"), Getter: true},
		},
	}

	result, _ := NewPass(nil).Process(decl)
	assert.Equal(t, []string{"Count"}, propertyNames(result.Properties))
	require.Equal(t, []diagnostic.Code{diagnostic.CodeDuplicatePropertyName}, result.Diagnostics.Codes())
	assert.Equal(t,
		"Property 'Count' generated from field 'm_count' is already generated from field '_count'",
		result.Diagnostics.Items[0].Message)
}

func TestPass_PropertyConflictsWithMember(t *testing.T) {
	decl := &analyze.TypeDeclaration{
		ID: playerID,
		Fields: []analyze.FieldDeclaration{
			{Name: "_value", Type: analyze.Plain("int"), Getter: true},
			{Name: "Value", Type: analyze.Plain("int")},
			{Name: "_player", Type: analyze.Plain("int"), Getter: true},
		},
	}

	result, _ := NewPass(nil).Process(decl)
	assert.Empty(t, result.Properties)
	assert.Equal(t, []diagnostic.Code{
		diagnostic.CodePropertyNameConflictsWithMember,
		diagnostic.CodePropertyNameConflictsWithMember,
	}, result.Diagnostics.Codes())
}

func TestPass_TypeLevelConfigApplies(t *testing.T) {
	decl := playerDecl()
	decl.Config = &config.Settings{Access: config.AccessProtected}
	decl.Fields[0].Config = &config.Settings{Access: config.AccessPrivate}

	result, _ := NewPass(nil).Process(decl)
	require.Len(t, result.Properties, 3)
	assert.Equal(t, config.AccessPrivate, result.Properties[0].Access)
	assert.Equal(t, config.AccessProtected, result.Properties[1].Access)
}

func TestPass_ConcurrentDistinctTypes(t *testing.T) {
	pass := NewPass(config.NewResolver())

	const n = 32

	var wg sync.WaitGroup

	results := make([]TypeResult, n)
	accepted := make([]bool, n)

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			decl := playerDecl()
			// Half the goroutines race on the same identity.
			decl.ID = analyze.NewTypeID("Game", nil, "Player", i%(n/2))
			results[i], accepted[i] = pass.Process(decl)
		}()
	}

	wg.Wait()

	count := 0
	for i := range n {
		if accepted[i] {
			count++
			assert.Len(t, results[i].Properties, 3)
		}
	}

	assert.Equal(t, n/2, count)
	assert.Equal(t, n/2, pass.Visited())
}
