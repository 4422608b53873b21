package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID_String(t *testing.T) {
	id := NewTypeID("Game.Model", nil, "Player", 0)
	assert.Equal(t, "Game.Model.Player", id.String())

	nested := NewTypeID("Game", []Container{{Name: "Outer", TypeParameters: []string{"T"}}, {Name: "Inner"}}, "Box", 2)
	assert.Equal(t, "Game.Outer`1.Inner.Box`2", nested.String())

	// Global namespace.
	assert.Equal(t, "Player", NewTypeID("", nil, "Player", 0).String())
}

func TestTypeID_Comparable(t *testing.T) {
	a := NewTypeID("Game", []Container{{Name: "Outer"}}, "Player", 0)
	b := NewTypeID("Game", []Container{{Name: "Outer", Kind: KindStruct}}, "Player", 0)

	seen := map[TypeID]bool{a: true}
	assert.True(t, seen[b], "identity ignores container kinds")
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "", Location{}.String())
	assert.Equal(t, "Player.cs", Location{File: "Player.cs"}.String())
	assert.Equal(t, "Player.cs(12)", Location{File: "Player.cs", Line: 12}.String())
	assert.Equal(t, "Player.cs(12,5)", Location{File: "Player.cs", Line: 12, Column: 5}.String())
}

func TestParseTypeKind(t *testing.T) {
	cases := map[string]TypeKind{
		"":              KindClass,
		"class":         KindClass,
		"Struct":        KindStruct,
		"record":        KindRecord,
		"record  class": KindRecord,
		"record struct": KindRecordStruct,
		"interface":     KindInterface,
	}

	for in, want := range cases {
		got, ok := ParseTypeKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseTypeKind("enum")
	assert.False(t, ok)
}

func TestTypeKind_Keyword(t *testing.T) {
	assert.Equal(t, "record struct", KindRecordStruct.Keyword())
	assert.Equal(t, "class", TypeKind(42).Keyword())
	assert.Equal(t, "unknown", TypeKind(42).String())
}

func TestFieldDeclaration_IsCandidate(t *testing.T) {
	plain := FieldDeclaration{Name: "_x", Type: Plain("int")}
	assert.False(t, plain.IsCandidate())

	plain.Getter = true
	assert.True(t, plain.IsCandidate())

	capsule := FieldDeclaration{Name: "_x", Type: ReadOnlyCapsule("global::Lazy<int>", "", "int")}
	assert.True(t, capsule.IsCandidate())
	assert.Equal(t, "readonly", capsule.Type.Capsule.String())
}

func TestTypeDeclaration_HasField(t *testing.T) {
	decl := &TypeDeclaration{Fields: []FieldDeclaration{{Name: "_a"}, {Name: "B"}}}
	assert.True(t, decl.HasField("B"))
	assert.False(t, decl.HasField("A"))
}
