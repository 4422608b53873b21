package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberPath(t *testing.T) {
	p1 := NewMemberPath("Game.Player")
	assert.Equal(t, "Game.Player", p1.String())

	p2 := p1.Member("_health")
	assert.Equal(t, "Game.Player._health", p2.String())

	// The parent path is not modified.
	assert.Equal(t, "Game.Player", p1.String())
}

func TestFieldPath(t *testing.T) {
	decl := &TypeDeclaration{
		ID: NewTypeID("Game", []Container{{Name: "World"}}, "Player", 0),
	}

	assert.Equal(t, "Game.World.Player._health", FieldPath(decl, "_health"))
}

func TestGenericName(t *testing.T) {
	assert.Equal(t, "Player", GenericName("Player", nil))
	assert.Equal(t, "Box<TKey, TValue>", GenericName("Box", []string{"TKey", "TValue"}))
}
