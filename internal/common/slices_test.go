package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "out", Coalesce("", "out", "gen"))
	assert.Equal(t, 4, Coalesce(0, 0, 4))
	assert.Equal(t, "", Coalesce[string]())
	assert.True(t, IsEmpty([]int{}))
}
