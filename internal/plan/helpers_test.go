package plan

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"propgen/internal/naming"
)

func regexpFor(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()

	re, err := naming.CompilePrefix(pattern)
	require.NoError(t, err)

	return re
}
