package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ReportsMissingAndStale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Same.g.cs"), []byte("x\n"), filePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Old.g.cs"), []byte("a\nb\nc\n"), filePerm))

	stale, err := Check([]GeneratedFile{
		{Filename: "Same.g.cs", Content: []byte("x\n")},
		{Filename: "Old.g.cs", Content: []byte("a\nB\nc\n")},
		{Filename: "New.g.cs", Content: []byte("n\n")},
	}, dir)
	require.NoError(t, err)
	require.Len(t, stale, 2)

	assert.Equal(t, "Old.g.cs", stale[0].Filename)
	assert.False(t, stale[0].Missing)
	assert.Equal(t, "  a\n- b\n+ B\n  c\n", stale[0].Diff)

	assert.Equal(t, Staleness{Filename: "New.g.cs", Missing: true}, stale[1])
}

func TestCheck_UpToDate(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{{Filename: "A.g.cs", Content: []byte("a\n")}}

	_, err := WriteFiles(files, dir)
	require.NoError(t, err)

	stale, err := Check(files, dir)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestLineDiff_NoTrailingNewline(t *testing.T) {
	assert.Equal(t, "  a\n- b\n+ c\n", LineDiff("a\nb", "a\nc"))
}
