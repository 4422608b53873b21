package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Staleness describes an artifact whose file on disk does not match the
// generated content.
type Staleness struct {
	Filename string
	// Missing is true when no file exists on disk.
	Missing bool
	// Diff is a line diff from the file on disk to the generated content,
	// with "-" and "+" line prefixes. Empty when Missing.
	Diff string
}

// Check compares generated files against the output directory and returns
// every artifact that is missing or out of date, in input order.
func Check(files []GeneratedFile, outputDir string) ([]Staleness, error) {
	var stale []Staleness

	for _, file := range files {
		existing, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, Staleness{Filename: file.Filename, Missing: true})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if string(existing) == string(file.Content) {
			continue
		}

		stale = append(stale, Staleness{
			Filename: file.Filename,
			Diff:     LineDiff(string(existing), string(file.Content)),
		})
	}

	return stale, nil
}

// LineDiff returns a line-oriented diff between from and to. Unchanged lines
// are prefixed with two spaces, removed lines with "- " and added lines
// with "+ ".
func LineDiff(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		prefix := "  "

		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
