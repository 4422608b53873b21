package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"propgen/internal/analyze"
	"propgen/internal/diagnostic"
	"propgen/internal/gen"
)

func sampleDiagnostics() diagnostic.Diagnostics {
	var ds diagnostic.Diagnostics
	ds.Report(diagnostic.DelegatedPropertyMustBeReadonly,
		analyze.Location{File: "Player.cs", Line: 12, Column: 5}, "Game.Player._score", "_score", "Lazy<int>")
	ds.Report(diagnostic.PropertyNameSameAsFieldName, analyze.Location{}, "Game.Player.Level", "Level")

	return ds
}

func TestPrinter_DiagnosticsPlain(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf, false).Diagnostics(sampleDiagnostics())

	ds := sampleDiagnostics()
	assert.Equal(t, ds.Items[0].String()+"\n"+ds.Items[1].String()+"\n", buf.String())
	assert.Contains(t, buf.String(), "Player.cs(12,5): error PA0001: ")
	assert.Contains(t, buf.String(), "Game.Player.Level: warning PA0005: ")
}

func TestPrinter_DiagnosticsColored(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf, true).Diagnostics(sampleDiagnostics())

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "PA0001")
}

func TestPrinter_Stale(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf, false).Stale([]gen.Staleness{
		{Filename: "A.g.cs", Missing: true},
		{Filename: "B.g.cs", Diff: "  a\n- b\n+ c\n"},
	})

	assert.Equal(t, "A.g.cs: missing\nB.g.cs: out of date\n  a\n- b\n+ c\n", buf.String())
}

func TestPrinter_Summary(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "write mode",
			summary: Summary{Types: 2, Properties: 1, Files: 2, Written: 1, Warnings: 1},
			want:    "propgen: 2 types, 1 property, 1 of 2 files written, 0 errors, 1 warning\n",
		},
		{
			name:    "check mode",
			summary: Summary{Types: 1, Properties: 3, Files: 1, Stale: 1, Errors: 2, Check: true},
			want:    "propgen: 1 type, 3 properties, 1 of 1 file stale, 2 errors, 0 warnings\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			NewPrinter(&buf, false).Summary(tt.summary)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
