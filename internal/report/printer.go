package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"propgen/internal/diagnostic"
	"propgen/internal/gen"
)

// Printer writes reports to an output stream.
type Printer struct {
	out io.Writer

	errorColor   *color.Color
	warningColor *color.Color
	pathColor    *color.Color
	addColor     *color.Color
	delColor     *color.Color
}

// NewPrinter creates a Printer. Colors are forced on or off regardless of
// whether out is a terminal.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:          out,
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		pathColor:    color.New(color.Bold),
		addColor:     color.New(color.FgGreen),
		delColor:     color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.errorColor, p.warningColor, p.pathColor, p.addColor, p.delColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Diagnostic prints one diagnostic as a compiler-style line.
func (p *Printer) Diagnostic(d diagnostic.Diagnostic) {
	where := d.Location.String()
	if where == "" {
		where = d.Subject
	}

	if where != "" {
		fmt.Fprint(p.out, p.pathColor.Sprint(where), ": ")
	}

	sev := p.severityColor(d.Severity).Sprint(d.Severity.String())
	if d.ID != "" {
		sev += " " + d.ID
	}

	fmt.Fprintf(p.out, "%s: %s\n", sev, d.Message)
}

// Diagnostics prints every diagnostic in order.
func (p *Printer) Diagnostics(ds diagnostic.Diagnostics) {
	for _, d := range ds.Items {
		p.Diagnostic(d)
	}
}

func (p *Printer) severityColor(s diagnostic.Severity) *color.Color {
	if s == diagnostic.SeverityError {
		return p.errorColor
	}

	return p.warningColor
}

// Stale prints every missing or out-of-date artifact with its diff.
func (p *Printer) Stale(stale []gen.Staleness) {
	for _, s := range stale {
		if s.Missing {
			fmt.Fprintf(p.out, "%s: missing\n", p.pathColor.Sprint(s.Filename))
			continue
		}

		fmt.Fprintf(p.out, "%s: out of date\n", p.pathColor.Sprint(s.Filename))

		for _, line := range strings.SplitAfter(s.Diff, "\n") {
			switch {
			case line == "":
			case strings.HasPrefix(line, "+ "):
				fmt.Fprint(p.out, p.addColor.Sprint(line))
			case strings.HasPrefix(line, "- "):
				fmt.Fprint(p.out, p.delColor.Sprint(line))
			default:
				fmt.Fprint(p.out, line)
			}
		}
	}
}

// Summary describes a finished run.
type Summary struct {
	Types      int
	Properties int
	Files      int
	// Written is the number of files actually written; ignored in check mode.
	Written  int
	Stale    int
	Errors   int
	Warnings int
	Check    bool
}

// Summary prints a one-line summary of the run.
func (p *Printer) Summary(s Summary) {
	parts := []string{
		plural(s.Types, "type", "types"),
		plural(s.Properties, "property", "properties"),
	}

	if s.Check {
		parts = append(parts, fmt.Sprintf("%d of %s stale", s.Stale, plural(s.Files, "file", "files")))
	} else {
		parts = append(parts, fmt.Sprintf("%d of %s written", s.Written, plural(s.Files, "file", "files")))
	}

	errs := plural(s.Errors, "error", "errors")
	if s.Errors > 0 {
		errs = p.errorColor.Sprint(errs)
	}

	warns := plural(s.Warnings, "warning", "warnings")
	if s.Warnings > 0 {
		warns = p.warningColor.Sprint(warns)
	}

	parts = append(parts, errs, warns)

	fmt.Fprintf(p.out, "propgen: %s\n", strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return fmt.Sprintf("%d %s", n, many)
}
