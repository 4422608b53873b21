package diagnostic

import (
	"errors"
	"strings"

	"propgen/internal/analyze"
	"propgen/internal/common"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single reported rule violation.
type Diagnostic struct {
	// ID is the descriptor ID, e.g. "PA0001".
	ID string
	// Code is the stable symbolic name of the rule.
	Code Code
	// Severity of the diagnostic.
	Severity Severity
	// Message is the human-readable description with arguments substituted.
	Message string
	// Location is the host location of the offending declaration.
	Location analyze.Location
	// Subject is the member path the diagnostic concerns, e.g. "Game.Player._health".
	Subject string
}

// New creates a diagnostic for descriptor d.
func New(d Descriptor, loc analyze.Location, subject string, args ...any) Diagnostic {
	return Diagnostic{
		ID:       d.ID,
		Code:     d.Code,
		Severity: d.Severity,
		Message:  d.Format(args...),
		Location: loc,
		Subject:  subject,
	}
}

// String returns a compiler-style line:
// "Player.cs(12,5): error PA0001: message".
// The subject stands in for the location when none is known.
func (d Diagnostic) String() string {
	var b strings.Builder

	where := d.Location.String()
	if where == "" {
		where = d.Subject
	}

	if where != "" {
		b.WriteString(where)
		b.WriteString(": ")
	}

	b.WriteString(d.Severity.String())

	if d.ID != "" {
		b.WriteString(" ")
		b.WriteString(d.ID)
	}

	b.WriteString(": ")
	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics struct {
	Items []Diagnostic
}

// Add appends diagnostics, keeping their order.
func (d *Diagnostics) Add(items ...Diagnostic) {
	d.Items = append(d.Items, items...)
}

// Report creates a diagnostic for descriptor desc and appends it.
func (d *Diagnostics) Report(desc Descriptor, loc analyze.Location, subject string, args ...any) {
	d.Items = append(d.Items, New(desc, loc, subject, args...))
}

// Merge appends every diagnostic of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}

// Errors returns the error diagnostics in order.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.filter(SeverityError)
}

// Warnings returns the warning diagnostics in order.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.filter(SeverityWarning)
}

func (d *Diagnostics) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.Items {
		if item.Severity == s {
			out = append(out, item)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.Items {
		if item.Severity == SeverityError {
			return true
		}
	}

	return false
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	for _, item := range d.Items {
		if item.Severity == SeverityWarning {
			return true
		}
	}

	return false
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Codes returns the codes of all diagnostics in order.
func (d *Diagnostics) Codes() []Code {
	codes := make([]Code, 0, len(d.Items))
	for _, item := range d.Items {
		codes = append(codes, item.Code)
	}

	return codes
}
