// Package diagnostic provides the fixed catalog of property generation
// rules and the structured diagnostics reported against them.
//
// Diagnostics are values: classification never aborts on them. Each one
// carries a stable ID and code, a severity, a formatted message, the host
// location of the offending declaration and the member path it concerns.
package diagnostic
