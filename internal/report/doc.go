// Package report prints pass results for humans: compiler-style
// diagnostic lines, stale artifact diffs and a one-line summary.
package report
