// Package config merges the three configuration layers that apply to a
// generated property: the built-in defaults, the type-level settings and the
// member-level override.
//
// Every setting resolves independently. A layer wins with any explicit,
// recognised value; the Default sentinel (and any value outside the enum)
// defers to the next outer layer. Resolution never panics.
package config
