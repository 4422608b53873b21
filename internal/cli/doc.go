// Package cli implements the propgen command: flag parsing, the
// propgen.toml project file, .env defaults and the run loop that loads
// manifests, drives generation and writes or checks artifacts.
//
// Settings are layered, highest precedence first: flags, environment
// (including .env), propgen.toml, built-in defaults.
package cli
