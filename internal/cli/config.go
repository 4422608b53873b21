package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config stores command line options for a single run. Zero values mean
// "not given on the command line".
type Config struct {
	Manifests     []string
	OutDir        string
	ConfigPath    string
	Jobs          int
	Check         bool
	Color         string
	FailOnWarning bool
	Verbosity     int
	ShowVersion   bool
	ShowHelp      bool
}

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("propgen", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringArrayVarP(&cfg.Manifests, "manifest", "m", nil, "declaration manifest (repeatable)")
	fs.StringVarP(&cfg.OutDir, "out", "o", "", "output directory for generated files")
	fs.StringVarP(&cfg.ConfigPath, "config", "c", "", "project file (default: nearest propgen.toml)")
	fs.IntVarP(&cfg.Jobs, "jobs", "j", 0, "types processed in parallel (default: GOMAXPROCS)")
	fs.BoolVar(&cfg.Check, "check", false, "report stale artifacts instead of writing them")
	fs.StringVar(&cfg.Color, "color", "", "colorize output: auto, always or never")
	fs.BoolVar(&cfg.FailOnWarning, "fail-on-warning", false, "exit with failure on warnings")
	fs.CountVarP(&cfg.Verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "show usage")

	return fs
}

// ParseArgs parses command line arguments into Config. Positional
// arguments are treated as additional manifests.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowHelp || cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Manifests = append(cfg.Manifests, fs.Args()...)

	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("--jobs must not be negative, got %d", cfg.Jobs)
	}

	if cfg.Color != "" {
		if err := validateColor(cfg.Color); err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
	}

	return cfg, nil
}

// Usage returns the help text.
func Usage() string {
	return "Usage: propgen [flags] [manifest...]\n\nFlags:\n" + newFlagSet(&Config{}).FlagUsages()
}

func validateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (want %s, %s or %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
}
