package cli

import (
	"errors"
	"path/filepath"

	"github.com/fatih/color"

	"propgen/internal/common"
	"propgen/internal/config"
)

// DefaultOutDir is the output directory used when no layer sets one.
const DefaultOutDir = "Generated"

// ErrNoManifest is returned when neither flags nor the project name a manifest.
var ErrNoManifest = errors.New("no manifest given (use --manifest or manifests in " + ProjectFileName + ")")

// Settings is the fully layered configuration of a run.
type Settings struct {
	Manifests     []string
	OutDir        string
	Jobs          int
	Check         bool
	UseColor      bool
	FailOnWarning bool
	Verbosity     int
	// Defaults is the project-wide configuration layer, nil when unset.
	Defaults *config.Settings
}

// Resolve layers flags over the environment over the project file. Paths
// given on the command line or in the environment are relative to dir.
// project may be nil.
func Resolve(flags *Config, env Env, project *Project, dir string) (Settings, error) {
	if project == nil {
		project = &Project{}
	}

	s := Settings{
		Check:         flags.Check,
		FailOnWarning: flags.FailOnWarning || project.FailOnWarning,
		Verbosity:     flags.Verbosity,
		Jobs:          common.Coalesce(flags.Jobs, env.Jobs, project.Jobs),
	}

	for _, m := range flags.Manifests {
		s.Manifests = append(s.Manifests, under(dir, m))
	}

	if len(s.Manifests) == 0 {
		s.Manifests = project.Manifests
	}

	if len(s.Manifests) == 0 {
		return Settings{}, ErrNoManifest
	}

	s.OutDir = common.Coalesce(under(dir, flags.OutDir), under(dir, env.Out), project.Out, under(dir, DefaultOutDir))

	switch common.Coalesce(flags.Color, project.Color, ColorAuto) {
	case ColorAlways:
		s.UseColor = true
	case ColorNever:
		s.UseColor = false
	default:
		s.UseColor = !color.NoColor && !env.NoColor
	}

	defaults, err := project.Defaults.Settings()
	if err != nil {
		return Settings{}, err
	}

	if !defaults.IsZero() {
		s.Defaults = defaults
	}

	return s, nil
}

// under resolves a relative path against dir. Empty paths stay empty.
func under(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
