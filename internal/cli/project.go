package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"propgen/internal/config"
	"propgen/internal/match"
	"propgen/internal/naming"
)

// ProjectFileName is the project configuration file looked up by FindAndLoad.
const ProjectFileName = "propgen.toml"

// Project represents a propgen.toml project configuration.
type Project struct {
	Manifests     []string `toml:"manifests"`
	Out           string   `toml:"out"`
	Jobs          int      `toml:"jobs"`
	Color         string   `toml:"color"`
	FailOnWarning bool     `toml:"fail-on-warning"`
	Defaults      Defaults `toml:"defaults"`

	// Dir is the directory containing the project file (set at load time).
	Dir string `toml:"-"`
}

// Defaults is the project-wide outermost configuration layer.
type Defaults struct {
	Access string `toml:"access"`
	Prefix string `toml:"prefix"`
	Naming string `toml:"naming"`
}

// LoadProject parses a project file. Relative manifest and output paths
// are resolved against the file's directory.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var p Project
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	p.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	for i, m := range p.Manifests {
		p.Manifests[i] = p.resolve(m)
	}

	if p.Out != "" {
		p.Out = p.resolve(p.Out)
	}

	if p.Color != "" {
		if err := validateColor(p.Color); err != nil {
			return nil, fmt.Errorf("%s: color: %w", path, err)
		}
	}

	if p.Jobs < 0 {
		return nil, fmt.Errorf("%s: jobs must not be negative, got %d", path, p.Jobs)
	}

	return &p, nil
}

// FindAndLoad walks up from startDir to find a propgen.toml file,
// then loads and returns it. Returns nil if no project file is found.
func FindAndLoad(startDir string) (*Project, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadProject(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}

		dir = parent
	}
}

func (p *Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(p.Dir, path)
}

// Settings converts the [defaults] table into a configuration layer.
// Unknown values are errors.
func (d Defaults) Settings() (*config.Settings, error) {
	s := &config.Settings{Prefix: d.Prefix}

	var errs []error

	if d.Access != "" {
		access, ok := config.ParseAccess(d.Access)
		if !ok {
			errs = append(errs, unknownValue("defaults.access", d.Access, config.AccessNames()))
		}

		s.Access = access
	}

	if d.Naming != "" {
		rule, ok := naming.ParseRule(d.Naming)
		if !ok {
			errs = append(errs, unknownValue("defaults.naming", d.Naming, naming.RuleNames()))
		}

		s.Naming = rule
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return s, nil
}

func unknownValue(key, value string, accepted []string) error {
	if hint, ok := match.Suggest(value, accepted); ok {
		return fmt.Errorf("%s: unknown value %q, did you mean %q?", key, value, hint)
	}

	return fmt.Errorf("%s: unknown value %q", key, value)
}
