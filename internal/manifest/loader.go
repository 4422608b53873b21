package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"propgen/internal/analyze"
)

// SchemaVersion is the manifest version written when none is given.
const SchemaVersion = "1"

var log = commonlog.GetLogger("propgen.manifest")

// LoadFile loads and parses a manifest file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	mf.Path = path

	return mf, nil
}

// Parse parses YAML (or JSON) data into a File.
func Parse(data []byte) (*File, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if mf.Version != "" && mf.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported manifest version %q (want %q)", mf.Version, SchemaVersion)
	}

	applyDefaults(&mf)

	if err := Validate(&mf); err != nil {
		return nil, err
	}

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = SchemaVersion
	}

	for i := range mf.Types {
		t := &mf.Types[i]
		t.Name = strings.TrimSpace(t.Name)
		t.Namespace = strings.TrimSpace(t.Namespace)

		for j := range t.Fields {
			f := &t.Fields[j]
			f.Name = strings.TrimSpace(f.Name)

			if f.Location.File == "" {
				f.Location.File = t.Location.File
			}
		}
	}
}

// Validate checks the structural requirements a manifest must meet before
// it can be converted. All problems are reported together.
func Validate(mf *File) error {
	var errs []error

	for i := range mf.Types {
		t := &mf.Types[i]
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("types[%d]: name is required", i))
			continue
		}

		for j, c := range t.Containers {
			if strings.TrimSpace(c.Name) == "" {
				errs = append(errs, fmt.Errorf("type %s: containers[%d]: name is required", t.Name, j))
			}
		}

		for j := range t.Fields {
			f := &t.Fields[j]
			if f.Name == "" {
				errs = append(errs, fmt.Errorf("type %s: fields[%d]: name is required", t.Name, j))
				continue
			}

			if f.Type.Display == "" {
				errs = append(errs, fmt.Errorf("type %s: field %s: type is required", t.Name, f.Name))
			}

			if f.Type.Capsule != "" && f.Type.Value == "" {
				errs = append(errs, fmt.Errorf("type %s: field %s: capsule type needs a value type", t.Name, f.Name))
			}
		}
	}

	return errors.Join(errs...)
}

// Load reads every manifest, converts it and merges type fragments across
// all of them. Conversion warnings are logged.
func Load(paths ...string) ([]*analyze.TypeDeclaration, error) {
	var all []*analyze.TypeDeclaration

	for _, path := range paths {
		mf, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		decls, warnings := mf.Declarations()
		for _, w := range warnings {
			log.Warningf("%s", w)
		}

		log.Debugf("loaded %d type fragment(s) from %s", len(decls), path)

		all = append(all, decls...)
	}

	return Merge(all), nil
}
