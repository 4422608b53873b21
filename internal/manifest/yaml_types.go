package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"propgen/internal/common"
)

// --- Marker YAML methods ---

// UnmarshalYAML accepts either a boolean or a settings mapping.
// `autoProperty: true` marks a type without settings; false leaves it unmarked.
func (m *Marker) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var on bool

		err := node.Decode(&on)
		if err != nil {
			return fmt.Errorf("line %d: marker must be a boolean or a mapping: %w", node.Line, err)
		}

		*m = Marker{Disabled: !on}

		return nil

	case yaml.MappingNode:
		type plain Marker

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*m = Marker(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected boolean or mapping for marker, got %v", node.Line, kindName(node.Kind))
	}
}

// --- TypeSpec YAML methods ---

// UnmarshalYAML accepts either a type string or a capsule mapping.
func (t *TypeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var display string

		err := node.Decode(&display)
		if err != nil {
			return err
		}

		*t = TypeSpec{Display: display}

		return nil

	case yaml.MappingNode:
		type plain TypeSpec

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*t = TypeSpec(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or mapping for type, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML outputs plain types as a single string.
func (t TypeSpec) MarshalYAML() (any, error) {
	if t.Capsule == "" && t.Owner == "" && t.Value == "" {
		return t.Display, nil
	}

	type plain TypeSpec

	return plain(t), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
