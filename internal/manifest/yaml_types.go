package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a full mapping or a bare type expression.
// The bare form leaves Name empty so that defaults derive it from the type.
func (i *Instance) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var typ string

		err := node.Decode(&typ)
		if err != nil {
			return err
		}

		*i = Instance{Type: typ}

		return nil

	case yaml.MappingNode:
		// Decode through an alias type to avoid recursing into this method.
		type plain Instance

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*i = Instance(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected type expression or instance mapping, got %v", node.Line, node.Kind)
	}
}
