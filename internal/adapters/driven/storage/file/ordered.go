package file

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// orderedMap decodes a YAML/JSON mapping into entries in document order.
type orderedMap[V any] struct {
	entries []domain.Entry[V]
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *orderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	m.entries = make([]domain.Entry[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: table keys must be scalars", keyNode.Line)
		}

		var v V
		if err := valueNode.Decode(&v); err != nil {
			return fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		m.entries = append(m.entries, domain.Entry[V]{Key: keyNode.Value, Value: v})
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "mapping"
	}
}
