package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// ParseYAML parses a YAML schema document of the form
//
//	trace_id: str
//	action: str
//	reward: float
//
// preserving the document's field order via the yaml.v3 node API.
// Type values must be YAML strings; quote them if they would otherwise
// parse as another scalar kind.
func ParseYAML(data []byte) (datacommons.Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("schema document is not valid YAML (%v): %w", err, datacommons.ErrInvalidSchema)
	}

	if len(root.Content) == 0 {
		// Empty document: an empty schema checks nothing, which is valid.
		return datacommons.Schema{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema document must be a YAML mapping: %w", datacommons.ErrInvalidSchema)
	}

	result := datacommons.Schema{}
	index := map[string]int{}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode := doc.Content[i]
		valNode := doc.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("schema document has a non-scalar key at line %d: %w", keyNode.Line, datacommons.ErrInvalidSchema)
		}
		name := keyNode.Value

		if valNode.Kind != yaml.ScalarNode || valNode.Tag != "!!str" {
			return nil, fmt.Errorf("schema type for field %q must be a string: %w", name, datacommons.ErrInvalidSchema)
		}

		if j, seen := index[name]; seen {
			result[j].Type = valNode.Value
			continue
		}
		index[name] = len(result)
		result = append(result, datacommons.SchemaField{Name: name, Type: valNode.Value})
	}

	return result, nil
}
