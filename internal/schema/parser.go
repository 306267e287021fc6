package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// ParsePairs converts a slice of "name=type" strings into an ordered
// schema. Uses strings.Cut() (Go 1.18+) for cleaner parsing. Field
// order follows the input; a repeated name keeps its first position and
// takes the last declared type.
//
// Example:
//
//	s, err := ParsePairs([]string{"trace_id=str", "reward=float"})
//	// Returns: Schema{{trace_id str}, {reward float}}
func ParsePairs(pairs []string) (datacommons.Schema, error) {
	result := make(datacommons.Schema, 0, len(pairs))
	index := make(map[string]int, len(pairs))

	for _, pair := range pairs {
		name, typeName, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("field %q is not in name=type format (example: --field trace_id=str): %w", pair, datacommons.ErrInvalidSchema)
		}

		if name == "" {
			return nil, fmt.Errorf("field has empty name: %q: %w", pair, datacommons.ErrInvalidSchema)
		}

		if i, seen := index[name]; seen {
			result[i].Type = typeName
			continue
		}
		index[name] = len(result)
		result = append(result, datacommons.SchemaField{Name: name, Type: typeName})
	}

	return result, nil
}

// ParseFile parses a schema document, choosing the syntax by the file
// name's extension: .yaml and .yml are YAML, everything else JSON.
func ParseFile(name string, data []byte) (datacommons.Schema, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}
