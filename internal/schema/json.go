package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// ParseJSON parses a JSON schema document of the form
//
//	{"trace_id": "str", "action": "str", "reward": "float"}
//
// preserving the document's field order. A plain map[string]string
// unmarshal would lose that order, and validation errors are reported
// field-by-field in schema order, so this walks the token stream.
//
// A repeated field name keeps its first position and takes the last
// declared type. Type values must be JSON strings.
func ParseJSON(data []byte) (datacommons.Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("schema document is not valid JSON (%v): %w", err, datacommons.ErrInvalidSchema)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("schema document must be a JSON object: %w", datacommons.ErrInvalidSchema)
	}

	result := datacommons.Schema{}
	index := map[string]int{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("schema document is not valid JSON (%v): %w", err, datacommons.ErrInvalidSchema)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("schema document has a non-string key: %w", datacommons.ErrInvalidSchema)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("schema document is not valid JSON (%v): %w", err, datacommons.ErrInvalidSchema)
		}
		typeName, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("schema type for field %q must be a string: %w", name, datacommons.ErrInvalidSchema)
		}

		if i, seen := index[name]; seen {
			result[i].Type = typeName
			continue
		}
		index[name] = len(result)
		result = append(result, datacommons.SchemaField{Name: name, Type: typeName})
	}

	// Consume the closing brace, then require EOF.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("schema document is not valid JSON (%v): %w", err, datacommons.ErrInvalidSchema)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("schema document has content after the closing brace: %w", datacommons.ErrInvalidSchema)
	}

	return result, nil
}
