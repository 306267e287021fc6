package schema

import (
	"errors"
	"testing"

	"github.com/aumai/datacommons/pkg/datacommons"
)

func TestParseYAML_PreservesDocumentOrder(t *testing.T) {
	doc := []byte("zebra: str\nalpha: int\nmiddle: float\n")

	got, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	want := datacommons.Schema{
		{Name: "zebra", Type: "str"},
		{Name: "alpha", Type: "int"},
		{Name: "middle", Type: "float"},
	}
	assertSchemaEqual(t, want, got)
}

func TestParseYAML_EmptyDocument(t *testing.T) {
	got, err := ParseYAML([]byte(""))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty schema, got %v", got)
	}
}

func TestParseYAML_QuotedTypes(t *testing.T) {
	got, err := ParseYAML([]byte("count: \"int\"\nlabel: 'str'\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	want := datacommons.Schema{
		{Name: "count", Type: "int"},
		{Name: "label", Type: "str"},
	}
	assertSchemaEqual(t, want, got)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not YAML", ":\n\t-"},
		{"sequence document", "- str\n- int\n"},
		{"unquoted non-string type", "count: 3\n"},
		{"nested mapping type", "a:\n  nested: str\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Expected error for %q", tt.doc)
			}
			if !errors.Is(err, datacommons.ErrInvalidSchema) {
				t.Errorf("Expected error wrapping ErrInvalidSchema, got: %v", err)
			}
		})
	}
}
