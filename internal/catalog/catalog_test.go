package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// record builds a minimal catalog entry for tests.
func record(id, name, description string, format datacommons.DatasetFormat, tags ...string) datacommons.DatasetMetadata {
	return datacommons.DatasetMetadata{
		DatasetID:   id,
		Name:        name,
		Description: description,
		Format:      format,
		License:     "CC-BY-4.0",
		Tags:        tags,
		Version:     "1.0.0",
	}
}

// ids extracts the dataset ids from a result slice.
func ids(records []datacommons.DatasetMetadata) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.DatasetID)
	}
	return out
}

func TestRegisterAndGet_RoundTrip(t *testing.T) {
	c := New()
	want := record("ds-001", "Agent Traces", "ReAct traces", datacommons.FormatJSONL, "agents")

	c.Register(want)
	got, err := c.Get("ds-001")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, c.Len())
}

func TestGet_MissingId(t *testing.T) {
	c := New()

	_, err := c.Get("nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, datacommons.ErrDatasetNotFound))
	assert.Contains(t, err.Error(), "'nope'")
}

func TestRegister_UpsertKeepsPosition(t *testing.T) {
	c := New()
	c.Register(record("a", "First", "", datacommons.FormatJSONL))
	c.Register(record("b", "Second", "", datacommons.FormatCSV))
	c.Register(record("c", "Third", "", datacommons.FormatJSONL))

	c.Register(record("b", "Second Updated", "new description", datacommons.FormatParquet))

	all := c.ListAll(10, 0)
	require.Equal(t, []string{"a", "b", "c"}, ids(all))
	assert.Equal(t, "Second Updated", all[1].Name)
	assert.Equal(t, datacommons.FormatParquet, all[1].Format)
	assert.Equal(t, 3, c.Len())
}

func TestListAll_Pagination(t *testing.T) {
	c := New()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		c.Register(record(id, "Dataset "+id, "", datacommons.FormatJSONL))
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{"all", 10, 0, []string{"a", "b", "c", "d", "e"}},
		{"first page", 2, 0, []string{"a", "b"}},
		{"second page", 2, 2, []string{"c", "d"}},
		{"partial last page", 2, 4, []string{"e"}},
		{"offset at size", 2, 5, []string{}},
		{"offset beyond size", 2, 99, []string{}},
		{"zero limit", 0, 0, []string{}},
		{"negative limit", -1, 0, []string{}},
		{"negative offset", 2, -3, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ListAll(tt.limit, tt.offset)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_QueryMatchesNameOrDescription(t *testing.T) {
	c := New()
	c.Register(record("a", "Agent Traces", "ReAct loops from production", datacommons.FormatJSONL))
	c.Register(record("b", "Tool Calls", "agent tool invocations", datacommons.FormatJSONL))
	c.Register(record("c", "Weather Logs", "station readings", datacommons.FormatCSV))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "traces", []string{"a"}},
		{"matches description", "react", []string{"a"}},
		{"case-insensitive both ways", "AGENT", []string{"a", "b"}},
		{"no match", "synthetic", []string{}},
		{"empty query matches all", "", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(datacommons.SearchFilter{Query: tt.query})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_QueryDoesNotMatchId(t *testing.T) {
	c := New()
	c.Register(record("special-id", "Name", "Description", datacommons.FormatJSONL))

	assert.Empty(t, c.Search(datacommons.SearchFilter{Query: "special-id"}))
}

func TestSearch_FormatFilter(t *testing.T) {
	c := New()
	c.Register(record("a", "Traces A", "", datacommons.FormatJSONL))
	c.Register(record("b", "Traces B", "", datacommons.FormatCSV))

	got := c.Search(datacommons.SearchFilter{Query: "traces", Format: datacommons.FormatCSV})

	assert.Equal(t, []string{"b"}, ids(got))
}

func TestSearch_TagContainment(t *testing.T) {
	c := New()
	c.Register(record("a", "Traces", "", datacommons.FormatJSONL, "agents", "prod", "english"))
	c.Register(record("b", "Traces", "", datacommons.FormatJSONL, "agents"))
	c.Register(record("c", "Traces", "", datacommons.FormatJSONL))

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{"single tag", []string{"agents"}, []string{"a", "b"}},
		{"superset required", []string{"agents", "prod"}, []string{"a"}},
		{"missing tag", []string{"agents", "synthetic"}, []string{}},
		{"nil tags is no filter", nil, []string{"a", "b", "c"}},
		{"empty tags is no filter", []string{}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(datacommons.SearchFilter{Query: "traces", Tags: tt.tags})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_ConjunctiveFilters(t *testing.T) {
	c := New()
	c.Register(record("a", "Agent Traces", "ReAct traces", datacommons.FormatJSONL, "agents"))
	c.Register(record("b", "Agent Traces", "ReAct traces", datacommons.FormatCSV, "agents"))
	c.Register(record("c", "Agent Traces", "ReAct traces", datacommons.FormatJSONL))

	got := c.Search(datacommons.SearchFilter{
		Query:  "react",
		Format: datacommons.FormatJSONL,
		Tags:   []string{"agents"},
	})

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSearch_EndToEndExample(t *testing.T) {
	c := New()
	c.Register(record("a", "Agent Traces", "ReAct traces", datacommons.FormatJSONL, "agents"))

	assert.Equal(t, []string{"a"}, ids(c.Search(datacommons.SearchFilter{Query: "react", Tags: []string{"agents"}})))
	assert.Empty(t, c.Search(datacommons.SearchFilter{Query: "react", Tags: []string{"missing"}}))
}

func TestSearch_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Register(record("z", "Traces Z", "", datacommons.FormatJSONL))
	c.Register(record("a", "Traces A", "", datacommons.FormatJSONL))
	c.Register(record("m", "Traces M", "", datacommons.FormatJSONL))

	got := c.Search(datacommons.SearchFilter{Query: "traces"})

	assert.Equal(t, []string{"z", "a", "m"}, ids(got))
}

func TestSnapshot_ReplayReproducesCatalog(t *testing.T) {
	c := New()
	c.Register(record("b", "Second", "", datacommons.FormatCSV))
	c.Register(record("a", "First", "", datacommons.FormatJSONL))
	c.Register(record("b", "Second Updated", "", datacommons.FormatCSV))

	replayed := New()
	for _, r := range c.Snapshot() {
		replayed.Register(r)
	}

	assert.Equal(t, c.Snapshot(), replayed.Snapshot())
	assert.Equal(t, []string{"b", "a"}, ids(replayed.ListAll(10, 0)))
}

func TestSnapshot_EmptyCatalog(t *testing.T) {
	c := New()

	snapshot := c.Snapshot()

	assert.NotNil(t, snapshot)
	assert.Empty(t, snapshot)
}
