package stats

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Add(t *testing.T) {
	got := Record{Count: 2, Bytes: 2048, Time: 0.125}.Add(Record{Count: 1, Bytes: 512, Time: 0.5})
	assert.Equal(t, Record{Count: 3, Bytes: 2560, Time: 0.625}, got)
}

func TestMap_Entries_SortedByName(t *testing.T) {
	m := Map{
		"c.md": {Count: 1},
		"a.md": {Count: 2},
		"b.md": {Count: 3},
	}
	var names []string
	for _, e := range m.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, names)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Map
	}{
		{
			name:  "json",
			input: `{"a.md": {"count": 2, "bytes": 2048, "time": 0.125}, "b.md": {"count": 1, "bytes": 512, "time": 0.5}}`,
			want: Map{
				"a.md": {Count: 2, Bytes: 2048, Time: 0.125},
				"b.md": {Count: 1, Bytes: 512, Time: 0.5},
			},
		},
		{
			name:  "yaml",
			input: "_layouts/default.html:\n  count: 12\n  bytes: 48213\n  time: 0.412\n",
			want: Map{
				"_layouts/default.html": {Count: 12, Bytes: 48213, Time: 0.412},
			},
		},
		{
			name:  "missing gauges are zero",
			input: `{"a.md": {"count": 4}}`,
			want:  Map{"a.md": {Count: 4}},
		},
		{
			name:  "null record is zero",
			input: `{"a.md": null}`,
			want:  Map{"a.md": {}},
		},
		{
			name:  "unknown fields ignored",
			input: `{"a.md": {"count": 1, "renders": 9}}`,
			want:  Map{"a.md": {Count: 1}},
		},
		{
			name:  "empty mapping",
			input: `{}`,
			want:  Map{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		errText string
	}{
		{name: "empty", input: "  \n", wantErr: ErrEmptyInput},
		{name: "top-level list", input: `[1, 2]`, wantErr: ErrNotAMapping},
		{name: "record is scalar", input: `{"a.md": 3}`, wantErr: ErrNotAMapping, errText: `"a.md"`},
		{name: "string gauge", input: `{"a.md": {"time": "slow"}}`, errText: `gauge "time"`},
		{name: "fractional count", input: `{"a.md": {"count": 1.5}}`, errText: "whole number"},
		{name: "count beyond int range", input: `{"a.md": {"count": 1e20}}`, errText: "out of range"},
		{name: "count at uint64 max", input: `{"a.md": {"count": 18446744073709551615}}`, errText: "out of range"},
		{name: "negative count beyond int range", input: `{"a.md": {"count": -1e19}}`, errText: "out of range"},
		{name: "nan gauge", input: "a.md:\n  time: .nan\n", errText: "finite"},
		{name: "malformed", input: `{"a.md": `, errText: "parsing document"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			}
			if tc.errText != "" {
				assert.Contains(t, err.Error(), tc.errText)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"site": "blog", "liquid": {"stats": {"a.md": {"count": 1, "bytes": 10, "time": 0.01}}}}`))
	require.NoError(t, err)

	sub, err := Select(doc, ".liquid.stats")
	require.NoError(t, err)

	m, err := FromDocument(sub)
	require.NoError(t, err)
	assert.Equal(t, Map{"a.md": {Count: 1, Bytes: 10, Time: 0.01}}, m)
}

func TestSelect_EmptyQueryIsIdentity(t *testing.T) {
	doc := map[string]any{"a.md": map[string]any{"count": 1}}
	got, err := Select(doc, "")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSelect_Errors(t *testing.T) {
	doc := map[string]any{"a": 1}

	_, err := Select(doc, ".[")
	assert.ErrorContains(t, err, "invalid query")

	_, err = Select(doc, "empty")
	assert.ErrorIs(t, err, ErrNoQueryResult)

	_, err = Select(doc, `error("boom")`)
	assert.ErrorContains(t, err, "boom")
}
