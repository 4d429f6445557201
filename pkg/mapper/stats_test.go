package mapper

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/statstable/pkg/pattern"
	"github.com/dkoosis/statstable/pkg/stats"
)

func exampleStats() stats.Map {
	return stats.Map{
		"a.md": {Count: 2, Bytes: 2048, Time: 0.125},
		"b.md": {Count: 1, Bytes: 512, Time: 0.5},
	}
}

func TestFromStats_OrdersByTimeAndTotals(t *testing.T) {
	tbl, err := FromStats(exampleStats(), 50)
	require.NoError(t, err)

	want := &pattern.Table{
		Header: pattern.Row{"Filename", "Count", "Bytes", "Time"},
		Rows: []pattern.Row{
			{"b.md", "1", "0.50K", "0.500"},
			{"a.md", "2", "2.00K", "0.125"},
		},
		Footer:     pattern.Row{"TOTAL (for 2 files)", "3", "2.50K", "0.625"},
		TotalCount: 2,
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("FromStats() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStats_TotalsCoverDisplayedRowsOnly(t *testing.T) {
	tbl, err := FromStats(exampleStats(), 1)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, pattern.Row{"b.md", "1", "0.50K", "0.500"}, tbl.Rows[0])
	assert.Equal(t, pattern.Row{"TOTAL (for 1 files)", "1", "0.50K", "0.500"}, tbl.Footer)
	assert.Equal(t, 2, tbl.TotalCount)
}

func TestFromStats_ZeroRows(t *testing.T) {
	for name, m := range map[string]stats.Map{
		"maxRows 0": exampleStats(),
		"empty map": {},
		"nil map":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			tbl, err := FromStats(m, 0)
			require.NoError(t, err)
			assert.Empty(t, tbl.Rows)
			assert.Equal(t, pattern.Row{"TOTAL (for 0 files)", "0", "0.00K", "0.000"}, tbl.Footer)
		})
	}
}

func TestFromStats_NegativeMaxRows(t *testing.T) {
	_, err := FromStats(exampleStats(), -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeMaxRows))
}

func TestFromStats_RowCountIsMinOfLimitAndSize(t *testing.T) {
	m := stats.Map{}
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		m[name] = stats.Record{Count: i, Time: float64(i)}
	}
	for _, maxRows := range []int{0, 1, 3, 5, 6, 50} {
		tbl, err := FromStats(m, maxRows)
		require.NoError(t, err)
		want := maxRows
		if want > len(m) {
			want = len(m)
		}
		assert.Len(t, tbl.Rows, want, "maxRows=%d", maxRows)
	}
}

func TestSelect_TiesOrderedByName(t *testing.T) {
	m := stats.Map{
		"c.md": {Time: 1},
		"a.md": {Time: 1},
		"b.md": {Time: 2},
		"d.md": {Time: 1},
	}
	entries, err := Select(m, 10)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"b.md", "a.md", "c.md", "d.md"}, names)
}

func TestTotals(t *testing.T) {
	entries, err := Select(exampleStats(), 50)
	require.NoError(t, err)
	assert.Equal(t, stats.Record{Count: 3, Bytes: 2560, Time: 0.625}, Totals(entries))
	assert.Equal(t, stats.Record{}, Totals(nil))
}

func TestHeaderLabels(t *testing.T) {
	assert.Equal(t, pattern.Row{"Filename", "Count", "Bytes", "Time"}, HeaderLabels())
}
