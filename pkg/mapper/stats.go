package mapper

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/statstable/pkg/pattern"
	"github.com/dkoosis/statstable/pkg/stats"
)

// ErrNegativeMaxRows is returned when a negative row limit is requested.
var ErrNegativeMaxRows = errors.New("mapper: maxRows must be >= 0")

const labelColumn = "Filename"

// FromStats ranks the entries of m by time, keeps the slowest maxRows and
// builds a formatted table whose footer totals the kept rows only.
func FromStats(m stats.Map, maxRows int) (*pattern.Table, error) {
	selected, err := Select(m, maxRows)
	if err != nil {
		return nil, err
	}

	tbl := &pattern.Table{
		Header:     HeaderLabels(),
		Rows:       make([]pattern.Row, 0, len(selected)),
		TotalCount: len(m),
	}
	for _, e := range selected {
		tbl.Rows = append(tbl.Rows, recordRow(e.Name, e.Record))
	}

	label := fmt.Sprintf("TOTAL (for %d files)", len(selected))
	tbl.Footer = recordRow(label, Totals(selected))
	return tbl, nil
}

// Select returns the entries of m ordered by time descending, truncated to
// maxRows. Equal times are ordered by name.
func Select(m stats.Map, maxRows int) ([]stats.Entry, error) {
	if maxRows < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeMaxRows, maxRows)
	}
	entries := m.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.Time > entries[j].Record.Time
	})
	if maxRows < len(entries) {
		entries = entries[:maxRows]
	}
	return entries, nil
}

// Totals sums every gauge across entries.
func Totals(entries []stats.Entry) stats.Record {
	var total stats.Record
	for _, e := range entries {
		total = total.Add(e.Record)
	}
	return total
}

// HeaderLabels returns the label column heading followed by one title-cased
// heading per gauge.
func HeaderLabels() pattern.Row {
	title := cases.Title(language.English)
	row := pattern.Row{labelColumn}
	for _, g := range stats.Gauges {
		row = append(row, title.String(string(g)))
	}
	return row
}

func recordRow(label string, r stats.Record) pattern.Row {
	return pattern.Row{
		label,
		FormatCount(r.Count),
		FormatBytes(r.Bytes),
		FormatTime(r.Time),
	}
}
