package pattern

import "unicode/utf8"

// Row is one line of display cells: label, count, bytes, time.
type Row []string

// Table is a header, ranked data rows and a totals footer, already formatted.
// Every row has as many cells as Header.
type Table struct {
	Header Row   `json:"header" yaml:"header"`
	Rows   []Row `json:"rows" yaml:"rows"`
	Footer Row   `json:"footer" yaml:"footer"`

	// TotalCount is the number of entries before truncation to the row limit.
	TotalCount int `json:"total_count" yaml:"total_count"`
}

func (t *Table) Type() PatternType { return PatternTypeStatsTable }

// Widths returns, per column, the longest cell across header, rows and footer.
// Lengths are counted in runes, not display cells.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Header))
	measure := func(r Row) {
		for i, cell := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(t.Header)
	for _, r := range t.Rows {
		measure(r)
	}
	measure(t.Footer)
	return widths
}
