// Package render provides output renderers for statstable's patterns.
package render

import (
	"github.com/dkoosis/statstable/pkg/mapper"
	"github.com/dkoosis/statstable/pkg/pattern"
	"github.com/dkoosis/statstable/pkg/stats"
)

// DefaultMaxRows is the row limit used when the caller has no preference.
const DefaultMaxRows = 50

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// StatsTable renders m as a bordered ASCII table of at most maxRows entries,
// slowest first, followed by a totals row. It returns an error only for a
// negative maxRows.
func StatsTable(m stats.Map, maxRows int) (string, error) {
	tbl, err := mapper.FromStats(m, maxRows)
	if err != nil {
		return "", err
	}
	return NewText().Render([]pattern.Pattern{tbl}), nil
}
