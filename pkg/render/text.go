package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dkoosis/statstable/pkg/pattern"
)

const (
	cellSeparator   = " | "
	borderSeparator = "-+-"
)

// Text renders tables as plain fixed-width ASCII, one row per line:
//
//	Filename            | Count | Bytes |  Time
//	--------------------+-------+-------+------
//	b.md                |     1 | 0.50K | 0.500
//	--------------------+-------+-------+------
//	TOTAL (for 1 files) |     1 | 0.50K | 0.500
//
// The output starts with an empty line and every line ends in "\n".
type Text struct{}

// NewText creates a plain text renderer.
func NewText() *Text {
	return &Text{}
}

// Render formats every table pattern; other patterns are ignored.
func (x *Text) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		if tbl, ok := p.(*pattern.Table); ok {
			x.renderTable(&sb, tbl)
		}
	}
	return sb.String()
}

func (x *Text) renderTable(sb *strings.Builder, tbl *pattern.Table) {
	widths := tbl.Widths()
	border := borderLine(widths)

	sb.WriteString("\n")
	sb.WriteString(formatRow(tbl.Header, widths, cellSeparator, nil))
	sb.WriteString("\n")
	sb.WriteString(border)
	sb.WriteString("\n")
	for _, r := range tbl.Rows {
		sb.WriteString(formatRow(r, widths, cellSeparator, nil))
		sb.WriteString("\n")
	}
	sb.WriteString(border)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRightFunc(formatRow(tbl.Footer, widths, cellSeparator, nil), unicode.IsSpace))
	sb.WriteString("\n")
}

// cellStyle decorates a padded cell; col is the column index.
type cellStyle func(col int, cell string) string

// formatRow pads the label column on the right and value columns on the
// left, then joins the cells with sep.
func formatRow(row pattern.Row, widths []int, sep string, style cellStyle) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if i == 0 {
			cell = padRight(cell, widths[i])
		} else {
			cell = padLeft(cell, widths[i])
		}
		if style != nil {
			cell = style(i, cell)
		}
		cells[i] = cell
	}
	return strings.Join(cells, sep)
}

func borderLine(widths []int) string {
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	return strings.Join(dashes, borderSeparator)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
