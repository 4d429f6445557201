package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/statstable/pkg/pattern"
)

// Terminal renders tables with the Text layout, styled via lipgloss.
// Data-row labels are truncated when the table would overflow width.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		if tbl, ok := p.(*pattern.Table); ok {
			t.renderTable(&sb, t.fit(tbl))
		}
	}
	return sb.String()
}

func (t *Terminal) renderTable(sb *strings.Builder, tbl *pattern.Table) {
	widths := tbl.Widths()
	border := t.theme.Border.Render(borderLine(widths))
	sep := t.theme.Border.Render(cellSeparator)

	row := func(r pattern.Row, style cellStyle) string {
		return formatRow(r, widths, sep, style)
	}

	sb.WriteString("\n")
	sb.WriteString(row(tbl.Header, func(_ int, cell string) string {
		return t.theme.Header.Render(cell)
	}))
	sb.WriteString("\n")
	sb.WriteString(border)
	sb.WriteString("\n")
	for _, r := range tbl.Rows {
		sb.WriteString(row(r, t.dataCell))
		sb.WriteString("\n")
	}
	sb.WriteString(border)
	sb.WriteString("\n")

	// Trim before styling; escape codes would hide trailing padding.
	last := len(tbl.Footer) - 1
	sb.WriteString(row(tbl.Footer, func(col int, cell string) string {
		if col == last {
			cell = strings.TrimRightFunc(cell, unicode.IsSpace)
		}
		return t.theme.Total.Render(cell)
	}))
	sb.WriteString("\n")

	if tbl.TotalCount > len(tbl.Rows) {
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("(top %d of %d)", len(tbl.Rows), tbl.TotalCount)))
		sb.WriteString("\n")
	}
}

func (t *Terminal) dataCell(col int, cell string) string {
	switch col {
	case 0:
		return t.theme.Label.Render(cell)
	case 3:
		return t.theme.Time.Render(cell)
	default:
		return t.theme.Value.Render(cell)
	}
}

// fit shortens data-row labels so the table fits the terminal width.
// Labels never shrink below the header or footer label.
func (t *Terminal) fit(tbl *pattern.Table) *pattern.Table {
	widths := tbl.Widths()
	if len(widths) == 0 {
		return tbl
	}
	total := len(cellSeparator) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if total <= t.width {
		return tbl
	}

	floor := max(runewidth.StringWidth(firstCell(tbl.Header)), runewidth.StringWidth(firstCell(tbl.Footer)))
	labelWidth := max(widths[0]-(total-t.width), floor)
	if labelWidth >= widths[0] {
		return tbl
	}

	out := *tbl
	out.Rows = make([]pattern.Row, len(tbl.Rows))
	for i, r := range tbl.Rows {
		nr := append(pattern.Row(nil), r...)
		if len(nr) > 0 {
			nr[0] = runewidth.Truncate(nr[0], labelWidth, "...")
		}
		out.Rows[i] = nr
	}
	return &out
}

func firstCell(r pattern.Row) string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}
