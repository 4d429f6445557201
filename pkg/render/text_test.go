package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/statstable/pkg/pattern"
)

func TestText_IgnoresOtherPatterns(t *testing.T) {
	assert.Equal(t, "", NewText().Render(nil))
}

func TestText_FooterIsRightTrimmed(t *testing.T) {
	// A single-column table leaves left-justified padding on the footer.
	tbl := &pattern.Table{
		Header: pattern.Row{"Filename"},
		Rows:   []pattern.Row{{"a-rather-long-name.md"}},
		Footer: pattern.Row{"TOTAL"},
	}
	out := NewText().Render([]pattern.Pattern{tbl})
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Filename             ", lines[1])
	assert.Equal(t, "TOTAL", lines[5])
}

func TestBorderLine(t *testing.T) {
	assert.Equal(t, "---", borderLine([]int{3}))
	assert.Equal(t, "--------+-----+---", borderLine([]int{8, 3, 1}))
	assert.Equal(t, "", borderLine(nil))
}

func TestFormatRow_Justification(t *testing.T) {
	got := formatRow(pattern.Row{"a", "1", "2"}, []int{3, 2, 4}, cellSeparator, nil)
	assert.Equal(t, "a   |  1 |    2", got)
}
