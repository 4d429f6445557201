package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/statstable/pkg/pattern"
)

// YAML renders the same document as JSON, encoded as YAML.
type YAML struct{}

// NewYAML creates a YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

// Render formats all patterns as YAML.
func (y *YAML) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(patterns)); err != nil {
		return fmt.Sprintf("error: %q\n", err.Error())
	}
	if err := enc.Close(); err != nil {
		return fmt.Sprintf("error: %q\n", err.Error())
	}
	return sb.String()
}
