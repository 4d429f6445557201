package render

import (
	"encoding/json"

	"github.com/dkoosis/statstable/pkg/pattern"
)

// JSON renders patterns as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// document is the top-level structure shared by the JSON and YAML renderers.
type document struct {
	Version  string        `json:"version" yaml:"version"`
	Patterns []typedPattern `json:"patterns" yaml:"patterns"`
}

type typedPattern struct {
	Type string          `json:"type" yaml:"type"`
	Data pattern.Pattern `json:"data" yaml:"data"`
}

const documentVersion = "1.0"

func newDocument(patterns []pattern.Pattern) document {
	doc := document{
		Version:  documentVersion,
		Patterns: make([]typedPattern, 0, len(patterns)),
	}
	for _, p := range patterns {
		doc.Patterns = append(doc.Patterns, typedPattern{
			Type: string(p.Type()),
			Data: p,
		})
	}
	return doc
}

// Render formats all patterns as JSON.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	data, err := json.MarshalIndent(newDocument(patterns), "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
