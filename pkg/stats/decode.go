package stats

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyInput is returned when there is no document to decode.
	ErrEmptyInput = errors.New("stats: empty input")
	// ErrNotAMapping is returned when the document (or a record) is not a key/value mapping.
	ErrNotAMapping = errors.New("stats: not a mapping")
)

// countLimit is the magnitude at which a count no longer fits in an int.
const countLimit = float64(1 << (strconv.IntSize - 1))

// Decode parses a stats document. JSON and YAML are both accepted:
//
//	{"_layouts/default.html": {"count": 12, "bytes": 48213, "time": 0.412}}
//
// Missing gauges decode as zero and unknown keys inside a record are ignored.
func Decode(data []byte) (Map, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// ParseDocument decodes data into plain maps, slices and scalars suitable
// for Select and FromDocument.
func ParseDocument(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("stats: parsing document: %w", err)
	}
	return normalize(raw), nil
}

// FromDocument converts a decoded document into a Map.
func FromDocument(doc any) (Map, error) {
	if doc == nil {
		return Map{}, nil
	}
	top, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAMapping, doc)
	}

	m := make(Map, len(top))
	for name, v := range top {
		if name == "" {
			return nil, errors.New("stats: entry with empty name")
		}
		rec, err := recordFrom(v)
		if err != nil {
			return nil, fmt.Errorf("stats: entry %q: %w", name, err)
		}
		m[name] = rec
	}
	return m, nil
}

func recordFrom(v any) (Record, error) {
	if v == nil {
		return Record{}, nil
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return Record{}, fmt.Errorf("%w: got %T", ErrNotAMapping, v)
	}

	var rec Record
	count, err := gauge(fields, GaugeCount)
	if err != nil {
		return Record{}, err
	}
	if count != math.Trunc(count) {
		return Record{}, fmt.Errorf("gauge %q: %v is not a whole number", GaugeCount, count)
	}
	if count < -countLimit || count >= countLimit {
		return Record{}, fmt.Errorf("gauge %q: %v is out of range", GaugeCount, count)
	}
	rec.Count = int(count)

	if rec.Bytes, err = gauge(fields, GaugeBytes); err != nil {
		return Record{}, err
	}
	if rec.Time, err = gauge(fields, GaugeTime); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// gauge reads a numeric field. Absent and null fields are zero.
func gauge(fields map[string]any, g Gauge) (float64, error) {
	v, ok := fields[string(g)]
	if !ok || v == nil {
		return 0, nil
	}
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, fmt.Errorf("gauge %q: expected a number, got %T", g, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("gauge %q: %v is not a finite number", g, f)
	}
	return f, nil
}

// normalize rewrites yaml.v3 output so every mapping is map[string]any.
// Scalars other than the JSON kinds are stringified.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case nil, bool, int, float64, string:
		return t
	case int64:
		return int(t)
	case uint64:
		if t <= math.MaxInt {
			return int(t)
		}
		return float64(t)
	default:
		return fmt.Sprint(t)
	}
}
