// Package stats defines the per-file gauge records rendered by statstable.
// Records are plain values; collection happens upstream.
package stats

import "sort"

// Gauge names one tracked measurement.
type Gauge string

const (
	GaugeCount Gauge = "count"
	GaugeBytes Gauge = "bytes"
	GaugeTime  Gauge = "time"
)

// Gauges lists the tracked measurements in display order.
var Gauges = []Gauge{GaugeCount, GaugeBytes, GaugeTime}

// Record holds the aggregate gauges for one unit of work (usually a source file).
// A gauge the producer did not report is zero.
type Record struct {
	Count int
	Bytes float64
	Time  float64 // seconds
}

// Add returns the gauge-wise sum of r and o.
func (r Record) Add(o Record) Record {
	return Record{
		Count: r.Count + o.Count,
		Bytes: r.Bytes + o.Bytes,
		Time:  r.Time + o.Time,
	}
}

// Map is keyed by filename or other identifier.
type Map map[string]Record

// Entry is one key/record pair of a Map.
type Entry struct {
	Name   string
	Record Record
}

// Entries returns the map contents ordered by name.
func (m Map) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for name, rec := range m {
		entries = append(entries, Entry{Name: name, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
