package core

import (
	"fmt"
	"strings"
)

// FieldPath helps construct dotted JSON field paths in a consistent way.
// It provides a fluent interface for building paths like "scheduled.cycle.record_seconds"
// or "triggered.triggers[2].sensor.op", which the codec attaches to every
// validation error so callers can locate the offending field.
type FieldPath struct {
	segments []string
}

func NewFieldPath() *FieldPath {
	return &FieldPath{segments: []string{}}
}

// Key appends an object key to the path (e.g. "scheduled", "cycle").
func (p *FieldPath) Key(name string) *FieldPath {
	return &FieldPath{segments: append(append([]string{}, p.segments...), name)}
}

// Index appends an array index to the last segment (e.g. "windows" -> "windows[0]").
// On an empty path the index becomes its own segment.
func (p *FieldPath) Index(i int) *FieldPath {
	segments := append([]string{}, p.segments...)
	if len(segments) == 0 {
		return &FieldPath{segments: []string{fmt.Sprintf("[%d]", i)}}
	}
	segments[len(segments)-1] = fmt.Sprintf("%s[%d]", segments[len(segments)-1], i)
	return &FieldPath{segments: segments}
}

// Build returns the constructed path with segments joined by ".".
func (p *FieldPath) Build() string {
	return strings.Join(p.segments, ".")
}
