package domain

import (
	"path/filepath"
	"strings"
)

// SegmentKind distinguishes a plain path label from a cross-axis value list.
type SegmentKind int

const (
	// SegmentLabel is a single named path component (e.g. a module or task name).
	SegmentLabel SegmentKind = iota
	// SegmentCross is a set of cross-axis values (e.g. a Scala/platform matrix cell).
	SegmentCross
)

// Segment is one element of a Segments path: either a Label or a Cross.
type Segment struct {
	Kind  SegmentKind
	Label string
	Cross []string
}

// Label constructs a plain path-label segment.
func Label(name string) Segment {
	return Segment{Kind: SegmentLabel, Label: name}
}

// Cross constructs a cross-axis segment from an ordered list of axis values.
func Cross(values ...string) Segment {
	return Segment{Kind: SegmentCross, Cross: append([]string(nil), values...)}
}

// render returns this segment's contribution to a filesystem path.
func (s Segment) render() string {
	if s.Kind == SegmentCross {
		return strings.Join(s.Cross, "-")
	}
	return s.Label
}

// Segments is the non-empty ordered path identifying a named task in the hierarchical
// namespace. Two distinct named tasks must not render to the same Segments (see
// domain.ErrDuplicateSegments).
type Segments []Segment

// Render flattens Segments to a filesystem path, joining each segment's rendered value
// with the OS path separator; cross-axis values become one path component alongside the
// surrounding labels, as if they were siblings in the directory tree.
func (s Segments) Render() string {
	parts := make([]string, len(s))
	for i, seg := range s {
		parts[i] = seg.render()
	}
	return filepath.Join(parts...)
}

// Display renders Segments as a dotted human-readable path, used in logs and error messages.
func (s Segments) Display() string {
	parts := make([]string, len(s))
	for i, seg := range s {
		parts[i] = seg.render()
	}
	return strings.Join(parts, ".")
}

// WithOverride appends the "overriden" disambiguation suffix required when two named tasks
// share a declaration path but resolve to a different override count.
func (s Segments) WithOverride(enclosingDeclarationPath string) Segments {
	out := make(Segments, len(s), len(s)+2)
	copy(out, s)
	out = append(out, Label("overriden"), Label(enclosingDeclarationPath))
	return out
}
