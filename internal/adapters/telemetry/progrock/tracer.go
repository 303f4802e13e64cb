// Package progrock implements ports.Tracer/ports.Span on top of
// github.com/vito/progrock's vertex-based live build progress reporting, the teacher's
// own second telemetry backend (internal/adapters/telemetry/progrock in the teacher
// tree), adapted here from the teacher's now-dropped ports.Telemetry/ports.Vertex shape
// onto the current ports.Tracer/ports.Span contract: a Start call opens a vertex the
// same way Record did, and the returned Span streams to the vertex's stdout/stderr the
// way the teacher's Vertex did.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/core/ports"
)

var (
	_ ports.Tracer = (*Tracer)(nil)
	_ ports.Span   = (*Span)(nil)
)

// Tracer implements ports.Tracer by recording one progrock vertex per span.
type Tracer struct {
	writer   progrock.Writer
	recorder *progrock.Recorder
}

// New creates a Tracer writing to a fresh in-memory progrock tape, suitable for a CLI run
// that renders its own progress UI from the tape's contents.
func New() *Tracer {
	return NewWithWriter(progrock.NewTape())
}

// NewWithWriter creates a Tracer recording vertices to w.
func NewWithWriter(w progrock.Writer) *Tracer {
	return &Tracer{
		writer:   w,
		recorder: progrock.NewRecorder(w),
	}
}

// Start opens a new vertex named name and returns a Span wrapping it. Options are
// currently unused, matching the teacher's VertexOption placeholder.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.recorder.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records the planned task set as a vertex of its own, since progrock vertices
// (unlike OTel spans) have no span-event concept to attach a plan listing to.
func (t *Tracer) EmitPlan(_ context.Context, taskNames []string) {
	d := digest.FromString("plan")
	v := t.recorder.Vertex(d, "plan")
	for _, name := range taskNames {
		_, _ = v.Stdout().Write([]byte(name + "\n"))
	}
	v.Done(nil)
}

// Close flushes and closes the underlying writer, if it supports closing.
func (t *Tracer) Close() error {
	if c, ok := t.writer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span over a single progrock vertex.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write streams log output to the vertex's stdout, satisfying io.Writer.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End marks the vertex complete, successfully unless RecordError was called first.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError marks the vertex as failed once End is called.
func (s *Span) RecordError(err error) {
	s.err = err
	_, _ = s.vertex.Stderr().Write([]byte(err.Error() + "\n"))
}

// SetAttribute writes key/value as a stdout log line, since progrock vertices have no
// structured-attribute concept.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = s.vertex.Stdout().Write([]byte(fmt.Sprintf("%s=%v\n", key, value)))
}
