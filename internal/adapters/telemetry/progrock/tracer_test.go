package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/core/ports"
)

func TestNew(t *testing.T) {
	tracer := progrock.New()
	assert.NotNil(t, tracer)
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*progrock.Tracer)(nil)
	var _ ports.Span = (*progrock.Span)(nil)
}

func TestTracer_Start_WritesAndEnds(t *testing.T) {
	tracer := progrock.New()
	_, span := tracer.Start(context.Background(), "build:app")
	require.NotNil(t, span)

	n, err := span.Write([]byte("compiling\n"))
	require.NoError(t, err)
	assert.Equal(t, len("compiling\n"), n)

	span.SetAttribute("task", "build")
	span.End()
}

func TestTracer_Start_RecordErrorMarksVertexFailed(t *testing.T) {
	tracer := progrock.New()
	_, span := tracer.Start(context.Background(), "build:app")

	span.RecordError(assert.AnError)
	span.End()
}

func TestTracer_EmitPlan(t *testing.T) {
	tracer := progrock.New()
	tracer.EmitPlan(context.Background(), []string{"lint", "build"})
	require.NoError(t, tracer.Close())
}
