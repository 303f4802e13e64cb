package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestSegments_Render_FlattensCrossAsSibling(t *testing.T) {
	segments := domain.Segments{domain.Label("build"), domain.Cross("jvm", "2.13")}
	assert.Equal(t, filepath.Join("build", "jvm-2.13"), segments.Render())
}

func TestSegments_Render_PlainLabels(t *testing.T) {
	segments := domain.Segments{domain.Label("compile"), domain.Label("main")}
	assert.Equal(t, filepath.Join("compile", "main"), segments.Render())
}

func TestSegments_Display_UsesDotsRegardlessOfSegmentKind(t *testing.T) {
	segments := domain.Segments{domain.Label("build"), domain.Cross("jvm", "js")}
	assert.Equal(t, "build.jvm-js", segments.Display())
}

func TestSegments_WithOverride_AppendsDisambiguationSuffix(t *testing.T) {
	segments := domain.Segments{domain.Label("build")}
	disambiguated := segments.WithOverride("main.go")

	assert.Equal(t, filepath.Join("build", "overriden", "main.go"), disambiguated.Render())
	assert.Len(t, segments, 1, "WithOverride must not mutate the receiver")
}
