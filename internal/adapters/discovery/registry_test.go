package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/discovery"
)

func TestRegistry_Discover_Found(t *testing.T) {
	reg := discovery.NewRegistry(map[string]discovery.Entry{
		"go_binary": {OverrideCount: 2, EntryPoint: "main.go"},
	})

	overrides, entryPoint, found := reg.Discover("go_binary")
	assert.True(t, found)
	assert.Equal(t, 2, overrides)
	assert.Equal(t, "main.go", entryPoint)
}

func TestRegistry_Discover_NotFound(t *testing.T) {
	reg := discovery.NewRegistry(nil)

	overrides, entryPoint, found := reg.Discover("unknown")
	assert.False(t, found)
	assert.Equal(t, 0, overrides)
	assert.Equal(t, "", entryPoint)
}
