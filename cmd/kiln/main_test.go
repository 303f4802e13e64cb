package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tests := []struct {
		name         string
		setupConfig  func(tmpDir string) string
		args         []string
		expectedExit int
	}{
		{
			name: "success with valid config",
			setupConfig: func(tmpDir string) string {
				configPath := tmpDir + "/kiln.yaml"
				configContent := `version: "1"
tasks:
  test:
    cmd: ["echo", "hello"]
`
				require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
				return configPath
			},
			args:         []string{"kiln", "run", "test"},
			expectedExit: 0,
		},
		{
			name: "error with missing config",
			setupConfig: func(tmpDir string) string {
				return tmpDir + "/nonexistent.yaml"
			},
			args:         []string{"kiln", "-c", "nonexistent.yaml", "run", "test"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := tt.setupConfig(tmpDir)

			originalWd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(tmpDir))
			defer func() { _ = os.Chdir(originalWd) }()

			os.Args = tt.args
			if tt.args[1] == "-c" {
				os.Args[2] = configPath
			}

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
