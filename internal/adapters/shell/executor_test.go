package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/shell"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), []string{"sh", "-c", "echo line1; echo line2"}, tmpDir, nil, &stdout, io.Discard)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "line1")
	require.Contains(t, stdout.String(), "line2")
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	var stdout bytes.Buffer
	env := []string{"MY_TEST_VAR=test-value-123"}
	err := executor.Execute(context.Background(), []string{"sh", "-c", "echo $MY_TEST_VAR"}, tmpDir, env, &stdout, io.Discard)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "test-value-123")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	err := executor.Execute(context.Background(), []string{"nonexistent-command-xyz123"}, tmpDir, nil, io.Discard, io.Discard)
	require.Error(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	err := executor.Execute(context.Background(), []string{"sh", "-c", "exit 42"}, tmpDir, nil, io.Discard, io.Discard)
	require.Error(t, err)
	require.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	err := executor.Execute(context.Background(), nil, tmpDir, nil, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), []string{"/bin/sh", "-c", "echo test"}, tmpDir, nil, &stdout, io.Discard)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "test")
}

func TestExecutor_Execute_HermeticBinaryOnly(t *testing.T) {
	executor := shell.NewExecutor()

	hermeticDir := t.TempDir()
	cmdName := "my-hermetic-tool"
	cmdPath := filepath.Join(hermeticDir, cmdName)
	content := "#!/bin/sh\necho success\n"
	//nolint:gosec // Test requires executable file
	err := os.WriteFile(cmdPath, []byte(content), 0o700)
	require.NoError(t, err)

	env := []string{"PATH=" + hermeticDir}

	var stdout bytes.Buffer
	err = executor.Execute(context.Background(), []string{cmdName}, hermeticDir, env, &stdout, io.Discard)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "success")
}

func TestExecutor_Execute_PathKeepsAmbientPath(t *testing.T) {
	executor := shell.NewExecutor()
	tmpDir := t.TempDir()

	// /bin/sh must remain findable via the ambient PATH even though env only adds a
	// hermetic directory.
	hermeticDir := t.TempDir()
	env := []string{"PATH=" + hermeticDir}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), []string{"sh", "-c", "echo still-found"}, tmpDir, env, &stdout, io.Discard)
	require.NoError(t, err)
	require.True(t, strings.Contains(stdout.String(), "still-found"))
}
