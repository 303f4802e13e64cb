package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/kiln/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) { //nolint:cyclop // Test complexity is acceptable
	// Create temp directory structure
	// tmp/
	//   .git/
	//     config
	//   ignored/
	//     file
	//   src/
	//     main.go
	//   README.md

	tmpDir, err := os.MkdirTemp("", "walker_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup in test

	// Create .git directory
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("git config"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create ignored directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "ignored"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "ignored", "file"), []byte("ignored content"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create src directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "src", "main.go"), []byte("package main"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create README.md
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Readme"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	walker := fs.NewWalker()
	ignores := []string{"ignored"}

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, ignores) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[rel] = true
	}

	// Assertions
	if files[".git/config"] {
		t.Error("expected .git/config to be skipped")
	}
	if files["ignored/file"] {
		t.Error("expected ignored/file to be skipped")
	}
	if !files["src/main.go"] {
		t.Error("expected src/main.go to be found")
	}
	if !files["README.md"] {
		t.Error("expected README.md to be found")
	}
}

func TestHasher_HashFiles_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "input.txt"), []byte("input content"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	h1, err := hasher.HashFiles(tmpDir, []string{"input.txt"})
	if err != nil {
		t.Fatalf("HashFiles failed: %v", err)
	}
	h2, err := hasher.HashFiles(tmpDir, []string{"input.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("expected HashFiles to be deterministic")
	}
	if h1 == 0 {
		t.Error("expected a non-zero hash")
	}
}

func TestHasher_HashFiles_OrderIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte("b"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	h1, err := hasher.HashFiles(tmpDir, []string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatal(err)
	}
	h2, err := hasher.HashFiles(tmpDir, []string{"b.txt", "a.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("expected HashFiles to be independent of pattern order")
	}
}

func TestHasher_HashFiles_ChangesWithContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "input.txt")
	if err := os.WriteFile(path, []byte("original"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	h1, err := hasher.HashFiles(tmpDir, []string{"input.txt"})
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("modified"), 0o600); err != nil {
		t.Fatal(err)
	}

	h2, err := hasher.HashFiles(tmpDir, []string{"input.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("expected hash to change when file content changes")
	}
}

func TestHasher_HashFiles_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "src", "main.go"), []byte("package main"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	h1, err := hasher.HashFiles(tmpDir, []string{"src"})
	if err != nil {
		t.Fatalf("HashFiles over a directory failed: %v", err)
	}
	if h1 == 0 {
		t.Error("expected a non-zero hash for a directory input")
	}
}

func TestHasher_HashFiles_MissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher(fs.NewWalker())

	if _, err := hasher.HashFiles(tmpDir, []string{"does-not-exist.txt"}); err == nil {
		t.Error("expected an error for a missing, non-glob input")
	}
}
