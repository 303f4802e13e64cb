package cas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/kiln/internal/adapters/cas"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	metaPath := filepath.Join(tmpDir, "meta.json")

	store := cas.NewStore()

	rec := domain.CachedRecord{
		Value:      json.RawMessage(`42`),
		ValueHash:  123,
		InputsHash: 456,
	}
	if err := store.Put(metaPath, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := store.Get(metaPath)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got.InputsHash != rec.InputsHash || got.ValueHash != rec.ValueHash {
		t.Errorf("expected %+v, got %+v", rec, got)
	}
}

func TestStore_Get_MissingFileIsMissNotError(t *testing.T) {
	tmpDir := t.TempDir()
	store := cas.NewStore()

	got, ok, err := store.Get(filepath.Join(tmpDir, "nonexistent", "meta.json"))
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected (nil, false), got (%v, %v)", got, ok)
	}
}

func TestStore_Get_CorruptFileIsMissNotError(t *testing.T) {
	tmpDir := t.TempDir()
	metaPath := filepath.Join(tmpDir, "meta.json")
	store := cas.NewStore()

	if err := store.Put(metaPath, domain.CachedRecord{}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	// Overwrite with garbage using a direct call through the store's own Put semantics is
	// not possible (Put always serializes valid JSON), so corrupt the file directly.
	corrupt := []byte("{not valid json")
	if err := os.WriteFile(metaPath, corrupt, 0o644); err != nil {
		t.Fatalf("failed to corrupt meta.json: %v", err)
	}

	got, ok, err := store.Get(metaPath)
	if err != nil {
		t.Fatalf("expected no error for a corrupt file, got %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected (nil, false) on corrupt file, got (%v, %v)", got, ok)
	}
}

func TestStore_Delete_AbsentFileIsNotAnError(t *testing.T) {
	tmpDir := t.TempDir()
	store := cas.NewStore()

	if err := store.Delete(filepath.Join(tmpDir, "meta.json")); err != nil {
		t.Fatalf("expected deleting an absent file to succeed, got %v", err)
	}
}

func TestStore_Delete_RemovesFile(t *testing.T) {
	tmpDir := t.TempDir()
	metaPath := filepath.Join(tmpDir, "meta.json")
	store := cas.NewStore()

	if err := store.Put(metaPath, domain.CachedRecord{}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(metaPath); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, ok, err := store.Get(metaPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected file to be gone after Delete")
	}
}

