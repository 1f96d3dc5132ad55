package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	url, err := store.Save(ctx, "profile-abc.png", "image/png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != "/uploads/profile-abc.png" {
		t.Errorf("URL: got %q want /uploads/profile-abc.png", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "profile-abc.png"))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("stored bytes: got %q", data)
	}

	if err := store.Delete(ctx, "profile-abc.png"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "profile-abc.png")); !os.IsNotExist(err) {
		t.Error("file still exists after Delete")
	}

	// Deleting a missing object is not an error.
	if err := store.Delete(ctx, "profile-abc.png"); err != nil {
		t.Errorf("Delete of missing object failed: %v", err)
	}
}

func TestLocalStorageRejectsPathEscape(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"../escape.png", "a/b.png", ".", ".."} {
		if _, err := store.Save(ctx, key, "image/png", strings.NewReader("x")); err == nil {
			t.Errorf("Save accepted object key %q", key)
		}
		if err := store.Delete(ctx, key); err == nil {
			t.Errorf("Delete accepted object key %q", key)
		}
	}
}

func TestLocalStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStorage(dir, "/uploads"); err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("upload directory not created: %v", err)
	}
}
