package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverContentFiles(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := map[string]string{
		"extra.txt":   "# comment line\nquasar nebula\n// another\npulsar",
		"more.txt":    "zephyr",
		".hidden.txt": "secret",
		"notes.md":    "ignored",
	}
	for name, body := range testFiles {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte(body), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}

	m := NewManager(tempDir)
	if err := m.DiscoverContentFiles(); err != nil {
		t.Fatalf("DiscoverContentFiles failed: %v", err)
	}

	files := m.ContentFiles()
	if len(files) != 2 {
		t.Fatalf("discovered %d files, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".txt" {
			t.Errorf("Non-.txt file discovered: %s", f)
		}
	}

	bank := m.LoadBank()
	found := false
	for _, w := range bank.Words(6) {
		if w == "quasar" {
			found = true
		}
	}
	if !found {
		t.Error("word from discovered file missing in bank")
	}
	for _, w := range bank.Words(7) {
		if w == "comment" {
			t.Error("comment line leaked into bank")
		}
	}
}

func TestDiscoverContentFiles_MissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := m.DiscoverContentFiles(); err != nil {
		t.Errorf("Expected no error for missing directory, got: %v", err)
	}
	if len(m.ContentFiles()) != 0 {
		t.Errorf("Expected 0 files, got %d", len(m.ContentFiles()))
	}
	if m.LoadBank().Len() == 0 {
		t.Error("embedded words should still load")
	}
}

func TestLoadWords_NonExistent(t *testing.T) {
	m := NewManager("")
	if _, err := m.LoadWords("/nonexistent/file.txt"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
