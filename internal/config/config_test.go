package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	body := "locality: local\nwrangler: [\"./node_modules/.bin/wrangler\"]\ndebug: true\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if c.Locality != "local" {
		t.Errorf("Locality = %q, want %q", c.Locality, "local")
	}
	if len(c.Wrangler) != 1 || c.Wrangler[0] != "./node_modules/.bin/wrangler" {
		t.Errorf("Wrangler = %v, want override", c.Wrangler)
	}
	if !c.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("locality: remote\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "migrations", "sql")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := Load(nested)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if c.Locality != "remote" {
		t.Errorf("Locality = %q, want %q", c.Locality, "remote")
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("locality: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load() expected error for invalid yaml, got nil")
	}
}
