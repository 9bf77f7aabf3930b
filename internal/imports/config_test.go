package imports

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("extension = %q, want %q", cfg.Extension, DefaultExtension)
	}
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("search paths = %v, want none", cfg.SearchPaths)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "search_paths:\n  - vendor\n  - /opt/nacre/lib\nextension: .nacre\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extension != ".nacre" {
		t.Errorf("extension = %q, want %q", cfg.Extension, ".nacre")
	}
	if len(cfg.SearchPaths) != 2 {
		t.Fatalf("search paths = %v, want 2 entries", cfg.SearchPaths)
	}
	if cfg.SearchPaths[0] != filepath.Join(dir, "vendor") {
		t.Errorf("relative path rebased to %q, want project-rooted", cfg.SearchPaths[0])
	}
	if cfg.SearchPaths[1] != "/opt/nacre/lib" {
		t.Errorf("absolute path changed to %q", cfg.SearchPaths[1])
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("search_paths: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("malformed config produced no error")
	}
}
