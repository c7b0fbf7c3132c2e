package norgfmt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	for _, opt := range []Option{
		WithLineLength(100),
		WithNewlineAfterHeadings(true),
		WithIndentHeadings(true),
	} {
		opt(&cfg)
	}
	if cfg.LineLength != 100 || !cfg.NewlineAfterHeadings || !cfg.IndentHeadings {
		t.Fatalf("options not applied: %+v", cfg)
	}

	WithLineLength(0)(&cfg)
	if cfg.LineLength != 100 {
		t.Fatalf("non-positive line length must be ignored, got %d", cfg.LineLength)
	}

	WithConfig(DefaultConfig())(&cfg)
	if cfg != DefaultConfig() {
		t.Fatalf("WithConfig must replace the whole configuration: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "line_length = 100\nnewline_after_headings = true\nindent_headings = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.LineLength != 100 || !cfg.NewlineAfterHeadings || !cfg.IndentHeadings {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("newline_after_headings = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.LineLength != DefaultLineLength {
		t.Fatalf("absent line_length must keep the default, got %d", cfg.LineLength)
	}
	if !cfg.NewlineAfterHeadings {
		t.Fatalf("newline_after_headings not applied")
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("line_lenght = 90\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestLoadConfigFileRejectsNonPositiveLineLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("line_length = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected error for line_length = 0")
	}
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("line_length = 90\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	found, ok, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find %s above %s", ConfigFileName, nested)
	}
	if found != path {
		t.Fatalf("expected %s, got %s", path, found)
	}
}

func TestFindConfigFileMissing(t *testing.T) {
	_, ok, err := FindConfigFile(t.TempDir())
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if ok {
		t.Fatalf("expected no config file in an empty tree")
	}
}
