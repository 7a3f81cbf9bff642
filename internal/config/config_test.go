package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Language {
		t.Error("Language should default to false")
	}
	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.Summary {
		t.Error("Summary should default to false")
	}
	if cfg.Output.Prefix != DefaultOutputPrefix {
		t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, DefaultOutputPrefix)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads from explicit path", func(t *testing.T) {
		path := writeConfig(t, `
language: true
color: false
summary: true
output:
  prefix: tidy_
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Language || cfg.Color || !cfg.Summary {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.Output.Prefix != "tidy_" {
			t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, "tidy_")
		}
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, "language: true\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Color {
			t.Error("Color should keep its default when absent")
		}
		if cfg.Output.Prefix != DefaultOutputPrefix {
			t.Errorf("Output.Prefix = %q, want default", cfg.Output.Prefix)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		path := writeConfig(t, "languag: true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("rejects prefix with path separator", func(t *testing.T) {
		path := writeConfig(t, "output:\n  prefix: ../evil_\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidPrefix) {
			t.Errorf("error = %v, want ErrInvalidPrefix", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("unresolvable name lists searched paths", func(t *testing.T) {
		_, err := LoadConfig("definitely-not-a-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

func TestSearchedPaths(t *testing.T) {
	paths := SearchedPaths("default")
	if len(paths) < 2 {
		t.Fatalf("SearchedPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "default.yaml" || paths[1] != "default.yml" {
		t.Errorf("local paths = %v, want default.yaml then default.yml", paths[:2])
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cleantext.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
