package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extraction.MinLength != 1 || cfg.Extraction.MaxLength != 4 {
		t.Errorf("expected length bounds [1, 4], got [%d, %d]", cfg.Extraction.MinLength, cfg.Extraction.MaxLength)
	}
	if cfg.Scoring.Okapi.K != 2.0 {
		t.Errorf("expected K=2.0, got %f", cfg.Scoring.Okapi.K)
	}
	if cfg.Scoring.Okapi.B != 0.75 {
		t.Errorf("expected B=0.75, got %f", cfg.Scoring.Okapi.B)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("expected csv output, got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "termex.yaml")

	content := `
extraction:
  max_length: 6
  stem: true
scoring:
  method: OKAPI
  cvalue: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Extraction.MaxLength != 6 {
		t.Errorf("expected MaxLength=6, got %d", cfg.Extraction.MaxLength)
	}
	if !cfg.Extraction.Stem {
		t.Error("expected Stem=true")
	}
	if cfg.Scoring.Method != "OKAPI" || !cfg.Scoring.CValue {
		t.Errorf("unexpected scoring config: %+v", cfg.Scoring)
	}
	// Unset keys keep their defaults.
	if cfg.Extraction.MinLength != 1 {
		t.Errorf("expected default MinLength=1, got %d", cfg.Extraction.MinLength)
	}
}

func TestLoad_ExplicitZeroOkapi(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "termex.yaml")

	content := `
scoring:
  method: OKAPI
  okapi:
    k: 0
    b: 0
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Okapi.K != 0 || cfg.Scoring.Okapi.B != 0 {
		t.Errorf("explicit zero okapi parameters were replaced: %+v", cfg.Scoring.Okapi)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("k=0 b=0 should validate: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "termex.toml")

	content := `
[scoring]
method = "TFIDF_LOG"
aggregation = "SUM"

[output]
top_n = 50
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Method != "TFIDF_LOG" || cfg.Scoring.Aggregation != "SUM" {
		t.Errorf("unexpected scoring config: %+v", cfg.Scoring)
	}
	if cfg.Output.TopN != 50 {
		t.Errorf("expected TopN=50, got %d", cfg.Output.TopN)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "termex.yaml")
	if err := os.WriteFile(configPath, []byte("scoring: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Method != DefaultConfig().Scoring.Method {
		t.Error("expected defaults when no config file exists")
	}

	termexDir := filepath.Join(tmpDir, ".termex")
	if err := os.MkdirAll(termexDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "scoring:\n  method: CVALUE\n"
	if err := os.WriteFile(filepath.Join(termexDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Method != "CVALUE" {
		t.Errorf("expected CVALUE, got %s", cfg.Scoring.Method)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"termex.yaml", "termex.toml"} {
		path := filepath.Join(tmpDir, name)

		cfg := DefaultConfig()
		cfg.Scoring.Method = "OKAPI"
		cfg.Output.TopN = 7
		if err := cfg.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if loaded.Scoring.Method != "OKAPI" || loaded.Output.TopN != 7 {
			t.Errorf("%s: round trip lost values: %+v %+v", name, loaded.Scoring, loaded.Output)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"min length zero", func(c *Config) { c.Extraction.MinLength = 0 }, "min_length"},
		{"min above max", func(c *Config) { c.Extraction.MinLength = 5; c.Extraction.MaxLength = 2 }, "exceeds"},
		{"min occurrences zero", func(c *Config) { c.Extraction.MinOccurrences = 0 }, "min_occurrences"},
		{"unknown method", func(c *Config) { c.Scoring.Method = "BM42" }, "scoring.method"},
		{"unknown aggregation", func(c *Config) { c.Scoring.Aggregation = "MEDIAN" }, "aggregation"},
		{"unknown language", func(c *Config) { c.Extraction.Language = "latin" }, "language"},
		{"unknown extractor", func(c *Config) { c.Extraction.Method = "rake" }, "extraction.method"},
		{"unknown output", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"negative top", func(c *Config) { c.Output.TopN = -1 }, "top_n"},
		{"okapi b out of range", func(c *Config) { c.Scoring.Okapi.B = 2 }, "okapi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err, tt.errMsg)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Scoring.Method = "frequency"
	if err := cfg.Validate(); err != nil {
		t.Errorf("lowercase alias should validate: %v", err)
	}
}

func TestCachePaths(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.CacheDBPath("/work"); got != filepath.Join("/work", ".termex", "index.db") {
		t.Errorf("CacheDBPath() = %s", got)
	}

	cfg.Cache.Dir = "/var/cache/termex"
	if got := cfg.CacheDir("/work"); got != "/var/cache/termex" {
		t.Errorf("CacheDir() = %s", got)
	}

	tmpDir := t.TempDir()
	cfg.Cache.Dir = "cache"
	if err := cfg.EnsureCacheDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "cache")); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}
