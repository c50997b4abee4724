package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for termex.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus" toml:"corpus"`
	Reference  ReferenceConfig  `yaml:"reference" toml:"reference"`
	Extraction ExtractionConfig `yaml:"extraction" toml:"extraction"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Cache      CacheConfig      `yaml:"cache" toml:"cache"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics" toml:"metrics"`
}

// CorpusConfig describes the corpus to rank terms for.
type CorpusConfig struct {
	Path     string   `yaml:"path" toml:"path"`
	Format   string   `yaml:"format" toml:"format"` // "split", "article", "dir", "auto"
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// ReferenceConfig describes the general-language reference corpus.
type ReferenceConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Format string `yaml:"format" toml:"format"`
}

// ExtractionConfig holds candidate term extraction settings.
type ExtractionConfig struct {
	Method         string `yaml:"method" toml:"method"` // only "ngrams"
	Stem           bool   `yaml:"stem" toml:"stem"`
	Language       string `yaml:"language" toml:"language"`
	MinLength      int    `yaml:"min_length" toml:"min_length"`
	MaxLength      int    `yaml:"max_length" toml:"max_length"`
	MinOccurrences int    `yaml:"min_occurrences" toml:"min_occurrences"`
}

// ScoringConfig holds the ranking strategy.
type ScoringConfig struct {
	Method      string      `yaml:"method" toml:"method"`
	Aggregation string      `yaml:"aggregation" toml:"aggregation"`
	CValue      bool        `yaml:"cvalue" toml:"cvalue"`
	Okapi       OkapiConfig `yaml:"okapi" toml:"okapi"`
}

// OkapiConfig holds BM25 parameters.
type OkapiConfig struct {
	K float64 `yaml:"k" toml:"k"`
	B float64 `yaml:"b" toml:"b"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Path   string `yaml:"path" toml:"path"`     // empty means stdout
	Format string `yaml:"format" toml:"format"` // "csv" or "json"
	TopN   int    `yaml:"top_n" toml:"top_n"`   // 0 keeps every term
}

// CacheConfig holds reference index cache settings.
type CacheConfig struct {
	Dir     string `yaml:"dir" toml:"dir"`
	Enabled bool   `yaml:"enabled" toml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" toml:"textfile"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Format:   "auto",
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.termex/**"},
		},
		Reference: ReferenceConfig{
			Format: "article",
		},
		Extraction: ExtractionConfig{
			Method:         "ngrams",
			Stem:           false,
			Language:       "french",
			MinLength:      1,
			MaxLength:      4,
			MinOccurrences: 1,
		},
		Scoring: ScoringConfig{
			Method:      "TFIDF_STANDARD",
			Aggregation: "MAX",
			CValue:      false,
			Okapi: OkapiConfig{
				K: 2.0,
				B: 0.75,
			},
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Cache: CacheConfig{
			Dir:     ".termex",
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory, looking for termex.yaml,
// termex.toml and .termex/config.yaml in that order.
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "termex.yaml"),
		filepath.Join(dir, "termex.toml"),
		filepath.Join(dir, ".termex", "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML or TOML file, chosen by extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	validScoringMethods = []string{"FREQUENCE", "FREQUENCY", "TFIDF_STANDARD", "TFIDF_LOG", "OKAPI", "CVALUE"}
	validAggregations   = []string{"MAX", "SUM", "MEAN"}
	validLanguages      = []string{"french", "english"}
	validCorpusFormats  = []string{"split", "article", "dir", "auto"}
	validOutputFormats  = []string{"csv", "json"}
)

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	e := c.Extraction
	if e.Method != "ngrams" {
		return fmt.Errorf("extraction.method: unknown method %q", e.Method)
	}
	if e.MinLength < 1 {
		return fmt.Errorf("extraction.min_length must be >= 1, got %d", e.MinLength)
	}
	if e.MinLength > e.MaxLength {
		return fmt.Errorf("extraction.min_length (%d) exceeds max_length (%d)", e.MinLength, e.MaxLength)
	}
	if e.MinOccurrences < 1 {
		return fmt.Errorf("extraction.min_occurrences must be >= 1, got %d", e.MinOccurrences)
	}
	if !oneOf(e.Language, validLanguages) {
		return fmt.Errorf("extraction.language: unsupported language %q", e.Language)
	}
	if !oneOf(c.Scoring.Method, validScoringMethods) {
		return fmt.Errorf("scoring.method: unknown method %q", c.Scoring.Method)
	}
	if c.Scoring.Aggregation != "" && !oneOf(c.Scoring.Aggregation, validAggregations) {
		return fmt.Errorf("scoring.aggregation: unknown formula %q", c.Scoring.Aggregation)
	}
	if c.Scoring.Okapi.K < 0 || c.Scoring.Okapi.B < 0 || c.Scoring.Okapi.B > 1 {
		return fmt.Errorf("scoring.okapi: k must be >= 0 and b in [0, 1]")
	}
	if !oneOf(c.Corpus.Format, validCorpusFormats) {
		return fmt.Errorf("corpus.format: unknown format %q", c.Corpus.Format)
	}
	if !oneOf(c.Reference.Format, validCorpusFormats) {
		return fmt.Errorf("reference.format: unknown format %q", c.Reference.Format)
	}
	if !oneOf(c.Output.Format, validOutputFormats) {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Output.TopN < 0 {
		return fmt.Errorf("output.top_n must be >= 0, got %d", c.Output.TopN)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

// CacheDir returns the cache directory, resolved against dir when relative.
func (c *Config) CacheDir(dir string) string {
	if filepath.IsAbs(c.Cache.Dir) {
		return c.Cache.Dir
	}
	return filepath.Join(dir, c.Cache.Dir)
}

// CacheDBPath returns the path to the reference index database.
func (c *Config) CacheDBPath(dir string) string {
	return filepath.Join(c.CacheDir(dir), "index.db")
}

// EnsureCacheDir ensures the cache directory exists.
func (c *Config) EnsureCacheDir(dir string) error {
	return os.MkdirAll(c.CacheDir(dir), 0755)
}
