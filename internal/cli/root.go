package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termex/config"
	"termex/internal/adapter/memstore"
	"termex/internal/adapter/store"
	"termex/internal/logging"
	"termex/internal/metrics"
	"termex/internal/port"
)

var (
	cfgFile     string
	cfg         *config.Config
	rootDir     string
	logLevel    string
	metricsFile string

	logger     *zap.Logger
	runMetrics *metrics.Metrics
)

var rootCmd = &cobra.Command{
	Use:   "termex",
	Short: "Terminology extraction - rank the domain terms of a corpus",
	Long: `termex extracts candidate terms from a corpus and ranks them by how
specific they are to it, using frequency, TF-IDF or Okapi BM25 against a
general-language reference corpus, optionally fused with C-value.

Example usage:
  termex config init                     # Write termex.yaml with defaults
  termex reference build                 # Build the reference index once
  termex extract corpus.txt --top 100    # Rank the terms of corpus.txt`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if metricsFile != "" {
			cfg.Metrics.Textfile = metricsFile
		}
		cfg.Reference.Path = resolvePath(cfg.Reference.Path)

		base, err := logging.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		logger = base.With(zap.String("run_id", uuid.NewString()))
		runMetrics = metrics.New()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		if cfg.Metrics.Textfile == "" {
			return nil
		}
		if err := runMetrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("metrics written", zap.String("path", cfg.Metrics.Textfile))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./termex.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// resolvePath makes a config path absolute relative to the root directory.
func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

// openStore opens the on-disk index store, or an in-memory one when the
// cache is disabled.
func openStore(cfg *config.Config) (port.IndexStore, error) {
	if !cfg.Cache.Enabled {
		return memstore.NewMemoryStore(), nil
	}

	if err := cfg.EnsureCacheDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := cfg.CacheDBPath(rootDir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}

	result, err := st.EnsureSchema()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to migrate index store: %w", err)
	}
	if result.NeedsRebuild {
		logger.Warn("index store cleared", zap.String("reason", result.Reason))
	} else if result.NeedsMigration {
		logger.Info("index store migrated", zap.String("reason", result.Reason))
	}
	return st, nil
}
