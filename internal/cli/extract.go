package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termex/internal/usecase"
)

var (
	extractMethod      string
	extractAggregation string
	extractCValue      bool
	extractOutput      string
	extractFormat      string
	extractTop         int
	extractNoCache     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [corpus]",
	Short: "Rank the terms of a corpus",
	Long: `Extract candidate terms from a corpus and rank them.
The corpus is a file of documents separated by ##END## lines, a file of
<article> blocks, or a directory with one document per file.

Examples:
  termex extract corpus.txt
  termex extract docs/ --method OKAPI --aggregation MEAN --cvalue
  termex extract corpus.txt --format json --output terms.json --top 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractMethod, "method", "", "scoring method: FREQUENCE, TFIDF_STANDARD, TFIDF_LOG, OKAPI, CVALUE")
	extractCmd.Flags().StringVar(&extractAggregation, "aggregation", "", "aggregation formula: MAX, SUM, MEAN")
	extractCmd.Flags().BoolVar(&extractCValue, "cvalue", false, "blend scores with C-value")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "report file (default stdout)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "report format: csv or json")
	extractCmd.Flags().IntVarP(&extractTop, "top", "n", 0, "keep only the top N terms")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "do not read or write the on-disk reference cache")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if len(args) > 0 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		cfg.Corpus.Path = path
	} else {
		cfg.Corpus.Path = resolvePath(cfg.Corpus.Path)
	}
	if cfg.Corpus.Path == "" {
		return fmt.Errorf("no corpus given: pass a path or set corpus.path")
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Scoring.Method = extractMethod
	}
	if flags.Changed("aggregation") {
		cfg.Scoring.Aggregation = extractAggregation
	}
	if flags.Changed("cvalue") {
		cfg.Scoring.CValue = extractCValue
	}
	if flags.Changed("output") {
		cfg.Output.Path = extractOutput
	}
	if flags.Changed("format") {
		cfg.Output.Format = extractFormat
	}
	if flags.Changed("top") {
		cfg.Output.TopN = extractTop
	}
	if extractNoCache {
		cfg.Cache.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	reference := usecase.NewReferenceUseCase(st, runMetrics, logger)
	reference.SetProgress(newProgress("Reference"))

	extractUC := usecase.NewExtractUseCase(cfg, reference, runMetrics, logger, cmd.OutOrStdout())
	result, err := extractUC.Run(cmd.Context())
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return fmt.Errorf("extraction failed: %w", err)
	}

	// The report may be on stdout, so the summary goes to stderr.
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "\nExtraction complete:\n")
	fmt.Fprintf(out, "  Documents:      %d\n", result.Documents)
	fmt.Fprintf(out, "  Distinct terms: %d\n", result.Terms)
	fmt.Fprintf(out, "  Ranked terms:   %d\n", len(result.Ranked))
	fmt.Fprintf(out, "  Elapsed:        %s\n", formatDuration(result.Elapsed))
	if result.Output != "" {
		fmt.Fprintf(out, "\nReport written to: %s\n", result.Output)
	}
	return nil
}
