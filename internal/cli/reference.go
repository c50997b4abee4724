package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"termex/internal/port"
	"termex/internal/usecase"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Manage the reference corpus index",
	Long: `The reference index holds the document statistics of a general-language
corpus. TF-IDF and Okapi scores are computed against it. It is built once per
extraction configuration and stored in the cache directory.`,
}

var referenceBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and store the reference index for the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runReferenceBuild,
}

var referenceInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the stored reference index for the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runReferenceInfo,
}

func init() {
	referenceCmd.AddCommand(referenceBuildCmd, referenceInfoCmd)
	rootCmd.AddCommand(referenceCmd)
}

func runReferenceBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Reference.Path == "" {
		return fmt.Errorf("reference.path is not set")
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	referenceUC := usecase.NewReferenceUseCase(st, runMetrics, logger)
	referenceUC.SetProgress(newProgress("Extracting"))

	fmt.Printf("Building reference index from %s...\n", cfg.Reference.Path)
	start := time.Now()
	_, info, err := referenceUC.Build(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("reference build failed: %w", err)
	}

	fmt.Printf("\nReference index built in %s:\n", formatDuration(time.Since(start)))
	printInfo(info)
	return nil
}

func runReferenceInfo(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	referenceUC := usecase.NewReferenceUseCase(st, runMetrics, logger)
	info, err := referenceUC.Info(cfg)
	if errors.Is(err, port.ErrIndexNotFound) {
		fmt.Printf("No reference index for fingerprint %s. Run 'termex reference build'.\n", referenceUC.Fingerprint(cfg))
		return nil
	}
	if err != nil {
		return err
	}

	printInfo(info)
	return nil
}

func printInfo(info port.IndexInfo) {
	fmt.Printf("  Fingerprint: %s\n", info.Fingerprint)
	fmt.Printf("  Source:      %s\n", info.Source)
	fmt.Printf("  Documents:   %d\n", info.Documents)
	fmt.Printf("  Terms:       %d\n", info.Terms)
	fmt.Printf("  Size:        %d bytes\n", info.Bytes)
	fmt.Printf("  Built at:    %s\n", info.BuiltAt.Format(time.RFC3339))
}

// newProgress returns a progress callback drawing a bar with an ETA on
// stderr. The bar is created on the first call, once the total is known.
func newProgress(label string) usecase.ProgressFunc {
	var (
		bar       *progressbar.ProgressBar
		barMu     sync.Mutex
		startTime time.Time
	)

	return func(processed, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", label)),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]%s[reset] ETA: %s", label, formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
