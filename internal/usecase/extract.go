package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"termex/config"
	"termex/internal/adapter/analyzer"
	"termex/internal/adapter/parser"
	"termex/internal/adapter/report"
	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/logging"
	"termex/internal/metrics"
	"termex/internal/scoring"
)

// ExtractUseCase ranks the candidate terms of a corpus.
type ExtractUseCase struct {
	cfg       *config.Config
	reference *ReferenceUseCase
	metrics   *metrics.Metrics
	logger    *zap.Logger
	stdout    io.Writer
}

// NewExtractUseCase creates an extract use case. stdout receives the report
// when output.path is empty.
func NewExtractUseCase(
	cfg *config.Config,
	reference *ReferenceUseCase,
	m *metrics.Metrics,
	logger *zap.Logger,
	stdout io.Writer,
) *ExtractUseCase {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &ExtractUseCase{
		cfg:       cfg,
		reference: reference,
		metrics:   m,
		logger:    logging.OrNop(logger),
		stdout:    stdout,
	}
}

// RunResult contains the results of an extraction run.
type RunResult struct {
	Documents int
	Terms     int
	Ranked    []domain.ScoredTerm
	Output    string // report path, empty for stdout
	Elapsed   time.Duration
}

// Run parses, extracts, indexes, scores and ranks the corpus and writes the
// report.
func (u *ExtractUseCase) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	cfg := u.cfg

	opts, err := scoring.ParseOptions(
		cfg.Scoring.Method,
		cfg.Scoring.Aggregation,
		cfg.Scoring.CValue,
		cfg.Scoring.Okapi.K,
		cfg.Scoring.Okapi.B,
	)
	if err != nil {
		return nil, err
	}
	writer, err := report.New(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	phase := time.Now()
	p, err := parser.New(cfg.Corpus.Format, parser.Options{
		Includes: cfg.Corpus.Includes,
		Excludes: cfg.Corpus.Excludes,
	})
	if err != nil {
		return nil, err
	}
	corpus, err := p.Parse(cfg.Corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	u.metrics.ObservePhase("parse", phase)
	u.logger.Info("corpus parsed",
		zap.String("path", cfg.Corpus.Path),
		zap.Int("documents", corpus.Size()))

	extractor, err := analyzer.NewNGramExtractor(analyzer.NGramConfig{
		Language:       cfg.Extraction.Language,
		MinLength:      cfg.Extraction.MinLength,
		MaxLength:      cfg.Extraction.MaxLength,
		MinOccurrences: cfg.Extraction.MinOccurrences,
		Stem:           cfg.Extraction.Stem,
	})
	if err != nil {
		return nil, err
	}

	phase = time.Now()
	if err := extractWithProgress(ctx, corpus, extractor, nil); err != nil {
		return nil, fmt.Errorf("extract terms: %w", err)
	}
	u.metrics.ObservePhase("extract", phase)

	phase = time.Now()
	ix, err := index.NewParallel(ctx, corpus, runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, err
	}
	u.metrics.ObservePhase("index", phase)
	u.metrics.AddDocuments("corpus", corpus.Size())
	u.logger.Info("corpus indexed",
		zap.Int("documents", ix.Size()),
		zap.Int("terms", ix.Terms()))

	var ref *index.Index
	if opts.Method.NeedsReference() {
		if u.reference == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingReference, opts.Method)
		}
		if ref, err = u.reference.Load(ctx, cfg); err != nil {
			return nil, err
		}
	}

	phase = time.Now()
	scorer, err := scoring.New(opts, ref)
	if err != nil {
		return nil, err
	}
	ranked, err := scoring.ScoreAndRank(scorer, ix)
	if err != nil {
		return nil, fmt.Errorf("score terms: %w", err)
	}
	u.metrics.ObservePhase("score", phase)
	u.metrics.SetTermsScored(len(ranked))

	ranked = extractor.Display(ranked)
	if n := cfg.Output.TopN; n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	if err := u.writeReport(writer.Write, ranked); err != nil {
		return nil, err
	}

	result := &RunResult{
		Documents: corpus.Size(),
		Terms:     ix.Terms(),
		Ranked:    ranked,
		Output:    cfg.Output.Path,
		Elapsed:   time.Since(start),
	}
	u.logger.Info("extraction complete",
		zap.String("method", opts.Method.String()),
		zap.Int("documents", result.Documents),
		zap.Int("terms", result.Terms),
		zap.Int("ranked", len(ranked)),
		zap.Duration("elapsed", result.Elapsed))
	return result, nil
}

func (u *ExtractUseCase) writeReport(write func(io.Writer, []domain.ScoredTerm) error, ranked []domain.ScoredTerm) error {
	if u.cfg.Output.Path == "" {
		return write(u.stdout, ranked)
	}

	f, err := os.Create(u.cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := write(f, ranked); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
