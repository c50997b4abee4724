package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"termex/config"
	"termex/internal/adapter/analyzer"
	"termex/internal/adapter/parser"
	"termex/internal/adapter/store"
	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/logging"
	"termex/internal/metrics"
	"termex/internal/port"
)

// ProgressFunc reports extraction progress over the reference documents.
type ProgressFunc func(done, total int)

// ReferenceUseCase provides the reference index for a configuration,
// reading it from the store and building it on a miss.
type ReferenceUseCase struct {
	store    port.IndexStore
	metrics  *metrics.Metrics
	logger   *zap.Logger
	progress ProgressFunc
	workers  int
}

// NewReferenceUseCase creates a reference use case. m may be nil.
func NewReferenceUseCase(store port.IndexStore, m *metrics.Metrics, logger *zap.Logger) *ReferenceUseCase {
	return &ReferenceUseCase{
		store:   store,
		metrics: m,
		logger:  logging.OrNop(logger),
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetProgress installs a progress callback used while building.
func (u *ReferenceUseCase) SetProgress(fn ProgressFunc) {
	u.progress = fn
}

// Fingerprint returns the store key of the reference index for cfg.
func (u *ReferenceUseCase) Fingerprint(cfg *config.Config) string {
	return store.ComputeFingerprint(cfg)
}

// Load returns the reference index for cfg.
func (u *ReferenceUseCase) Load(ctx context.Context, cfg *config.Config) (*index.Index, error) {
	if cfg.Reference.Path == "" {
		return nil, fmt.Errorf("%w: reference.path is not set", domain.ErrMissingReference)
	}

	return u.loadOrBuild(ctx, cfg, u.Fingerprint(cfg))
}

func (u *ReferenceUseCase) loadOrBuild(ctx context.Context, cfg *config.Config, fp string) (*index.Index, error) {
	start := time.Now()
	blob, err := u.store.GetIndex(fp)
	switch {
	case err == nil:
		ix, err := index.Decode(blob)
		if err != nil {
			u.logger.Warn("discarding unreadable reference index",
				zap.String("fingerprint", fp), zap.Error(err))
			break
		}
		u.metrics.CountReference("store")
		u.metrics.ObservePhase("reference_load", start)
		u.logger.Info("reference index loaded",
			zap.String("fingerprint", fp),
			zap.Int("documents", ix.Size()),
			zap.Int("terms", ix.Terms()),
			zap.Duration("elapsed", time.Since(start)))
		return ix, nil
	case errors.Is(err, port.ErrIndexNotFound):
	default:
		return nil, fmt.Errorf("read reference index: %w", err)
	}

	ix, _, err := u.Build(ctx, cfg)
	return ix, err
}

// Build parses, extracts and indexes the reference corpus, then stores it
// under the configuration fingerprint.
func (u *ReferenceUseCase) Build(ctx context.Context, cfg *config.Config) (*index.Index, port.IndexInfo, error) {
	start := time.Now()
	fp := u.Fingerprint(cfg)
	u.logger.Info("building reference index",
		zap.String("fingerprint", fp),
		zap.String("source", cfg.Reference.Path))

	p, err := parser.New(cfg.Reference.Format, parser.Options{})
	if err != nil {
		return nil, port.IndexInfo{}, err
	}
	corpus, err := p.Parse(cfg.Reference.Path)
	if err != nil {
		return nil, port.IndexInfo{}, fmt.Errorf("parse reference corpus: %w", err)
	}
	u.metrics.ObservePhase("reference_parse", start)

	extractor, err := analyzer.NewNGramExtractor(analyzer.NGramConfig{
		Language:       cfg.Extraction.Language,
		MinLength:      store.ReferenceMinLength,
		MaxLength:      store.ReferenceMaxLength,
		MinOccurrences: cfg.Extraction.MinOccurrences,
		Stem:           cfg.Extraction.Stem,
	})
	if err != nil {
		return nil, port.IndexInfo{}, err
	}

	extractStart := time.Now()
	if err := extractWithProgress(ctx, corpus, extractor, u.progress); err != nil {
		return nil, port.IndexInfo{}, err
	}
	u.metrics.ObservePhase("reference_extract", extractStart)

	indexStart := time.Now()
	ix, err := index.NewParallel(ctx, corpus, u.workers)
	if err != nil {
		return nil, port.IndexInfo{}, err
	}
	u.metrics.ObservePhase("reference_index", indexStart)
	u.metrics.AddDocuments("reference", corpus.Size())

	blob, err := index.Encode(ix)
	if err != nil {
		return nil, port.IndexInfo{}, fmt.Errorf("encode reference index: %w", err)
	}
	info := port.IndexInfo{
		Source:    cfg.Reference.Path,
		Documents: ix.Size(),
		Terms:     ix.Terms(),
		BuiltAt:   time.Now().UTC(),
	}
	if err := u.store.PutIndex(fp, blob, info); err != nil {
		return nil, port.IndexInfo{}, fmt.Errorf("store reference index: %w", err)
	}
	info.Fingerprint = fp
	info.Bytes = len(blob)

	u.metrics.CountReference("build")
	u.logger.Info("reference index built",
		zap.String("fingerprint", fp),
		zap.Int("documents", info.Documents),
		zap.Int("terms", info.Terms),
		zap.Int("bytes", info.Bytes),
		zap.Duration("elapsed", time.Since(start)))
	return ix, info, nil
}

// Info describes the stored reference index for cfg.
func (u *ReferenceUseCase) Info(cfg *config.Config) (port.IndexInfo, error) {
	return u.store.GetInfo(u.Fingerprint(cfg))
}

// extractWithProgress extracts every document in id order, checking ctx
// between documents.
func extractWithProgress(ctx context.Context, corpus *domain.Corpus, ex domain.Extractor, progress ProgressFunc) error {
	docs := corpus.Documents()
	for i, d := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.SetTerms(ex.Extract(d.Text)); err != nil {
			return err
		}
		if progress != nil {
			progress(i+1, len(docs))
		}
	}
	return nil
}
