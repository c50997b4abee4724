package index

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"termex/internal/domain"
)

// NewParallel builds the same index as New, counting documents on up to
// workers goroutines and merging per-worker inverted shards by term.
func NewParallel(ctx context.Context, corpus *domain.Corpus, workers int) (*Index, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	docs := corpus.Documents()
	if workers > len(docs) {
		workers = len(docs)
	}
	if workers <= 1 {
		return New(corpus)
	}

	forwardShards := make([]map[int]map[domain.Term]int, workers)
	invertedShards := make([]map[domain.Term]map[int]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			forward := make(map[int]map[domain.Term]int)
			for i := w; i < len(docs); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				counts, err := countTerms(docs[i])
				if err != nil {
					return err
				}
				forward[docs[i].ID] = counts
			}
			forwardShards[w] = forward
			invertedShards[w] = invert(forward)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	forward := make(map[int]map[domain.Term]int, len(docs))
	for _, shard := range forwardShards {
		for id, counts := range shard {
			forward[id] = counts
		}
	}

	// Shards hold disjoint document ids, so merging by term never overwrites.
	inverted := make(map[domain.Term]map[int]int)
	for _, shard := range invertedShards {
		for term, postings := range shard {
			merged, ok := inverted[term]
			if !ok {
				inverted[term] = postings
				continue
			}
			for id, freq := range postings {
				merged[id] = freq
			}
		}
	}

	return &Index{
		corpus:    corpus,
		forward:   forward,
		inverted:  inverted,
		size:      corpus.Size(),
		meanWords: corpus.MeanWordCount(),
	}, nil
}
