package index

import (
	"encoding/json"
	"fmt"

	"termex/internal/domain"
)

// SnapshotVersion identifies the snapshot encoding.
const SnapshotVersion = 1

type snapshot struct {
	Version   int                    `json:"version"`
	Size      int                    `json:"size"`
	MeanWords float64                `json:"mean_words"`
	Documents map[int]map[string]int `json:"documents"`
}

// Encode serialises the index. Terms are stored in their word-separated key
// form, so Decode restores identical forward and inverted maps.
func Encode(ix *Index) ([]byte, error) {
	snap := snapshot{
		Version:   SnapshotVersion,
		Size:      ix.size,
		MeanWords: ix.meanWords,
		Documents: make(map[int]map[string]int, len(ix.forward)),
	}
	for id, counts := range ix.forward {
		doc := make(map[string]int, len(counts))
		for term, freq := range counts {
			doc[string(term)] = freq
		}
		snap.Documents[id] = doc
	}
	return json.Marshal(snap)
}

// Decode restores an index produced by Encode. The result has no corpus.
func Decode(data []byte) (*Index, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode index snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported index snapshot version %d", snap.Version)
	}

	forward := make(map[int]map[domain.Term]int, len(snap.Documents))
	for id, doc := range snap.Documents {
		counts := make(map[domain.Term]int, len(doc))
		for key, freq := range doc {
			counts[domain.Term(key)] = freq
		}
		forward[id] = counts
	}

	return &Index{
		forward:   forward,
		inverted:  invert(forward),
		size:      snap.Size,
		meanWords: snap.MeanWords,
	}, nil
}
