package port

import (
	"fmt"
	"time"

	"termex/internal/domain"
)

// ErrIndexNotFound is returned when no index is stored under a fingerprint.
var ErrIndexNotFound = fmt.Errorf("%w: index not found", domain.ErrLookupMiss)

// IndexStore persists serialised indexes keyed by extraction fingerprint.
type IndexStore interface {
	PutIndex(fingerprint string, blob []byte, info IndexInfo) error

	GetIndex(fingerprint string) ([]byte, error)

	GetInfo(fingerprint string) (IndexInfo, error)

	DeleteIndex(fingerprint string) error

	ListIndexes() ([]IndexInfo, error)

	Clear() error

	Close() error
}

// IndexInfo describes a stored index.
type IndexInfo struct {
	Fingerprint string    `json:"fingerprint"`
	Source      string    `json:"source"`
	Documents   int       `json:"documents"`
	Terms       int       `json:"terms"`
	Bytes       int       `json:"bytes"`
	BuiltAt     time.Time `json:"built_at"`
}
