package memstore

import (
	"fmt"
	"sort"
	"sync"

	"termex/internal/port"
)

var _ port.IndexStore = (*MemoryStore)(nil)

// MemoryStore is an in-process port.IndexStore, used when the on-disk cache
// is disabled.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	infos map[string]port.IndexInfo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		infos: make(map[string]port.IndexInfo),
	}
}

func (s *MemoryStore) PutIndex(fingerprint string, blob []byte, info port.IndexInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info.Fingerprint = fingerprint
	info.Bytes = len(blob)
	s.blobs[fingerprint] = append([]byte(nil), blob...)
	s.infos[fingerprint] = info
	return nil
}

func (s *MemoryStore) GetIndex(fingerprint string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[fingerprint]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrIndexNotFound, fingerprint)
	}
	return append([]byte(nil), blob...), nil
}

func (s *MemoryStore) GetInfo(fingerprint string) (port.IndexInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.infos[fingerprint]
	if !ok {
		return port.IndexInfo{}, fmt.Errorf("%w: %s", port.ErrIndexNotFound, fingerprint)
	}
	return info, nil
}

func (s *MemoryStore) DeleteIndex(fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, fingerprint)
	delete(s.infos, fingerprint)
	return nil
}

func (s *MemoryStore) ListIndexes() ([]port.IndexInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]port.IndexInfo, 0, len(s.infos))
	for _, info := range s.infos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].BuiltAt.After(infos[j].BuiltAt)
	})
	return infos, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs = make(map[string][]byte)
	s.infos = make(map[string]port.IndexInfo)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
