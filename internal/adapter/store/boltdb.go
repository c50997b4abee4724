package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"
	"termex/internal/port"
)

var (
	bucketIndexes = []byte("indexes")
	bucketMeta    = []byte("meta")
	bucketStats   = []byte("stats")
)

// ErrIndexNotFound is returned when no index is stored under a fingerprint.
var ErrIndexNotFound = port.ErrIndexNotFound

var _ port.IndexStore = (*BoltStore)(nil)

// BoltStore persists serialised reference indexes in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketIndexes, bucketMeta, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// PutIndex stores blob and its build info under fingerprint in one transaction.
func (s *BoltStore) PutIndex(fingerprint string, blob []byte, info port.IndexInfo) error {
	info.Fingerprint = fingerprint
	info.Bytes = len(blob)
	meta, err := json.Marshal(info)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(fingerprint)
		if err := tx.Bucket(bucketIndexes).Put(key, blob); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(key, meta)
	})
}

// GetIndex returns a copy of the blob stored under fingerprint.
func (s *BoltStore) GetIndex(fingerprint string) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketIndexes).Get([]byte(fingerprint))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrIndexNotFound, fingerprint)
		}
		blob = make([]byte, len(data))
		copy(blob, data)
		return nil
	})
	return blob, err
}

func (s *BoltStore) GetInfo(fingerprint string) (port.IndexInfo, error) {
	var info port.IndexInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get([]byte(fingerprint))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrIndexNotFound, fingerprint)
		}
		return json.Unmarshal(data, &info)
	})
	return info, err
}

func (s *BoltStore) DeleteIndex(fingerprint string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(fingerprint)
		if err := tx.Bucket(bucketIndexes).Delete(key); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Delete(key)
	})
}

// ListIndexes returns the stored index infos, newest first.
func (s *BoltStore) ListIndexes() ([]port.IndexInfo, error) {
	var infos []port.IndexInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).ForEach(func(k, v []byte) error {
			var info port.IndexInfo
			if err := json.Unmarshal(v, &info); err != nil {
				return fmt.Errorf("decode meta %s: %w", k, err)
			}
			infos = append(infos, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].BuiltAt.After(infos[j].BuiltAt)
	})
	return infos, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
