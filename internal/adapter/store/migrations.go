package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"
	"termex/config"
	"termex/internal/index"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 2

// Reference indexes are always built over terms of 1 to 8 words so one
// stored index serves every corpus length setting.
const (
	ReferenceMinLength = 1
	ReferenceMaxLength = 8
)

var (
	keySchemaVersion   = []byte("schema_version")
	keySnapshotVersion = []byte("snapshot_version")
)

// SchemaInfo stores the schema and snapshot encoding versions.
type SchemaInfo struct {
	Version         int `json:"version"`
	SnapshotVersion int `json:"snapshot_version"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)
		if b == nil {
			return nil
		}

		if data := b.Get(keySchemaVersion); data != nil {
			if err := json.Unmarshal(data, &info.Version); err != nil {
				info.Version = 1
			}
		}
		if data := b.Get(keySnapshotVersion); data != nil {
			if err := json.Unmarshal(data, &info.SnapshotVersion); err != nil {
				info.SnapshotVersion = 0
			}
		}

		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}

		snapshotData, err := json.Marshal(info.SnapshotVersion)
		if err != nil {
			return err
		}
		return b.Put(keySnapshotVersion, snapshotData)
	})
}

// ComputeFingerprint hashes the configuration that determines the content of
// a reference index. Indexes are stored and cached under this key.
func ComputeFingerprint(cfg *config.Config) string {
	relevant := struct {
		Source          string `json:"source"`
		Format          string `json:"format"`
		Method          string `json:"method"`
		Stem            bool   `json:"stem"`
		Language        string `json:"language"`
		MinOccurrences  int    `json:"min_occurrences"`
		MinLength       int    `json:"min_length"`
		MaxLength       int    `json:"max_length"`
		SnapshotVersion int    `json:"snapshot_version"`
	}{
		Source:          cfg.Reference.Path,
		Format:          strings.ToLower(cfg.Reference.Format),
		Method:          cfg.Extraction.Method,
		Stem:            cfg.Extraction.Stem,
		Language:        strings.ToLower(cfg.Extraction.Language),
		MinOccurrences:  cfg.Extraction.MinOccurrences,
		MinLength:       ReferenceMinLength,
		MaxLength:       ReferenceMaxLength,
		SnapshotVersion: index.SnapshotVersion,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	NeedsMigration bool
	NeedsRebuild   bool
	OldVersion     int
	NewVersion     int
	Reason         string
}

// CheckMigration checks if migration or rebuild is needed.
func (s *BoltStore) CheckMigration() (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	if info.Version == 0 {
		result.NeedsMigration = true
		result.Reason = "initializing schema version"
	} else if info.Version < CurrentSchemaVersion {
		result.NeedsMigration = true
		result.Reason = fmt.Sprintf("schema upgrade from v%d to v%d", info.Version, CurrentSchemaVersion)
	} else if info.Version > CurrentSchemaVersion {
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("database created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	if info.SnapshotVersion != 0 && info.SnapshotVersion != index.SnapshotVersion {
		result.NeedsRebuild = true
		result.Reason = "index snapshot encoding changed"
	}

	return result, nil
}

// Migrate performs any necessary schema migrations.
func (s *BoltStore) Migrate() error {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return err
	}

	for v := info.Version; v < CurrentSchemaVersion; v++ {
		if err := s.runMigration(v, v+1); err != nil {
			return fmt.Errorf("migration from v%d to v%d failed: %w", v, v+1, err)
		}
	}

	return s.SetSchemaInfo(&SchemaInfo{
		Version:         CurrentSchemaVersion,
		SnapshotVersion: index.SnapshotVersion,
	})
}

// runMigration runs a specific version migration.
func (s *BoltStore) runMigration(from, to int) error {
	switch {
	case from == 0 && to == 1:
		return nil
	case from == 1 && to == 2:
		// v2 split build info out of the blob bucket.
		return s.db.Update(func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(bucketMeta)
			return err
		})
	default:
		return nil
	}
}

// Clear removes every stored index, keeping schema info.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketIndexes, bucketMeta} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return err
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureSchema migrates the database, or clears it when the stored indexes
// can no longer be decoded.
func (s *BoltStore) EnsureSchema() (*MigrationResult, error) {
	result, err := s.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result.NeedsRebuild {
		if err := s.Clear(); err != nil {
			return nil, fmt.Errorf("clear store: %w", err)
		}
	}
	if result.NeedsMigration || result.NeedsRebuild {
		if err := s.Migrate(); err != nil {
			return nil, err
		}
	}
	return result, nil
}
