package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"termex/config"
	"termex/internal/port"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetIndex(t *testing.T) {
	s := newTestStore(t)

	built := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	info := port.IndexInfo{Source: "wiki.txt", Documents: 3, Terms: 42, BuiltAt: built}
	if err := s.PutIndex("abc", []byte("blob"), info); err != nil {
		t.Fatalf("PutIndex: %v", err)
	}

	blob, err := s.GetIndex("abc")
	if err != nil {
		t.Fatalf("GetIndex: %v", err)
	}
	if string(blob) != "blob" {
		t.Errorf("GetIndex() = %q", blob)
	}

	got, err := s.GetInfo("abc")
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if got.Fingerprint != "abc" || got.Bytes != 4 || got.Terms != 42 || !got.BuiltAt.Equal(built) {
		t.Errorf("GetInfo() = %+v", got)
	}
}

func TestGetIndexNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetIndex("missing"); !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
	if _, err := s.GetInfo("missing"); !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	s := newTestStore(t)

	older := port.IndexInfo{BuiltAt: time.Unix(100, 0)}
	newer := port.IndexInfo{BuiltAt: time.Unix(200, 0)}
	if err := s.PutIndex("old", []byte("1"), older); err != nil {
		t.Fatal(err)
	}
	if err := s.PutIndex("new", []byte("2"), newer); err != nil {
		t.Fatal(err)
	}

	infos, err := s.ListIndexes()
	if err != nil {
		t.Fatalf("ListIndexes: %v", err)
	}
	if len(infos) != 2 || infos[0].Fingerprint != "new" {
		t.Errorf("ListIndexes() = %+v", infos)
	}

	if err := s.DeleteIndex("old"); err != nil {
		t.Fatalf("DeleteIndex: %v", err)
	}
	if _, err := s.GetIndex("old"); !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected deleted index to be gone, got %v", err)
	}
}

func TestClearKeepsSchema(t *testing.T) {
	s := newTestStore(t)
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}
	for _, fp := range []string{"a", "b", "c"} {
		if err := s.PutIndex(fp, []byte(fp), port.IndexInfo{}); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	infos, err := s.ListIndexes()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty store, got %d indexes", len(infos))
	}

	info, err := s.GetSchemaInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != CurrentSchemaVersion {
		t.Errorf("schema version lost: %d", info.Version)
	}
}

func TestMigration(t *testing.T) {
	s := newTestStore(t)

	result, err := s.CheckMigration()
	if err != nil {
		t.Fatalf("CheckMigration: %v", err)
	}
	if !result.NeedsMigration || result.OldVersion != 0 {
		t.Errorf("fresh store should need migration: %+v", result)
	}

	if err := s.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	result, err = s.CheckMigration()
	if err != nil {
		t.Fatal(err)
	}
	if result.NeedsMigration || result.NeedsRebuild {
		t.Errorf("migrated store should be current: %+v", result)
	}
}

func TestEnsureSchemaClearsNewerDatabase(t *testing.T) {
	s := newTestStore(t)
	if err := s.PutIndex("x", []byte("x"), port.IndexInfo{}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSchemaInfo(&SchemaInfo{Version: CurrentSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}

	result, err := s.EnsureSchema()
	if err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if !result.NeedsRebuild {
		t.Errorf("expected rebuild, got %+v", result)
	}
	if _, err := s.GetIndex("x"); !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected store to be cleared, got %v", err)
	}
}

func TestComputeFingerprint(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Reference.Path = "wiki.txt"

	fp := ComputeFingerprint(cfg)
	if len(fp) != 16 {
		t.Errorf("expected 16 hex chars, got %q", fp)
	}
	if ComputeFingerprint(cfg) != fp {
		t.Error("fingerprint is not stable")
	}

	// Scoring and corpus length bounds do not change the reference index.
	other := config.DefaultConfig()
	other.Reference.Path = "wiki.txt"
	other.Scoring.Method = "OKAPI"
	other.Extraction.MaxLength = 2
	if ComputeFingerprint(other) != fp {
		t.Error("fingerprint should ignore scoring and corpus length bounds")
	}

	other.Extraction.Stem = !cfg.Extraction.Stem
	if ComputeFingerprint(other) == fp {
		t.Error("fingerprint should change with stemming")
	}
}
