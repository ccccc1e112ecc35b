package accesslog

import (
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "access.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndCount(t *testing.T) {
	s := newStore(t)

	if err := s.Record("conn-1", "/index.html", 200, 1024); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("conn-2", "/missing.html", 404, 37); err != nil {
		t.Fatalf("record: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}

func TestRecent(t *testing.T) {
	s := newStore(t)

	if err := s.Record("conn-1", "/first", 200, 1); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("conn-2", "/second", 404, 2); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := s.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ConnID != "conn-2" || e.Path != "/second" || e.Status != 404 || e.Bytes != 2 {
		t.Errorf("unexpected newest entry: %+v", e)
	}
	if e.At.IsZero() {
		t.Error("expected a served-at timestamp")
	}
}

func TestDuplicateConnIDRejected(t *testing.T) {
	s := newStore(t)

	if err := s.Record("conn-1", "/a", 200, 1); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("conn-1", "/b", 200, 1); err == nil {
		t.Error("expected primary key violation")
	}
}
