package sink

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/petrijr/bricks/pkg/buffer"
	"github.com/petrijr/bricks/pkg/randgen"
)

func newTestSQLiteSink(t *testing.T) *SQLite {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	s, err := NewSQLite(db)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}

	return s
}

func TestSQLite_WriteAndReadBack(t *testing.T) {
	s := newTestSQLiteSink(t)
	gen := randgen.New(7)

	first := gen.Bytes(32)
	second := gen.Bytes(16)

	n, err := s.Write(first)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len(first) {
		t.Fatalf("expected %d bytes consumed, got %d", len(first), n)
	}

	if _, err := s.Write(second); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 batches, got %d", count)
	}

	batches, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if string(batches[0]) != string(first) || string(batches[1]) != string(second) {
		t.Fatalf("batches did not round-trip in order")
	}
}

func TestSQLite_EmptyWriteStoresNothing(t *testing.T) {
	s := newTestSQLiteSink(t)

	n, err := s.Write(nil)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes consumed, got %d", n)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}

func TestSQLite_AsCachedBufferStore(t *testing.T) {
	s := newTestSQLiteSink(t)
	gen := randgen.New(11)

	c := buffer.NewCached(64, s.Write)

	// Fill past one cache capacity so at least one flush happens, then
	// flush the remainder explicitly.
	var total int
	for i := 0; i < 5; i++ {
		chunk := gen.Bytes(20)
		total += len(chunk)
		if err := c.Store(chunk); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	batches, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	var stored int
	for _, b := range batches {
		stored += len(b)
	}
	if stored != total {
		t.Fatalf("expected %d bytes stored, got %d", total, stored)
	}
}
