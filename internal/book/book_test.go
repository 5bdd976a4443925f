package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/corebench/chesscore/internal/board"
	"github.com/corebench/chesscore/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func polyglotEntry(key uint64, moveData, weight uint16) []byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], key)
	binary.BigEndian.PutUint16(buf[8:10], moveData)
	binary.BigEndian.PutUint16(buf[10:12], weight)
	return buf[:]
}

func TestLoadPolyglotReaderAndProbe(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	key := pos.PolyglotHash()

	// e2e4 in Polyglot's 16-bit encoding: from=e2(12), to=e4(28), no promo.
	moveData := uint16(12<<6) | uint16(28)

	var stream bytes.Buffer
	stream.Write(polyglotEntry(key, moveData, 50))

	store := openTestStore(t)
	b, err := LoadPolyglotReader(store, &stream)
	if err != nil {
		t.Fatalf("LoadPolyglotReader: %v", err)
	}

	m, ok := b.Probe(pos)
	if !ok {
		t.Fatal("expected a book hit for the starting position")
	}
	if m.From() != board.E2 || m.To() != board.E4 {
		t.Errorf("Probe returned %v, want e2e4", m)
	}
}

func TestProbeMissReturnsFalse(t *testing.T) {
	store := openTestStore(t)
	b := Open(store)

	pos, _ := board.ParseFEN(board.StartFEN)
	if _, ok := b.Probe(pos); ok {
		t.Error("expected a miss against an empty book")
	}
}

func TestProbeAllSortedByWeight(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	key := pos.PolyglotHash()

	e2e4 := uint16(12<<6) | uint16(28)
	d2d4 := uint16(11<<6) | uint16(27)

	var stream bytes.Buffer
	stream.Write(polyglotEntry(key, e2e4, 10))
	stream.Write(polyglotEntry(key, d2d4, 90))

	store := openTestStore(t)
	b, err := LoadPolyglotReader(store, &stream)
	if err != nil {
		t.Fatalf("LoadPolyglotReader: %v", err)
	}

	entries := b.ProbeAll(pos)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Weight < entries[1].Weight {
		t.Error("expected ProbeAll to sort by descending weight")
	}
}
