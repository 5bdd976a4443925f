// Package book implements a Polyglot-format opening book, backed by
// internal/storage so a multi-megabyte book loads once and every later
// probe is a single badger lookup rather than an in-memory map scan.
package book

import (
	"encoding/binary"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/corebench/chesscore/internal/board"
	"github.com/corebench/chesscore/internal/storage"
)

// Entry is a single book move with its Polyglot learn weight.
type Entry struct {
	Move   board.Move
	Weight uint16
}

// Book probes a position's Polyglot hash against a loaded opening book.
type Book struct {
	store *storage.Store
}

// Open wraps an already-open storage.Store as a book probe source.
func Open(store *storage.Store) *Book {
	return &Book{store: store}
}

// LoadPolyglot imports a Polyglot .bin file into the book's backing store.
func LoadPolyglot(store *storage.Store, filename string) (*Book, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPolyglotReader(store, f)
}

// LoadPolyglotReader imports a Polyglot book stream, grouping entries by
// position key and writing each group as one value so a probe is a single
// get rather than a range scan.
func LoadPolyglotReader(store *storage.Store, r io.Reader) (*Book, error) {
	grouped := make(map[uint64][]Entry)

	var raw [16]byte
	for {
		_, err := io.ReadFull(r, raw[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := binary.BigEndian.Uint64(raw[0:8])
		moveData := binary.BigEndian.Uint16(raw[8:10])
		weight := binary.BigEndian.Uint16(raw[10:12])

		m := decodePolyglotMove(moveData)
		if m == board.NoMove {
			continue
		}
		grouped[key] = append(grouped[key], Entry{Move: m, Weight: weight})
	}

	batch := make(map[string][]byte, len(grouped))
	for key, entries := range grouped {
		batch[string(encodeKey(key))] = encodeEntries(entries)
	}
	if err := store.BatchSet(storage.NamespaceBook, batch); err != nil {
		return nil, err
	}

	return &Book{store: store}, nil
}

func encodeKey(key uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], key)
	return buf[:]
}

func encodeEntries(entries []Entry) []byte {
	buf := make([]byte, 0, len(entries)*6)
	for _, e := range entries {
		var b [6]byte
		binary.BigEndian.PutUint32(b[0:4], uint32(e.Move))
		binary.BigEndian.PutUint16(b[4:6], e.Weight)
		buf = append(buf, b[:]...)
	}
	return buf
}

func decodeEntries(raw []byte) []Entry {
	entries := make([]Entry, 0, len(raw)/6)
	for i := 0; i+6 <= len(raw); i += 6 {
		move := board.Move(binary.BigEndian.Uint32(raw[i : i+4]))
		weight := binary.BigEndian.Uint16(raw[i+4 : i+6])
		entries = append(entries, Entry{Move: move, Weight: weight})
	}
	return entries
}

// decodePolyglotMove converts a Polyglot 16-bit move encoding into a Move.
// Polyglot's king-captures-rook castling notation already matches this
// module's king-to-rook-square castling encoding, so castles keep their
// squares as written; resolveLegal attaches the castle flag.
func decodePolyglotMove(data uint16) board.Move {
	toFile := int(data & 7)
	toRank := int((data >> 3) & 7)
	fromFile := int((data >> 6) & 7)
	fromRank := int((data >> 9) & 7)
	promo := (data >> 12) & 7

	from := board.NewSquare(fromFile, fromRank)
	to := board.NewSquare(toFile, toRank)

	if promo > 0 {
		promoTypes := [5]board.PieceType{0, board.Knight, board.Bishop, board.Rook, board.Queen}
		return board.NewPromotion(from, to, promoTypes[promo], false)
	}
	return board.NewMove(from, to)
}

// Probe returns a weighted-random book move for pos, or (NoMove, false) on
// a miss or if b is nil.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	if b == nil || b.store == nil {
		return board.NoMove, false
	}

	raw, ok, err := b.store.Get(storage.NamespaceBook, encodeKey(pos.PolyglotHash()))
	if err != nil || !ok {
		return board.NoMove, false
	}
	entries := decodeEntries(raw)
	if len(entries) == 0 {
		return board.NoMove, false
	}

	totalWeight := uint32(0)
	for _, e := range entries {
		totalWeight += uint32(e.Weight)
	}

	var chosen board.Move
	if totalWeight == 0 {
		chosen = entries[0].Move
	} else {
		r := rand.Uint32() % totalWeight
		cumulative := uint32(0)
		chosen = entries[0].Move
		for _, e := range entries {
			cumulative += uint32(e.Weight)
			if r < cumulative {
				chosen = e.Move
				break
			}
		}
	}

	return resolveLegal(pos, chosen)
}

// ProbeAll returns every book move for pos, sorted by descending weight.
func (b *Book) ProbeAll(pos *board.Position) []Entry {
	if b == nil || b.store == nil {
		return nil
	}
	raw, ok, err := b.store.Get(storage.NamespaceBook, encodeKey(pos.PolyglotHash()))
	if err != nil || !ok {
		return nil
	}
	entries := decodeEntries(raw)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Weight > entries[j].Weight })
	return entries
}

// resolveLegal matches a Polyglot-decoded move against the actual legal
// move list so its capture/castle/en-passant/promotion flags come from the
// position rather than from our own re-derivation of Polyglot's encoding.
func resolveLegal(pos *board.Position, m board.Move) (board.Move, bool) {
	legal := pos.GenLegalMoves()
	from, to := m.From(), m.To()

	for i := 0; i < legal.Len(); i++ {
		lm := legal.Get(i)
		if lm.From() != from || lm.To() != to {
			continue
		}
		if m.IsPromotion() != lm.IsPromotion() {
			continue
		}
		if m.IsPromotion() && m.Promotion() != lm.Promotion() {
			continue
		}
		return lm, true
	}
	return board.NoMove, false
}
