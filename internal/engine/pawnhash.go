// Package engine implements the static evaluation, static exchange
// evaluation, move-ordering heuristics, and quiescence search that sit on
// top of the board package's position representation.
package engine

import "github.com/corebench/chesscore/internal/board"

// PawnEntry caches the pawn-only portion of a position's evaluation, plus
// the derived bitboards pawnStructure records alongside it (coverage/
// passers/candidates/backward pawns/shield). On a hit, evaluation reads
// back only MgScore and EgScore; the bitboards are stored but not read.
type PawnEntry struct {
	Key     uint64
	MgScore int16
	EgScore int16

	Coverage   [2]board.Bitboard // squares attacked by each side's pawns
	Passers    [2]board.Bitboard // passed pawns for each side
	Candidates [2]board.Bitboard // candidate passed pawns for each side
	RearSpan   [2]board.Bitboard // pawns pawnStructure scored as backward, for each side
	Shield     [2]board.Bitboard // pawns standing in front of each side's king
}

// PawnTable is a direct-mapped hash table keyed by Position.PawnKey.
type PawnTable struct {
	entries []PawnEntry
	mask    uint64
}

// NewPawnTable allocates a pawn hash table sized to approximately sizeMB
// megabytes, rounded down to a power of two entries.
func NewPawnTable(sizeMB int) *PawnTable {
	const entrySize = 96 // rough size of PawnEntry; exactness doesn't matter, just sizing
	numEntries := (sizeMB * 1024 * 1024) / entrySize

	size := 1
	for size*2 <= numEntries {
		size *= 2
	}
	if size < 1 {
		size = 1
	}

	return &PawnTable{
		entries: make([]PawnEntry, size),
		mask:    uint64(size - 1),
	}
}

// Probe looks up the cached pawn evaluation for key.
func (pt *PawnTable) Probe(key uint64) (*PawnEntry, bool) {
	entry := &pt.entries[key&pt.mask]
	if entry.Key == key {
		return entry, true
	}
	return nil, false
}

// Store saves a freshly computed pawn evaluation, overwriting whatever
// previously occupied the slot.
func (pt *PawnTable) Store(entry PawnEntry) {
	pt.entries[entry.Key&pt.mask] = entry
}

// Clear resets every entry, used between games or when changing table size.
func (pt *PawnTable) Clear() {
	for i := range pt.entries {
		pt.entries[i] = PawnEntry{}
	}
}
