package board

// Zobrist hash keys for position hashing and the separate pawn-structure
// sub-hash. Generated once from a fixed-seed PRNG so hashes are reproducible
// across runs (useful for deterministic perft/test comparisons).
var (
	zobristPiece      [2][7][64]uint64 // [Color][PieceType][Square]; index 6 is never seeded and stays zero
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // all 16 castling-rights combinations
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator, used only to seed the Zobrist tables at
// package init.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// ZobristPiece returns the hash key for a piece of the given type and color
// standing on sq.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the hash key for an en-passant target file.
func ZobristEnPassant(file int) uint64 {
	return zobristEnPassant[file]
}

// ZobristCastling returns the hash key for a castling-rights bitmask.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristSideToMove returns the hash key XORed in whenever it is black's
// turn to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}

// computeHash recomputes the full position hash from scratch. Used only by
// FEN parsing and by tests that cross-check the incrementally maintained
// hash; make/unmake never call this on the hot path.
func (p *Position) computeHash() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	h ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}
	return h
}

// computePawnKey recomputes the pawn-only hash sub-key from scratch, used to
// seed a position and to cross-check the incrementally maintained PawnKey.
// Each king square is XORed in at the PieceType 6 slot, but initZobrist
// never seeds that slot, so its keys are zero and the result depends on
// pawn placement only; king placement is not distinguished.
func (p *Position) computePawnKey() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		bb := p.Pieces[c][Pawn]
		for bb != 0 {
			sq := bb.PopLSB()
			h ^= zobristPiece[c][Pawn][sq]
		}
		h ^= zobristPiece[c][NoPieceType][p.KingSquare[c]]
	}
	return h
}
