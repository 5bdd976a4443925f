package board

// Polyglot-style Zobrist keys, kept separate from the internal Zobrist
// tables in zobrist.go. The hashing scheme follows Polyglot's (12 piece
// kinds, four castling keys, an en-passant key only when a capture is
// possible, a side-to-move key for White), but the key values come from
// initPolyglotKeys' own generator, not from the published Polyglot Random64
// table, so hashes do not match books written by other Polyglot tools.
var (
	polyglotPieces     [12][64]uint64 // [piece_kind][square]
	polyglotCastling   [4]uint64      // [KQkq]
	polyglotEnPassant  [8]uint64      // [file]
	polyglotSideToMove uint64
)

func init() {
	initPolyglotKeys()
}

// PolyglotHash computes the Polyglot-style hash key for p, used to probe a
// Polyglot-format opening book. Only books whose keys were computed with
// this function are found; see the key-table note above.
func (p *Position) PolyglotHash() uint64 {
	var hash uint64

	// Piece-kind index ordering: bp, bN, bB, bR, bQ, bK, wp, wN, wB, wR, wQ, wK.
	pieceKindMap := [2][6]int{
		{6, 7, 8, 9, 10, 11}, // White
		{0, 1, 2, 3, 4, 5},   // Black
	}

	for color := White; color <= Black; color++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[color][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= polyglotPieces[pieceKindMap[color][pt]][sq]
			}
		}
	}

	if p.CastlingRights&WhiteKingSideCastle != 0 {
		hash ^= polyglotCastling[0]
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		hash ^= polyglotCastling[1]
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		hash ^= polyglotCastling[2]
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		hash ^= polyglotCastling[3]
	}

	if p.EnPassant != NoSquare {
		file := p.EnPassant.File()
		canCapture := false
		captureRank := 4
		pawns := p.Pieces[White][Pawn]
		if p.SideToMove == Black {
			captureRank = 3
			pawns = p.Pieces[Black][Pawn]
		}
		if file > 0 && pawns.IsSet(NewSquare(file-1, captureRank)) {
			canCapture = true
		}
		if file < 7 && pawns.IsSet(NewSquare(file+1, captureRank)) {
			canCapture = true
		}
		if canCapture {
			hash ^= polyglotEnPassant[file]
		}
	}

	if p.SideToMove == White {
		hash ^= polyglotSideToMove
	}

	return hash
}

// initPolyglotKeys seeds the Polyglot key tables from a fixed-seed
// xorshift64* generator, so the keys are reproducible across runs but are
// not the standard Polyglot Random64 values.
func initPolyglotKeys() {
	var s uint64 = 0x37b4a4b3f0d1c0d0

	rng := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			polyglotPieces[piece][sq] = rng()
		}
	}
	for i := 0; i < 4; i++ {
		polyglotCastling[i] = rng()
	}
	for i := 0; i < 8; i++ {
		polyglotEnPassant[i] = rng()
	}
	polyglotSideToMove = rng()
}
