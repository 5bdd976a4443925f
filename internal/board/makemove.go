package board

// kingSideRight and queenSideRight map a color to its castling-rights bit,
// used when a move touches a recorded rook-origin square.
func kingSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle
	}
	return BlackKingSideCastle
}

func queenSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSideCastle
	}
	return BlackQueenSideCastle
}

// clearCastlingRightsForSquare drops whichever castling right is rooted at
// sq (if any) — covers both standard chess's fixed corners and Chess960's
// recorded rook-origin files.
func (p *Position) clearCastlingRightsForSquare(sq Square) {
	for c := White; c <= Black; c++ {
		if p.CastleRookFrom[c][0] == sq {
			p.CastlingRights &^= kingSideRight(c)
		}
		if p.CastleRookFrom[c][1] == sq {
			p.CastlingRights &^= queenSideRight(c)
		}
	}
}

// MakeMove executes m and reports whether it was legal. On an illegal move
// the position is automatically restored to its pre-move state before
// returning false.
func (p *Position) MakeMove(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.board[from]
	pt := piece.Type()

	undo := Unmake{
		Move:           m,
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		PawnKey:        p.PawnKey,
	}

	// Step 2: en-passant target square.
	if p.EnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	}
	newEP := NoSquare
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		newEP = Square((int(from) + int(to)) / 2)
	}
	p.EnPassant = newEP
	if newEP != NoSquare {
		p.Hash ^= ZobristEnPassant(newEP.File())
	}

	// Step 3: castling-rights update, folded before the pieces move so the
	// corner/king checks still see the pre-move occupant.
	p.Hash ^= ZobristCastling(p.CastlingRights)
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if !m.IsCastle() {
		p.clearCastlingRightsForSquare(from)
		p.clearCastlingRightsForSquare(to)
	}
	p.Hash ^= ZobristCastling(p.CastlingRights)

	// Steps 4-6: remove the moving piece, resolve captures, place at
	// destination.
	if m.IsCastle() {
		kingSide := m.IsCastleKing()
		rookFrom := to // castling's "to" field stores the rook's origin
		kingTo := castleKingDest(from, kingSide)
		rookTo := castleRookDest(from, kingSide)

		p.removePiece(from)
		p.removePiece(rookFrom)
		p.setPiece(piece, kingTo)
		p.setPiece(NewPiece(Rook, us), rookTo)
	} else if m.IsEnPassant() {
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.movePiece(from, to)
	} else {
		if captured := p.board[to]; captured != NoPiece {
			undo.CapturedPiece = captured
			p.removePiece(to)
		}
		p.movePiece(from, to)

		if m.IsPromotion() {
			p.promotePawn(us, to, m.Promotion())
		}
	}

	// Step 8: fifty-move clock.
	if pt == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// Step 9: full-move counter.
	if us == Black {
		p.FullMoveNumber++
	}

	// Step 10: side to move.
	p.SideToMove = them
	p.Hash ^= ZobristSideToMove()
	p.Ply++

	p.history = append(p.history, undo)

	// Step 11: legality check — the mover's own king must not be attacked.
	if p.IsSquareAttacked(p.KingSquare[us], them) {
		p.UnmakeMove(m)
		return false
	}

	p.UpdateCheckers()
	assertConsistent(p, "MakeMove")
	return true
}

// UnmakeMove pops the most recent Unmake record and reverses m, restoring
// every field MakeMove touched.
func (p *Position) UnmakeMove(m Move) {
	n := len(p.history) - 1
	undo := p.history[n]
	p.history = p.history[:n]

	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	p.SideToMove = us
	p.Ply--
	if us == Black {
		p.FullMoveNumber--
	}

	if m.IsCastle() {
		kingSide := m.IsCastleKing()
		rookFrom := to
		kingTo := castleKingDest(from, kingSide)
		rookTo := castleRookDest(from, kingSide)

		king := p.board[kingTo]
		p.removePiece(kingTo)
		p.removePiece(rookTo)
		p.setPiece(king, from)
		p.setPiece(NewPiece(Rook, us), rookFrom)
	} else {
		if m.IsPromotion() {
			p.unpromotePawn(us, to, m.Promotion())
		}
		p.movePiece(to, from)

		if undo.CapturedPiece != NoPiece {
			if m.IsEnPassant() {
				var capturedSq Square
				if us == White {
					capturedSq = to - 8
				} else {
					capturedSq = to + 8
				}
				p.setPiece(undo.CapturedPiece, capturedSq)
			} else {
				p.setPiece(undo.CapturedPiece, to)
			}
		}
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
	p.PawnKey = undo.PawnKey

	p.UpdateCheckers()
	assertConsistent(p, "UnmakeMove")
}

// IsLegal reports whether m is legal in the current position, applying it
// and checking the resulting king safety via MakeMove/UnmakeMove.
func (p *Position) IsLegal(m Move) bool {
	if !p.MakeMove(m) {
		return false
	}
	p.UnmakeMove(m)
	return true
}
