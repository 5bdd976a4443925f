package board

// addPromotions appends all four promotion moves (or just queen, when
// underpromotions are excluded) for a pawn moving from->to.
func addPromotions(ml *MoveList, from, to Square, capture, includeUnderpromotions bool) {
	ml.Add(NewPromotion(from, to, Queen, capture))
	if !includeUnderpromotions {
		return
	}
	ml.Add(NewPromotion(from, to, Rook, capture))
	ml.Add(NewPromotion(from, to, Bishop, capture))
	ml.Add(NewPromotion(from, to, Knight, capture))
}

// GenCaptureMoves appends every pseudo-legal capture, including en-passant
// and capture-promotions, to ml.
func (p *Position) GenCaptureMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	enemies := p.Occupied[them]
	occupied := p.AllOccupied

	p.genPawnCaptures(ml, us, enemies, true)
	p.genEnPassant(ml, us)
	p.genPieceMoves(ml, us, occupied, enemies, Knight)
	p.genPieceMoves(ml, us, occupied, enemies, Bishop)
	p.genPieceMoves(ml, us, occupied, enemies, Rook)
	p.genPieceMoves(ml, us, occupied, enemies, Queen)
	p.genKingMoves(ml, us, enemies)
}

// GenPromotionMoves appends pawn-push promotions (no capture involved);
// queen promotion is always generated, underpromotions only when
// includeUnderpromotions is set.
func (p *Position) GenPromotionMoves(ml *MoveList, includeUnderpromotions bool) {
	us := p.SideToMove
	occupied := p.AllOccupied
	empty := ^occupied
	pawns := p.Pieces[us][Pawn]

	var push1 Bitboard
	var pushDir int
	if us == White {
		push1 = pawns.North() & empty & Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty & Rank1
		pushDir = -8
	}

	for push1 != 0 {
		to := push1.PopLSB()
		from := Square(int(to) - pushDir)
		addPromotions(ml, from, to, false, includeUnderpromotions)
	}
}

// GenQuietMoves appends every pseudo-legal non-capturing, non-promotion
// move, including castling and pawn pushes.
func (p *Position) GenQuietMoves(ml *MoveList) {
	us := p.SideToMove
	occupied := p.AllOccupied
	empty := ^occupied

	p.genPawnQuiets(ml, us, empty)
	p.genPieceMoves(ml, us, occupied, empty, Knight)
	p.genPieceMoves(ml, us, occupied, empty, Bishop)
	p.genPieceMoves(ml, us, occupied, empty, Rook)
	p.genPieceMoves(ml, us, occupied, empty, Queen)
	p.genKingMoves(ml, us, empty)
	p.generateCastlingMoves(ml)
}

// GenLegalMoves returns every legal move (captures, promotions, quiets,
// castling), filtered by make/unmake king-safety.
func (p *Position) GenLegalMoves() *MoveList {
	pseudo := &MoveList{}
	p.GenCaptureMoves(pseudo)
	p.GenPromotionMoves(pseudo, true)
	p.GenQuietMoves(pseudo)

	legal := &MoveList{}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.IsLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

// genPawnCaptures appends diagonal pawn captures, including
// capture-promotions (all four pieces, or just queen when
// includeUnderpromotions is false); push promotions live in
// GenPromotionMoves.
func (p *Position) genPawnCaptures(ml *MoveList, us Color, enemies Bitboard, includeUnderpromotions bool) {
	pawns := p.Pieces[us][Pawn]
	var attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromoL := attackL & ^promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir+1), to))
	}
	nonPromoR := attackR & ^promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir-1), to))
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true, includeUnderpromotions)
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true, includeUnderpromotions)
	}
}

func (p *Position) genEnPassant(ml *MoveList, us Color) {
	if p.EnPassant == NoSquare {
		return
	}
	pawns := p.Pieces[us][Pawn]
	epBB := SquareBB(p.EnPassant)
	var epAttackers Bitboard
	if us == White {
		epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
	} else {
		epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
	}
	for epAttackers != 0 {
		from := epAttackers.PopLSB()
		ml.Add(NewEnPassant(from, p.EnPassant))
	}
}

func (p *Position) genPawnQuiets(ml *MoveList, us Color, empty Bitboard) {
	pawns := p.Pieces[us][Pawn]
	var push1, push2 Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 & ^promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir), to))
	}
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}
}

func (p *Position) genPieceMoves(ml *MoveList, us Color, occupied, targets Bitboard, pt PieceType) {
	bb := p.Pieces[us][pt]
	for bb != 0 {
		from := bb.PopLSB()
		var attacks Bitboard
		switch pt {
		case Knight:
			attacks = KnightAttacks(from)
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		case Queen:
			attacks = QueenAttacks(from, occupied)
		}
		attacks &= targets
		for attacks != 0 {
			to := attacks.PopLSB()
			if targets&p.Occupied[us.Other()]&SquareBB(to) != 0 {
				ml.Add(NewCapture(from, to))
			} else {
				ml.Add(NewMove(from, to))
			}
		}
	}
}

func (p *Position) genKingMoves(ml *MoveList, us Color, targets Bitboard) {
	from := p.KingSquare[us]
	attacks := KingAttacks(from) & targets
	enemies := p.Occupied[us.Other()]
	for attacks != 0 {
		to := attacks.PopLSB()
		if enemies.IsSet(to) {
			ml.Add(NewCapture(from, to))
		} else {
			ml.Add(NewMove(from, to))
		}
	}
}

// generateCastlingMoves appends legal castling moves (both standard chess
// and Chess960 rook-origin layouts).
func (p *Position) generateCastlingMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	kingFrom := p.KingSquare[us]

	for _, kingSide := range [...]bool{true, false} {
		right := queenSideRight(us)
		if kingSide {
			right = kingSideRight(us)
		}
		if p.CastlingRights&right == 0 {
			continue
		}
		rookFrom := p.castleRookSquare(us, kingSide)
		if rookFrom == NoSquare {
			continue
		}

		kingTo := castleKingDest(kingFrom, kingSide)
		rookTo := castleRookDest(kingFrom, kingSide)

		mustBeClear := Between(kingFrom, kingTo) | SquareBB(kingTo) | Between(rookFrom, rookTo) | SquareBB(rookTo)
		blockers := p.AllOccupied &^ (SquareBB(kingFrom) | SquareBB(rookFrom))
		if mustBeClear&blockers != 0 {
			continue
		}

		path := Between(kingFrom, kingTo) | SquareBB(kingFrom) | SquareBB(kingTo)
		attacked := false
		for bb := path; bb != 0 && !attacked; {
			sq := bb.PopLSB()
			if p.IsSquareAttacked(sq, them) {
				attacked = true
			}
		}
		if attacked {
			continue
		}

		ml.Add(NewCastle(kingFrom, rookFrom, kingSide))
	}
}

// HasLegalMoves reports whether the side to move has at least one legal
// move (used by checkmate/stalemate detection).
func (p *Position) HasLegalMoves() bool {
	pseudo := &MoveList{}
	p.GenCaptureMoves(pseudo)
	p.GenPromotionMoves(pseudo, true)
	p.GenQuietMoves(pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		if p.IsLegal(pseudo.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw reports whether the position is drawn by stalemate, the
// fifty-move rule, insufficient material, or repetition.
func (p *Position) IsDraw() bool {
	if p.HalfMoveClock >= 100 {
		return true
	}
	if p.IsInsufficientMaterial() {
		return true
	}
	if p.Repetition() {
		return true
	}
	return p.IsStalemate()
}

// IsMovePseudoLegal cheaply validates a move (typically one recalled from a
// transposition table) against the current board without running the full
// generator: the moving piece belongs to the side to move, the destination
// is consistent with that piece's movement rules under current occupancy,
// and the move's flags agree with board reality.
func (p *Position) IsMovePseudoLegal(m Move) bool {
	if m == NoMove || m.IsNull() {
		return false
	}

	us := p.SideToMove
	from := m.From()
	piece := p.board[from]
	if piece == NoPiece || piece.Color() != us {
		return false
	}

	if m.IsCastle() {
		rookFrom := m.To()
		if p.castleRookSquare(us, m.IsCastleKing()) != rookFrom {
			return false
		}
		if piece.Type() != King {
			return false
		}
		right := queenSideRight(us)
		if m.IsCastleKing() {
			right = kingSideRight(us)
		}
		if p.CastlingRights&right == 0 {
			return false
		}
		candidates := &MoveList{}
		p.generateCastlingMoves(candidates)
		return candidates.Contains(m)
	}

	to := m.To()
	if to >= NoSquare {
		return false
	}
	occupiedAtTo := p.board[to]

	if m.IsEnPassant() {
		if piece.Type() != Pawn || to != p.EnPassant {
			return false
		}
		return PawnAttacks(from, us)&SquareBB(to) != 0
	}

	if m.IsCapture() {
		if occupiedAtTo == NoPiece || occupiedAtTo.Color() == us {
			return false
		}
	} else if occupiedAtTo != NoPiece {
		return false
	}

	pt := piece.Type()
	if m.IsPromotion() != (pt == Pawn && to.RelativeRank(us) == 7) {
		return false
	}

	switch pt {
	case Pawn:
		return p.isPseudoLegalPawnMove(us, from, to, m.IsCapture())
	case Knight:
		return KnightAttacks(from)&SquareBB(to) != 0
	case Bishop:
		return BishopAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Rook:
		return RookAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Queen:
		return QueenAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case King:
		return KingAttacks(from)&SquareBB(to) != 0
	}
	return false
}

func (p *Position) isPseudoLegalPawnMove(us Color, from, to Square, isCapture bool) bool {
	if isCapture {
		return PawnAttacks(from, us)&SquareBB(to) != 0
	}
	if PawnPushes(from, us)&SquareBB(to) != 0 {
		return true
	}
	// double push
	startRank := 1
	if us == Black {
		startRank = 6
	}
	if from.Rank() != startRank {
		return false
	}
	mid := PawnPushes(from, us).LSB()
	if mid == NoSquare || !p.IsEmpty(mid) {
		return false
	}
	return PawnPushes(mid, us)&SquareBB(to) != 0
}
