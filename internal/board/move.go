package board

import "fmt"

// Move packs a chess move into 32 bits:
//
//	bits 0-5:   from square (0-63)
//	bits 6-11:  to square (0-63)
//	bits 12-15: promoted piece type (PieceType, only meaningful when FlagPromotion is set)
//	bits 16-21: independently-settable flag bits (see Flag* constants)
//
// Castling is encoded as a king-to-rook-square move when FlagCastleKing or
// FlagCastleQueen is set (so the same encoding serves Chess960: the "to"
// square is the castling rook's square, and the king's and rook's actual
// destinations are resolved by castleKingDest/castleRookDest at make time).
type Move uint32

// Flag bits, independently settable (a move may be e.g. both a capture and a
// promotion).
const (
	FlagCapture     uint32 = 1 << 16
	FlagPromotion   uint32 = 1 << 17
	FlagEnPassant   uint32 = 1 << 18
	FlagCastleKing  uint32 = 1 << 19
	FlagCastleQueen uint32 = 1 << 20
	FlagNullMove    uint32 = 1 << 21

	flagMask  uint32 = FlagCapture | FlagPromotion | FlagEnPassant | FlagCastleKing | FlagCastleQueen | FlagNullMove
	fromMask  uint32 = 0x3F
	toShift          = 6
	toMask    uint32 = 0x3F << toShift
	promoShift       = 12
	promoMask uint32 = 0xF << promoShift
)

// NoMove is the sentinel for "no move" / "invalid move". It is never produced
// by the generator, since every generated move has from != to.
const NoMove Move = 0

// NullMove is the packed null move: FlagNullMove set, from == to == A1.
var NullMove = Move(FlagNullMove)

// NewMove creates a quiet, non-promotion move.
func NewMove(from, to Square) Move {
	return Move(uint32(from) | uint32(to)<<toShift)
}

// NewCapture creates a capturing, non-promotion move.
func NewCapture(from, to Square) Move {
	return Move(uint32(from) | uint32(to)<<toShift | FlagCapture)
}

// NewPromotion creates a (possibly capturing) promotion move.
func NewPromotion(from, to Square, promo PieceType, capture bool) Move {
	m := uint32(from) | uint32(to)<<toShift | uint32(promo)<<promoShift | FlagPromotion
	if capture {
		m |= FlagCapture
	}
	return Move(m)
}

// NewEnPassant creates an en-passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(uint32(from) | uint32(to)<<toShift | FlagEnPassant | FlagCapture)
}

// NewCastle creates a castling move; to is the castling rook's origin square
// (supports both standard chess and Chess960).
func NewCastle(from, rookSq Square, kingSide bool) Move {
	m := uint32(from) | uint32(rookSq)<<toShift
	if kingSide {
		m |= FlagCastleKing
	} else {
		m |= FlagCastleQueen
	}
	return Move(m)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(uint32(m) & fromMask)
}

// To returns the move's destination square. For castling moves this is the
// rook's origin square, not the king's destination; use Position's castling
// helpers to resolve the king's landing square.
func (m Move) To() Square {
	return Square((uint32(m) & toMask) >> toShift)
}

// Promotion returns the promotion piece type; only meaningful when
// IsPromotion is true.
func (m Move) Promotion() PieceType {
	return PieceType((uint32(m) & promoMask) >> promoShift)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return uint32(m)&FlagCapture != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return uint32(m)&FlagPromotion != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return uint32(m)&FlagEnPassant != 0 }

// IsCastleKing reports whether the move is kingside castling.
func (m Move) IsCastleKing() bool { return uint32(m)&FlagCastleKing != 0 }

// IsCastleQueen reports whether the move is queenside castling.
func (m Move) IsCastleQueen() bool { return uint32(m)&FlagCastleQueen != 0 }

// IsCastle reports whether the move is castling, either side.
func (m Move) IsCastle() bool { return uint32(m)&(FlagCastleKing|FlagCastleQueen) != 0 }

// IsNull reports whether the move is the null move.
func (m Move) IsNull() bool { return uint32(m)&FlagNullMove != 0 }

// IsTactical reports whether the move is a capture, promotion, or en
// passant — the category quiescence search restricts itself to.
func (m Move) IsTactical() bool {
	return uint32(m)&(FlagCapture|FlagPromotion) != 0
}

// String returns the move in long algebraic notation (e.g. "e2e4", "a7a8q").
// Castling is printed as the king's own two-square hop, per the "Move string
// format" convention, even though To() internally stores the rook square.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	if m.IsNull() {
		return "0000"
	}

	from := m.From()
	to := m.To()
	if m.IsCastle() {
		to = castleKingDest(from, m.IsCastleKing())
	}

	s := from.String() + to.String()
	if m.IsPromotion() {
		promoChars := []byte{'?', 'n', 'b', 'r', 'q', '?'}
		s += string(promoChars[m.Promotion()])
	}
	return s
}

// castleKingDest returns the king's two-square destination for castling,
// given its origin and side; standard chess fixes this at the g/c file on
// the king's own rank, which also matches Chess960's king destination rule.
func castleKingDest(kingFrom Square, kingSide bool) Square {
	rank := kingFrom.Rank()
	if kingSide {
		return NewSquare(6, rank) // g-file
	}
	return NewSquare(2, rank) // c-file
}

// MoveList is a fixed-capacity, stack-friendly list of moves (the generator
// never produces more than 256 pseudo-legal moves in a legal position).
type MoveList struct {
	moves [256]Move
	count int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int { return ml.count }

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Swap exchanges the moves at indices i and j.
func (ml *MoveList) Swap(i, j int) { ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i] }

// Clear empties the list without reallocating.
func (ml *MoveList) Clear() { ml.count = 0 }

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the populated portion of the list as a slice; callers must
// not retain it across further mutation of ml.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }

// ParseMove parses a long-algebraic move string ("e2e4", "a7a8q") against
// pos, inferring capture/en-passant/castling flags from the board. Maximum
// accepted length is 5 (4 square letters plus an optional promotion letter).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("board: invalid move string %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("board: no piece at %s", from)
	}
	capture := pos.PieceAt(to) != NoPiece

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("board: invalid promotion piece %q", s[4])
		}
		return NewPromotion(from, to, promo, capture), nil
	}

	pt := piece.Type()
	if pt == King {
		if from == to {
			return NoMove, fmt.Errorf("board: null king move %q", s)
		}
		df := to.File() - from.File()
		if abs(df) == 2 {
			if df > 0 {
				return NewCastle(from, pos.castleRookSquare(piece.Color(), true), true), nil
			}
			return NewCastle(from, pos.castleRookSquare(piece.Color(), false), false), nil
		}
	}

	if pt == Pawn && to == pos.EnPassant && to != NoSquare && from.File() != to.File() {
		return NewEnPassant(from, to), nil
	}

	if capture {
		return NewCapture(from, to), nil
	}
	return NewMove(from, to), nil
}
