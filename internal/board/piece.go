package board

// Color is the side owning a piece, or NoColor for an empty square.
type Color uint8

// Colors.
const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType is the kind of piece, independent of color.
type PieceType uint8

// Piece kinds.
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece kind's name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase FEN letter for the piece kind.
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// PieceValue holds classical material values in centipawns, indexed by
// PieceType. The King entry, 20000, is a sentinel far above any real
// material total; NoPieceType maps to 0.
var PieceValue = [7]int{100, 320, 330, 500, 900, 20000, 0}

// Piece packs a PieceType and Color into a single byte, 0..11, with
// NoPiece == 12 as the empty-square sentinel.
//
// Layout (per the invariant the rest of the core relies on):
//
//	color(p) == p & 1
//	type(p)  == p &^ 1   (== PieceType(p)*2, i.e. the type ordinal doubled)
//
// so that NewPiece(pt, c) == Piece(pt)*2 + Piece(c).
type Piece uint8

// Pieces, one constant per (type, color) pair, plus NoPiece.
const (
	WhitePawn   Piece = Piece(Pawn)*2 + Piece(White)
	BlackPawn   Piece = Piece(Pawn)*2 + Piece(Black)
	WhiteKnight Piece = Piece(Knight)*2 + Piece(White)
	BlackKnight Piece = Piece(Knight)*2 + Piece(Black)
	WhiteBishop Piece = Piece(Bishop)*2 + Piece(White)
	BlackBishop Piece = Piece(Bishop)*2 + Piece(Black)
	WhiteRook   Piece = Piece(Rook)*2 + Piece(White)
	BlackRook   Piece = Piece(Rook)*2 + Piece(Black)
	WhiteQueen  Piece = Piece(Queen)*2 + Piece(White)
	BlackQueen  Piece = Piece(Queen)*2 + Piece(Black)
	WhiteKing   Piece = Piece(King)*2 + Piece(White)
	BlackKing   Piece = Piece(King)*2 + Piece(Black)
	NoPiece     Piece = 12
)

// NewPiece builds a Piece from its type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt)*2 + Piece(c)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p & 1)
}

// Type returns the piece's kind.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType((p &^ 1) >> 1)
}

// String returns the FEN letter for the piece (uppercase white, lowercase
// black), or a space for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	// Index by packed value: WhitePawn=0 .. BlackKing=11.
	chars := "PpNnBbRrQqKk"
	return string(chars[p])
}

// PieceFromChar converts a FEN piece letter to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'p':
		return BlackPawn
	case 'N':
		return WhiteKnight
	case 'n':
		return BlackKnight
	case 'B':
		return WhiteBishop
	case 'b':
		return BlackBishop
	case 'R':
		return WhiteRook
	case 'r':
		return BlackRook
	case 'Q':
		return WhiteQueen
	case 'q':
		return BlackQueen
	case 'K':
		return WhiteKing
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Value returns the piece's classical material value in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
