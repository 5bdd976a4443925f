package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN (or Chess960/Shredder-FEN) string into a Position.
// The half-move clock and full-move number fields are optional, tolerating
// the truncated FENs EPD tooling commonly produces.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare
	pos.CastleRookFrom[White][0] = NoSquare
	pos.CastleRookFrom[White][1] = NoSquare
	pos.CastleRookFrom[Black][0] = NoSquare
	pos.CastleRookFrom[Black][1] = NoSquare
	for sq := range pos.board {
		pos.board[sq] = NoPiece
	}

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	pos.updateOccupied()
	pos.findKings()
	pos.Hash = pos.computeHash()
	pos.PawnKey = pos.computePawnKey()
	pos.UpdateCheckers()

	return pos, nil
}

// findKings locates each side's king, required before castling rights and
// checkers can be resolved.
func (p *Position) findKings() {
	if bb := p.Pieces[White][King]; bb != 0 {
		p.KingSquare[White] = bb.LSB()
	}
	if bb := p.Pieces[Black][King]; bb != 0 {
		p.KingSquare[Black] = bb.LSB()
	}
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("board: invalid piece character: %c", c)
				}
				pos.setPiece(piece, NewSquare(file, rank))
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("board: invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling-rights field, accepting both
// standard letters (KQkq, implying corner rooks) and Chess960/Shredder-FEN
// file letters (A-H / a-h, naming the actual rook file).
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch {
		case c == 'K':
			pos.CastlingRights |= WhiteKingSideCastle
			pos.CastleRookFrom[White][0] = H1
		case c == 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
			pos.CastleRookFrom[White][1] = A1
		case c == 'k':
			pos.CastlingRights |= BlackKingSideCastle
			pos.CastleRookFrom[Black][0] = H8
		case c == 'q':
			pos.CastlingRights |= BlackQueenSideCastle
			pos.CastleRookFrom[Black][1] = A8
		case c >= 'A' && c <= 'H':
			setChess960CastleRight(pos, White, int(c-'A'))
		case c >= 'a' && c <= 'h':
			setChess960CastleRight(pos, Black, int(c-'a'))
		default:
			return fmt.Errorf("board: invalid castling character: %c", c)
		}
	}

	return nil
}

// setChess960CastleRight records a Shredder-FEN rook file for color c,
// classifying it kingside or queenside by its position relative to the
// king's file on the back rank.
func setChess960CastleRight(pos *Position, c Color, file int) {
	pos.Chess960 = true
	rank := 0
	if c == Black {
		rank = 7
	}
	rookSq := NewSquare(file, rank)
	kingFile := pos.KingSquare[c].File()

	if file > kingFile {
		pos.CastlingRights |= kingSideRight(c)
		pos.CastleRookFrom[c][0] = rookSq
	} else {
		pos.CastlingRights |= queenSideRight(c)
		pos.CastleRookFrom[c][1] = rookSq
	}
}

// ToFEN renders the position as a FEN string. Chess960 positions use
// Shredder-FEN rook-file letters for castling rights; standard games use the
// familiar KQkq letters.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingFEN())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

func (p *Position) castlingFEN() string {
	if p.CastlingRights == NoCastling {
		return "-"
	}
	if !p.Chess960 {
		return p.CastlingRights.String()
	}

	var sb strings.Builder
	if p.CastlingRights&WhiteKingSideCastle != 0 {
		sb.WriteByte('A' + byte(p.CastleRookFrom[White][0].File()))
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		sb.WriteByte('A' + byte(p.CastleRookFrom[White][1].File()))
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		sb.WriteByte('a' + byte(p.CastleRookFrom[Black][0].File()))
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		sb.WriteByte('a' + byte(p.CastleRookFrom[Black][1].File()))
	}
	return sb.String()
}
