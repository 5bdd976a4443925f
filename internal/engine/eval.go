package engine

import "github.com/corebench/chesscore/internal/board"

// Mobility weights per piece type, by phase. Index by board.PieceType
// (Knight..Queen); pawn and king don't contribute mobility terms.
var mobilityMg = [6]int{0, 4, 5, 2, 1, 0}
var mobilityEg = [6]int{0, 3, 4, 4, 2, 0}

// King-attack participation weights per attacking piece type.
var attackerWeight = [6]int{0, 20, 20, 40, 80, 0}

// attackWeightByCount scales total king-attack weight by how many enemy
// pieces attack the zone, not just their summed weight — a
// king facing three attackers is worse than the sum of three lone attacks.
var attackWeightByCount = [8]int{0, 0, 50, 75, 88, 94, 97, 99}

const (
	bishopPairMg = 25
	bishopPairEg = 50

	rookOpenFileMg     = 20
	rookOpenFileEg     = 25
	rookSemiOpenFileMg = 10
	rookSemiOpenFileEg = 15
	rook7thMg          = 30
	rook7thEg          = 40

	queenOpenFileMg     = 10
	queenSemiOpenFileMg = 5

	doubledPawnMg  = -15
	doubledPawnEg  = -20
	isolatedPawnMg = -20
	isolatedPawnEg = -25
	backwardPawnMg = -15
	backwardPawnEg = -10

	knightOutpostMg          = 25
	knightOutpostEg          = 15
	knightOutpostProtectedMg = 15
	knightOutpostProtectedEg = 10
	bishopOutpostMg          = 15
	bishopOutpostEg          = 10

	candidatePasserMg = 10
	candidatePasserEg = 20

	pawnShieldFullBonus    = 10
	pawnShieldPartialBonus = 4
	pawnShieldMissing      = -15
	openFileNearKing       = -20
	semiOpenFileNearKing   = -10

	tempoBonus = 10
)

var passedPawnBonus = [8]int{0, 10, 20, 40, 70, 120, 200, 0}
var kingDistanceBonus = [8]int{0, 0, 10, 20, 30, 40, 50, 60}

// Evaluate returns the static evaluation of pos in centipawns from the
// side-to-move's perspective, using the incrementally maintained
// Material/PSQ sums Position already carries so this never rescans the
// board for material or piece-square terms.
func Evaluate(pos *board.Position) int {
	return evaluate(pos, nil)
}

// EvaluateCached is Evaluate but consults and populates a pawn-hash table
// for the pawn-structure term, skipping that recomputation on repeated
// positions sharing a pawn skeleton.
func EvaluateCached(pos *board.Position, pt *PawnTable) int {
	return evaluate(pos, pt)
}

func evaluate(pos *board.Position, pt *PawnTable) int {
	if pos.IsInsufficientMaterial() {
		return 0
	}

	mg := pos.Material[board.White][0] - pos.Material[board.Black][0] +
		pos.PSQ[board.White][0] - pos.PSQ[board.Black][0]
	eg := pos.Material[board.White][1] - pos.Material[board.Black][1] +
		pos.PSQ[board.White][1] - pos.PSQ[board.Black][1]

	psMg, psEg := pawnStructure(pos, pt)
	mg += psMg
	eg += psEg

	knMg, knEg := knightTerms(pos)
	mg += knMg
	eg += knEg

	biMg, biEg := bishopTerms(pos)
	mg += biMg
	eg += biEg

	rkMg, rkEg := rookTerms(pos)
	mg += rkMg
	eg += rkEg

	qMg, qEg := queenTerms(pos)
	mg += qMg
	eg += qEg

	mg += kingSafety(pos)

	ppMg, ppEg := passedPawnKingDistance(pos)
	mg += ppMg
	eg += ppEg

	phase := pos.Phase()
	score := (mg*(256-phase) + eg*phase) / 256
	score += tempoBonus

	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// pawnStructure scores isolated/doubled/backward pawns and candidate
// passers, and records the derived coverage/passer/candidate/rear-span/
// shield tensors the rest of evaluation and a future probe can reuse.
// When pt is non-nil, a hit on pos.PawnKey skips recomputation entirely.
func pawnStructure(pos *board.Position, pt *PawnTable) (mg, eg int) {
	if pt != nil {
		if entry, ok := pt.Probe(pos.PawnKey); ok {
			return int(entry.MgScore), int(entry.EgScore)
		}
	}

	var entry PawnEntry
	entry.Key = pos.PawnKey

	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		enemy := color.Other()
		ownPawns := pos.Pieces[color][board.Pawn]
		enemyPawns := pos.Pieces[enemy][board.Pawn]

		var coverage board.Bitboard
		if color == board.White {
			coverage = ownPawns.NorthEast() | ownPawns.NorthWest()
		} else {
			coverage = ownPawns.SouthEast() | ownPawns.SouthWest()
		}
		entry.Coverage[color] = coverage

		kingSq := pos.KingSquare[color]
		entry.Shield[color] = ownPawns & board.KingZone(color, kingSq)

		pawns := ownPawns
		for pawns != 0 {
			sq := pawns.PopLSB()
			file := sq.File()

			var adjacentFiles board.Bitboard
			if file > 0 {
				adjacentFiles |= board.FileMask[file-1]
			}
			if file < 7 {
				adjacentFiles |= board.FileMask[file+1]
			}

			if ownPawns&adjacentFiles == 0 {
				mg += sign * isolatedPawnMg
				eg += sign * isolatedPawnEg
			} else if ownPawns&adjacentFiles&board.RearAttackSpan(color, sq) == 0 &&
				enemyPawns&board.PawnAttacks(sq, color) != 0 {
				mg += sign * backwardPawnMg
				eg += sign * backwardPawnEg
				entry.RearSpan[color] |= board.SquareBB(sq)
			}

			if (ownPawns & board.FileMask[file] &^ board.SquareBB(sq)) != 0 {
				mg += sign * doubledPawnMg
				eg += sign * doubledPawnEg
			}

			if isPassedPawn(pos, sq, color) {
				entry.Passers[color] |= board.SquareBB(sq)
				rank := sq.Rank()
				relRank := rank
				if color == board.Black {
					relRank = 7 - rank
				}
				mg += sign * passedPawnBonus[relRank] / 2
				eg += sign * passedPawnBonus[relRank]
			} else if enemyPawns&board.FrontAttackSpan(color, sq) == 0 &&
				(enemyPawns&board.FrontSpan(color, sq)&board.FileMask[file]).PopCount() <= 1 {
				entry.Candidates[color] |= board.SquareBB(sq)
				mg += sign * candidatePasserMg
				eg += sign * candidatePasserEg
			}
		}
	}

	entry.MgScore = int16(mg)
	entry.EgScore = int16(eg)
	if pt != nil {
		pt.Store(entry)
	}

	return mg, eg
}

// unsafeSquares returns the squares color's pieces can't safely occupy:
// those attacked by the enemy's pawns, plus color's own occupied squares.
func unsafeSquares(pos *board.Position, color board.Color) board.Bitboard {
	enemyPawns := pos.Pieces[color.Other()][board.Pawn]
	var pawnAttacks board.Bitboard
	if color == board.White {
		pawnAttacks = enemyPawns.SouthEast() | enemyPawns.SouthWest()
	} else {
		pawnAttacks = enemyPawns.NorthEast() | enemyPawns.NorthWest()
	}
	return pawnAttacks | pos.Occupied[color]
}

func knightTerms(pos *board.Position) (mg, eg int) {
	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		blocked := unsafeSquares(pos, color)
		ownPawns := pos.Pieces[color][board.Pawn]
		enemyPawns := pos.Pieces[color.Other()][board.Pawn]

		knights := pos.Pieces[color][board.Knight]
		for knights != 0 {
			sq := knights.PopLSB()
			mobility := (board.KnightAttacks(sq) &^ blocked).PopCount()
			mg += sign * mobilityMg[board.Knight] * mobility
			eg += sign * mobilityEg[board.Knight] * mobility

			if board.OutpostSquares(color).IsSet(sq) && !attackableByPawn(pos, sq, color, enemyPawns) {
				mg += sign * knightOutpostMg
				eg += sign * knightOutpostEg
				if board.PawnAttacks(sq, color.Other())&ownPawns != 0 {
					mg += sign * knightOutpostProtectedMg
					eg += sign * knightOutpostProtectedEg
				}
			}
		}
	}
	return mg, eg
}

func bishopTerms(pos *board.Position) (mg, eg int) {
	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		blocked := unsafeSquares(pos, color)
		enemyPawns := pos.Pieces[color.Other()][board.Pawn]

		bishops := pos.Pieces[color][board.Bishop]
		if bishops.PopCount() >= 2 {
			mg += sign * bishopPairMg
			eg += sign * bishopPairEg
		}

		for bishops != 0 {
			sq := bishops.PopLSB()
			attacks := board.BishopAttacks(sq, pos.AllOccupied)
			mobility := (attacks &^ blocked).PopCount()
			mg += sign * mobilityMg[board.Bishop] * mobility
			eg += sign * mobilityEg[board.Bishop] * mobility

			if board.OutpostSquares(color).IsSet(sq) && !attackableByPawn(pos, sq, color, enemyPawns) {
				mg += sign * bishopOutpostMg
				eg += sign * bishopOutpostEg
			}
		}
	}
	return mg, eg
}

func rookTerms(pos *board.Position) (mg, eg int) {
	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		blocked := unsafeSquares(pos, color)
		ownPawns := pos.Pieces[color][board.Pawn]
		enemyPawns := pos.Pieces[color.Other()][board.Pawn]

		seventh := board.Rank7
		enemyBackRank := board.Rank8
		if color == board.Black {
			seventh = board.Rank2
			enemyBackRank = board.Rank1
		}

		rooks := pos.Pieces[color][board.Rook]
		for rooks != 0 {
			sq := rooks.PopLSB()
			file := board.FileMask[sq.File()]

			switch {
			case ownPawns&file == 0 && enemyPawns&file == 0:
				mg += sign * rookOpenFileMg
				eg += sign * rookOpenFileEg
			case ownPawns&file == 0:
				mg += sign * rookSemiOpenFileMg
				eg += sign * rookSemiOpenFileEg
			}

			if board.RankMask[sq.Rank()]&seventh != 0 &&
				(pos.Pieces[color.Other()][board.King]&enemyBackRank != 0 || enemyPawns&seventh != 0) {
				mg += sign * rook7thMg
				eg += sign * rook7thEg
			}

			mobility := (board.RookAttacks(sq, pos.AllOccupied) &^ blocked).PopCount()
			mg += sign * mobilityMg[board.Rook] * mobility
			eg += sign * mobilityEg[board.Rook] * mobility
		}
	}
	return mg, eg
}

func queenTerms(pos *board.Position) (mg, eg int) {
	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		blocked := unsafeSquares(pos, color)
		ownPawns := pos.Pieces[color][board.Pawn]
		enemyPawns := pos.Pieces[color.Other()][board.Pawn]

		queens := pos.Pieces[color][board.Queen]
		for queens != 0 {
			sq := queens.PopLSB()
			file := board.FileMask[sq.File()]
			switch {
			case ownPawns&file == 0 && enemyPawns&file == 0:
				mg += sign * queenOpenFileMg
			case ownPawns&file == 0:
				mg += sign * queenSemiOpenFileMg
			}

			mobility := (board.QueenAttacks(sq, pos.AllOccupied) &^ blocked).PopCount()
			mg += sign * mobilityMg[board.Queen] * mobility
			eg += sign * mobilityEg[board.Queen] * mobility
		}
	}
	return mg, eg
}

// attackableByPawn reports whether a future enemy pawn could ever attack
// sq, by checking whether any enemy pawn on an adjacent file still sits
// behind sq (relative to color) on the path toward it.
func attackableByPawn(pos *board.Position, sq board.Square, color board.Color, enemyPawns board.Bitboard) bool {
	file := sq.File()
	var adjacent board.Bitboard
	if file > 0 {
		adjacent |= board.FileMask[file-1]
	}
	if file < 7 {
		adjacent |= board.FileMask[file+1]
	}
	return enemyPawns&adjacent&board.RearAttackSpan(color.Other(), sq) != 0 ||
		board.PawnAttacks(sq, color.Other())&enemyPawns != 0
}

func kingSafety(pos *board.Position) int {
	var score int
	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		enemy := color.Other()
		kingSq := pos.KingSquare[color]
		kingFile := kingSq.File()
		zone := board.KingZone(color, kingSq)

		attackerCount := 0
		attackWeight := 0
		for pt := board.Knight; pt <= board.Queen; pt++ {
			pieces := pos.Pieces[enemy][pt]
			for pieces != 0 {
				sq := pieces.PopLSB()
				var attacks board.Bitboard
				switch pt {
				case board.Knight:
					attacks = board.KnightAttacks(sq)
				case board.Bishop:
					attacks = board.BishopAttacks(sq, pos.AllOccupied)
				case board.Rook:
					attacks = board.RookAttacks(sq, pos.AllOccupied)
				case board.Queen:
					attacks = board.QueenAttacks(sq, pos.AllOccupied)
				}
				if attacks&zone != 0 {
					attackerCount++
					attackWeight += attackerWeight[pt]
				}
			}
		}
		if attackerCount > 0 {
			idx := attackerCount
			if idx >= len(attackWeightByCount) {
				idx = len(attackWeightByCount) - 1
			}
			score -= sign * (attackWeight * attackWeightByCount[idx] / 100)
		}

		ownPawns := pos.Pieces[color][board.Pawn]
		enemyPawns := pos.Pieces[enemy][board.Pawn]
		shieldRank := 1
		if color == board.Black {
			shieldRank = 6
		}
		for f := kingFile - 1; f <= kingFile+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			file := board.FileMask[f]
			filePawns := ownPawns & file

			switch {
			case file&board.RankMask[shieldRank]&ownPawns != 0:
				score += sign * pawnShieldFullBonus
			case filePawns != 0:
				score += sign * pawnShieldPartialBonus
			default:
				score += sign * pawnShieldMissing
			}

			switch {
			case filePawns == 0 && enemyPawns&file == 0:
				score += sign * openFileNearKing
			case filePawns == 0:
				score += sign * semiOpenFileNearKing
			}
		}
	}
	return score
}

func passedPawnKingDistance(pos *board.Position) (mg, eg int) {
	phase := pos.Phase()
	if phase < 128 { // distance terms only matter once the endgame is near
		return 0, 0
	}

	for color := board.White; color <= board.Black; color++ {
		sign := signOf(color)
		enemy := color.Other()
		ownKing := pos.KingSquare[color]
		enemyKing := pos.KingSquare[enemy]

		pawns := pos.Pieces[color][board.Pawn]
		for pawns != 0 {
			sq := pawns.PopLSB()
			if !isPassedPawn(pos, sq, color) {
				continue
			}
			file := sq.File()
			promoRank := 7
			if color == board.Black {
				promoRank = 0
			}
			promoSq := board.NewSquare(file, promoRank)

			eg += sign * kingDistanceBonus[7-chebyshev(ownKing, sq)]
			eg += sign * kingDistanceBonus[chebyshev(enemyKing, promoSq)]
		}
	}
	return mg, eg
}

func isPassedPawn(pos *board.Position, sq board.Square, color board.Color) bool {
	enemyPawns := pos.Pieces[color.Other()][board.Pawn]
	return enemyPawns&board.FrontAttackSpan(color, sq) == 0 &&
		enemyPawns&board.FrontSpan(color, sq)&board.FileMask[sq.File()] == 0
}

func chebyshev(a, b board.Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func signOf(c board.Color) int {
	if c == board.Black {
		return -1
	}
	return 1
}
