package engine

import "github.com/corebench/chesscore/internal/board"

// Checkmate is the terminal score magnitude returned (negated, ply-adjusted
// by the caller) when a side to move in check has no legal replies.
const Checkmate = 30000

// mvvLvaValue mirrors board's internal SEE material scale; kept as a
// separate copy since move ordering only needs relative weight, not the
// same currency SEE reasons in.
var mvvLvaValue = [6]int{100, 320, 330, 500, 900, 20000}

// Quiescence runs the capture/check-evasion search rooted at pos, returning
// a score in centipawns from the side-to-move's perspective. It never
// probes a transposition table and carries no depth-limited iterative
// driver state — both belong to the out-of-scope search orchestrator.
func Quiescence(pos *board.Position, h *Heuristics, pt *PawnTable, ply, alpha, beta int) int {
	if ply >= MaxPly {
		return EvaluateCached(pos, pt)
	}

	inCheck := pos.InCheck()

	var standPat int
	if !inCheck {
		standPat = EvaluateCached(pos, pt)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	moves := candidateMoves(pos, inCheck)
	if moves.Len() == 0 {
		if inCheck {
			return -Checkmate + ply
		}
		return alpha
	}

	scores := scoreMoves(pos, moves, h, ply)
	legalSeen := false

	for i := 0; i < moves.Len(); i++ {
		pickHighest(moves, scores, i)
		m := moves.Get(i)

		if !pos.MakeMove(m) {
			continue
		}
		legalSeen = true

		score := -Quiescence(pos, h, pt, ply+1, -beta, -alpha)
		pos.UnmakeMove(m)

		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	if inCheck && !legalSeen {
		return -Checkmate + ply
	}

	return alpha
}

// candidateMoves returns the move set quiescence should search: every
// legal move while in check (no capture-only restriction — the side to
// move must find any escape), captures and queen promotions otherwise.
func candidateMoves(pos *board.Position, inCheck bool) *board.MoveList {
	if inCheck {
		return pos.GenLegalMoves()
	}

	ml := &board.MoveList{}
	pos.GenCaptureMoves(ml)
	pos.GenPromotionMoves(ml, false)
	return ml
}

// scoreMoves assigns each move in ml an ordering score: captures and
// promotions get an MVV/LVA score comfortably above any quiet-move score;
// quiet moves (only ever present here when in check and evading) are
// ordered by killer-slot membership, falling back to zero.
func scoreMoves(pos *board.Position, ml *board.MoveList, h *Heuristics, ply int) []int {
	scores := make([]int, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !m.IsTactical() {
			scores[i] = h.KillerScore(m, ply)
			continue
		}

		var victim board.PieceType
		if m.IsEnPassant() {
			victim = board.Pawn
		} else if v := pos.PieceAt(m.To()); v != board.NoPiece {
			victim = v.Type()
		}
		attacker := pos.PieceAt(m.From()).Type()

		score := 10000 + mvvLvaValue[victim]*16 - mvvLvaValue[attacker]
		if m.IsPromotion() {
			score += mvvLvaValue[m.Promotion()] * 16
		}
		scores[i] = score
	}
	return scores
}

// pickHighest moves the highest-scoring move at or after i into slot i,
// the same selection-sort-as-you-go idiom move ordering tables use instead
// of sorting the whole list up front.
func pickHighest(ml *board.MoveList, scores []int, i int) {
	best := i
	for j := i + 1; j < ml.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != i {
		ml.Swap(i, best)
		scores[i], scores[best] = scores[best], scores[i]
	}
}
