package engine

import "github.com/corebench/chesscore/internal/board"

// MaxPly bounds per-ply heuristic tables (killers) and the quiescence
// recursion depth guard; matches the resource bound spec.md calls out for
// search-worker stacks.
const MaxPly = 132

// historyCap is the rescale threshold for the history table; exceeding it
// halves every entry uniformly rather than
// saturating, so relative ordering between moves is preserved.
const historyCap = 16000

// Heuristics holds the per-search-worker move-ordering state fed by
// quiescence and (externally) the principal-variation search: killer
// moves, counter moves, and the history table. Exclusively owned by one
// worker; never shared.
type Heuristics struct {
	killers [MaxPly][2]board.Move

	// Indexed by (piece, to-square), per spec.md's history table shape —
	// not (from, to) as some engines key it.
	history [12][64]int

	// Indexed by (previous move's piece, previous move's to-square).
	counters [12][64]board.Move
}

// NewHeuristics returns a zeroed heuristic table set.
func NewHeuristics() *Heuristics {
	return &Heuristics{}
}

// Clear resets killers and counters and ages down history scores, the way
// a search restarts between root moves without discarding long-run move
// quality signal entirely.
func (h *Heuristics) Clear() {
	for i := range h.killers {
		h.killers[i][0] = board.NoMove
		h.killers[i][1] = board.NoMove
	}
	for i := range h.counters {
		for j := range h.counters[i] {
			h.counters[i][j] = board.NoMove
		}
	}
	for i := range h.history {
		for j := range h.history[i] {
			h.history[i][j] /= 2
		}
	}
}

// AddKiller records m as a killer at ply, shifting the existing first
// killer down a slot. Tactical moves (captures, promotions, en passant)
// are never stored — they're already ordered ahead of quiet moves by
// MVV/LVA, so a killer slot would be wasted on them.
func (h *Heuristics) AddKiller(m board.Move, ply int) {
	if m.IsTactical() || ply >= MaxPly {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// IsKiller reports whether m occupies either killer slot at ply.
func (h *Heuristics) IsKiller(m board.Move, ply int) bool {
	if ply >= MaxPly {
		return false
	}
	return h.killers[ply][0] == m || h.killers[ply][1] == m
}

// KillerScore returns an ordering bonus for m at ply: higher for the more
// recently-set first slot, zero if m isn't a killer there.
func (h *Heuristics) KillerScore(m board.Move, ply int) int {
	if ply >= MaxPly {
		return 0
	}
	switch m {
	case h.killers[ply][0]:
		return 2
	case h.killers[ply][1]:
		return 1
	default:
		return 0
	}
}

// AddCounter records m as the move that refuted prevMove, played by
// prevPiece landing on prevTo.
func (h *Heuristics) AddCounter(prevPiece board.Piece, prevTo board.Square, m board.Move) {
	if prevPiece == board.NoPiece {
		return
	}
	h.counters[prevPiece][prevTo] = m
}

// CounterMove returns the recorded refutation for a move by prevPiece to
// prevTo, or board.NoMove if none has been recorded.
func (h *Heuristics) CounterMove(prevPiece board.Piece, prevTo board.Square) board.Move {
	if prevPiece == board.NoPiece {
		return board.NoMove
	}
	return h.counters[prevPiece][prevTo]
}

// UpdateHistory adds depth² to the (piece, to) history entry on a beta
// cutoff for a quiet move; once any entry crosses historyCap every entry
// in the table is halved so relative ordering survives without overflow.
func (h *Heuristics) UpdateHistory(piece board.Piece, to board.Square, depth int) {
	if piece == board.NoPiece {
		return
	}
	bonus := depth * depth
	h.history[piece][to] += bonus
	if h.history[piece][to] > historyCap {
		for i := range h.history {
			for j := range h.history[i] {
				h.history[i][j] /= 2
			}
		}
	}
}

// HistoryScore returns the current history score for (piece, to).
func (h *Heuristics) HistoryScore(piece board.Piece, to board.Square) int {
	if piece == board.NoPiece {
		return 0
	}
	return h.history[piece][to]
}
