// Package tablebase defines the named Prober boundary the decision core
// consults for endgame win/draw/loss information. It ships a cache wrapper
// and a no-op placeholder; decoding the Syzygy WDL/DTZ file format itself
// is out of scope (the decision core only ever calls through Prober).
package tablebase

import "github.com/corebench/chesscore/internal/board"

// WDL is a win/draw/loss verdict, with "cursed"/"blessed" variants for
// results the 50-move rule can still overturn.
type WDL int

const (
	WDLLoss        WDL = -2
	WDLBlessedLoss WDL = -1
	WDLDraw        WDL = 0
	WDLCursedWin   WDL = 1
	WDLWin         WDL = 2
)

// ProbeResult is the outcome of probing a single position.
type ProbeResult struct {
	Found bool
	WDL   WDL
	DTZ   int
}

// RootResult is the outcome of probing every legal move at a root position
// to find the best tablebase-backed move.
type RootResult struct {
	Found bool
	Move  board.Move
	WDL   WDL
	DTZ   int
}

// Prober is the named interface the decision core consults for endgame
// tablebase information; it never reasons about the Syzygy file format.
type Prober interface {
	Probe(pos *board.Position) ProbeResult
	ProbeRoot(pos *board.Position) RootResult
	MaxPieces() int
	Available() bool
}

// WDLToScore converts a WDL verdict to a ply-adjusted centipawn-scale
// score, using the same mate-score convention as Checkmate-adjacent scores
// elsewhere in the engine.
func WDLToScore(wdl WDL, ply int) int {
	const mateScore = 30000
	switch wdl {
	case WDLWin:
		return mateScore - ply
	case WDLCursedWin:
		return mateScore - 100 - ply
	case WDLDraw:
		return 0
	case WDLBlessedLoss:
		return -mateScore + 100 + ply
	case WDLLoss:
		return -mateScore + ply
	default:
		return 0
	}
}

// NoopProber reports every position as not-found; used when no tablebase
// backend is configured.
type NoopProber struct{}

func (NoopProber) Probe(pos *board.Position) ProbeResult    { return ProbeResult{Found: false} }
func (NoopProber) ProbeRoot(pos *board.Position) RootResult { return RootResult{Found: false} }
func (NoopProber) MaxPieces() int                           { return 0 }
func (NoopProber) Available() bool                          { return false }

// CountPieces returns the total piece count on the board, the quantity
// that bounds which tablebase files could possibly cover a position.
func CountPieces(pos *board.Position) int {
	return pos.AllOccupied.PopCount()
}
