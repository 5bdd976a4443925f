// Package uci is a thin front end over the board/engine decision core: it
// speaks the subset of the Universal Chess Interface protocol needed to
// set up a position and report a move (uci, isready, position, go, quit).
// It owns no search driver of its own — "go" answers from the tablebase or
// the book when either has a move, and otherwise picks the best move by
// scoring every legal root move with one ply of quiescence search.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/corebench/chesscore/internal/board"
	"github.com/corebench/chesscore/internal/book"
	"github.com/corebench/chesscore/internal/engine"
	"github.com/corebench/chesscore/internal/tablebase"
)

// Engine bundles the decision core's move-ordering support and a fixed
// pawn-hash table so every search consults a warm cache.
type Engine struct {
	Heuristics *engine.Heuristics
	PawnTable  *engine.PawnTable
	Book       *book.Book
	Tablebase  tablebase.Prober
}

// NewEngine returns an Engine ready to drive the UCI loop. book and tb may
// be nil; a nil tablebase.Prober is treated as tablebase.NoopProber.
func NewEngine(b *book.Book, tb tablebase.Prober) *Engine {
	if tb == nil {
		tb = tablebase.NoopProber{}
	}
	return &Engine{
		Heuristics: engine.NewHeuristics(),
		PawnTable:  engine.NewPawnTable(16),
		Book:       b,
		Tablebase:  tb,
	}
}

// UCI drives the protocol loop against one Engine and one live Position.
type UCI struct {
	eng *Engine
	pos *board.Position
	out io.Writer
}

// New returns a UCI handler wrapping eng, starting from the initial
// position.
func New(eng *Engine) *UCI {
	return &UCI{eng: eng, pos: board.NewPosition(), out: nil}
}

// Run reads commands from r and writes protocol responses to w until EOF
// or a "quit" command.
func (u *UCI) Run(r io.Reader, w io.Writer) {
	u.out = w
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.reply("readyok")
		case "ucinewgame":
			u.pos = board.NewPosition()
			u.eng.Heuristics.Clear()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo()
		case "quit":
			return
		default:
			log.Debug().Str("command", cmd).Msg("uci: ignoring unrecognized command")
		}
	}
}

func (u *UCI) reply(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *UCI) handleUCI() {
	u.reply("id name corebench")
	u.reply("id author corebench contributors")
	u.reply("uciok")
}

// handlePosition parses "position [startpos|fen <fen>] [moves <m1> <m2> ...]".
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var rest []string
	switch args[0] {
	case "startpos":
		u.pos = board.NewPosition()
		rest = args[1:]
	case "fen":
		end := 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		pos, err := board.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			log.Warn().Err(err).Msg("uci: invalid FEN in position command")
			return
		}
		u.pos = pos
		rest = args[end:]
	default:
		return
	}

	if len(rest) == 0 || rest[0] != "moves" {
		return
	}
	for _, moveStr := range rest[1:] {
		m, err := board.ParseMove(moveStr, u.pos)
		if err != nil {
			log.Warn().Err(err).Str("move", moveStr).Msg("uci: failed to parse move")
			return
		}
		if !u.pos.MakeMove(m) {
			log.Warn().Str("move", moveStr).Msg("uci: illegal move in position command")
			return
		}
	}
}

// handleGo picks a move: a tablebase root result if available, else a book
// move, else the best-scoring legal move by one ply of negamax over
// Quiescence.
func (u *UCI) handleGo() {
	if u.eng.Tablebase.Available() {
		if root := u.eng.Tablebase.ProbeRoot(u.pos); root.Found {
			u.reply("bestmove %s", moveToUCI(root.Move))
			return
		}
	}

	if m, ok := u.eng.Book.Probe(u.pos); ok {
		u.reply("bestmove %s", moveToUCI(m))
		return
	}

	best, bestScore := board.NoMove, -engine.Checkmate-1
	legal := u.pos.GenLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if !u.pos.MakeMove(m) {
			continue
		}
		score := -engine.Quiescence(u.pos, u.eng.Heuristics, u.eng.PawnTable, 0, -engine.Checkmate, engine.Checkmate)
		u.pos.UnmakeMove(m)

		if score > bestScore {
			bestScore, best = score, m
		}
	}

	if best == board.NoMove {
		u.reply("bestmove 0000")
		return
	}
	u.reply("bestmove %s", moveToUCI(best))
}

// moveToUCI formats m in UCI's long algebraic notation (e2e4, e7e8q).
func moveToUCI(m board.Move) string {
	return m.String()
}
