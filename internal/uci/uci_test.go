package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corebench/chesscore/internal/board"
	"github.com/corebench/chesscore/internal/tablebase"
)

func newTestUCI() (*UCI, *bytes.Buffer) {
	eng := NewEngine(nil, tablebase.NoopProber{})
	var out bytes.Buffer
	u := New(eng)
	u.out = &out
	return u, &out
}

func TestHandleUCIReportsIdentity(t *testing.T) {
	u, out := newTestUCI()
	u.handleUCI()
	if !strings.Contains(out.String(), "uciok") {
		t.Errorf("expected uciok in response, got %q", out.String())
	}
}

func TestRunRespondsToIsReady(t *testing.T) {
	eng := NewEngine(nil, tablebase.NoopProber{})
	u := New(eng)
	in := strings.NewReader("isready\nquit\n")
	var out bytes.Buffer
	u.Run(in, &out)
	if !strings.Contains(out.String(), "readyok") {
		t.Errorf("expected readyok in response, got %q", out.String())
	}
}

func TestHandlePositionStartposWithMoves(t *testing.T) {
	u, _ := newTestUCI()
	u.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"})

	if u.pos.PieceAt(board.E4).Type() != board.Pawn {
		t.Error("expected a white pawn on e4 after e2e4")
	}
	if u.pos.PieceAt(board.E2) != board.NoPiece {
		t.Error("expected e2 to be vacated after e2e4")
	}
	if u.pos.SideToMove != board.White {
		t.Error("expected white to move after the even-length move list e2e4 e7e5")
	}
}

func TestHandlePositionFEN(t *testing.T) {
	u, _ := newTestUCI()
	u.handlePosition([]string{"fen", "4k3/8/8/8/8/8/8/4K3", "w", "-", "-", "0", "1"})
	if u.pos.PieceAt(board.E1).Type() != board.King {
		t.Error("expected a king on e1 from the parsed FEN")
	}
}

func TestHandleGoReturnsBestmove(t *testing.T) {
	u, out := newTestUCI()
	u.handlePosition([]string{"startpos"})
	u.handleGo()
	if !strings.HasPrefix(out.String(), "bestmove ") {
		t.Errorf("expected a bestmove line, got %q", out.String())
	}
}
