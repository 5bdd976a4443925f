package board

import "testing"

func TestCheckmate(t *testing.T) {
	// White: Ka1, Ra8; Black: Kh8, pawns g7/h7 blocking escape — back-rank mate.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if !pos.InCheck() {
		t.Fatal("expected black to be in check")
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate")
	}
	if pos.IsStalemate() {
		t.Error("checkmate is not stalemate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king can capture the checking rook.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if pos.IsCheckmate() {
		t.Error("expected not checkmate (king captures the rook)")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king a8 has no moves and is not in check.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if pos.InCheck() {
		t.Fatal("expected black not in check")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate")
	}
}

func TestGenLegalMovesExcludesIllegalCastle(t *testing.T) {
	// White king in check cannot castle out of it.
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsCastle() {
			t.Errorf("castle move %v should be illegal while king is in check", m)
		}
	}
}

func TestGenLegalMovesCastlingAvailable(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenLegalMoves()
	foundKingSide, foundQueenSide := false, false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.IsCastle() {
			continue
		}
		if m.IsCastleKing() {
			foundKingSide = true
		} else {
			foundQueenSide = true
		}
	}
	if !foundKingSide || !foundQueenSide {
		t.Errorf("expected both castling sides available, got king=%v queen=%v", foundKingSide, foundQueenSide)
	}
}

func TestGenCaptureMovesOnlyCaptures(t *testing.T) {
	pos := NewPosition()
	// Open a capture: 1.e4 d5
	m1, _ := ParseMove("e2e4", pos)
	pos.MakeMove(m1)
	m2, _ := ParseMove("d7d5", pos)
	pos.MakeMove(m2)

	var ml MoveList
	pos.GenCaptureMoves(&ml)
	if ml.Len() == 0 {
		t.Fatal("expected at least one capture (exd5)")
	}
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !m.IsCapture() {
			t.Errorf("GenCaptureMoves produced non-capture move %v", m)
		}
	}
}

func TestIsMovePseudoLegal(t *testing.T) {
	pos := NewPosition()
	legal, err := ParseMove("e2e4", pos)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !pos.IsMovePseudoLegal(legal) {
		t.Error("e2e4 should be pseudo-legal from the starting position")
	}

	illegal := NewMove(E2, E5) // pawn can't jump three squares
	if pos.IsMovePseudoLegal(illegal) {
		t.Error("e2e5 should not be pseudo-legal from the starting position")
	}

	wrongSide := NewMove(E7, E5) // black's pawn, white to move
	if pos.IsMovePseudoLegal(wrongSide) {
		t.Error("moving a black piece on white's turn should not be pseudo-legal")
	}
}

func TestMoveGivesCheck(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/R7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMove(A2, E2)
	if !pos.MoveGivesCheck(m) {
		t.Error("Re2 should give check to the king on e8")
	}

	quiet := NewMove(E1, D1)
	if pos.MoveGivesCheck(quiet) {
		t.Error("Kd1 should not give check")
	}
}

func TestRepetitionDetection(t *testing.T) {
	pos := NewPosition()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range moves {
		m, err := ParseMove(s, pos)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", s, err)
		}
		if !pos.MakeMove(m) {
			t.Fatalf("MakeMove(%s) rejected as illegal", s)
		}
	}
	if !pos.Repetition() {
		t.Error("expected threefold-eligible repetition to be detected")
	}
}
