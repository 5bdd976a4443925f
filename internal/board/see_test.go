package board

import "testing"

func seeMove(t *testing.T, pos *Position, uci string) Move {
	t.Helper()
	m, err := ParseMove(uci, pos)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", uci, err)
	}
	return m
}

func TestSeeGEWinningPawnCapture(t *testing.T) {
	// White pawn e4 can take a hanging knight on d5 for free.
	pos, err := ParseFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "e4d5")
	if !SeeGE(pos, m, 0) {
		t.Error("expected exd5 to be at least equal (free knight)")
	}
	if !SeeGE(pos, m, 200) {
		t.Error("expected exd5 to win at least 200cp (knight for pawn)")
	}
}

func TestSeeGELosingCaptureIntoDefendedPawn(t *testing.T) {
	// White rook on d1 takes a pawn on d5 defended by a pawn on c6 and e6.
	pos, err := ParseFEN("4k3/8/2p1p3/3p4/8/8/8/3R1K2 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "d1d5")
	if SeeGE(pos, m, 0) {
		t.Error("expected Rxd5 to lose material (rook recaptured by pawn)")
	}
}

func TestSeeGEEqualTradePawnForPawn(t *testing.T) {
	// exd5 cxd5: the c6 pawn recaptures, so the trade nets zero.
	pos, err := ParseFEN("4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "e4d5")
	if !SeeGE(pos, m, 0) {
		t.Error("expected exd5 (pawn for pawn) to be at least equal")
	}
	if SeeGE(pos, m, 1) {
		t.Error("expected exd5 to not clear a positive threshold above equal")
	}
}

func TestSeeGEXrayRecapture(t *testing.T) {
	// White rook d2 takes pawn d5; black rook d8 recaptures; the white queen
	// on d1, behind the first rook on the d-file, is the x-ray attacker that
	// participates after the first exchange.
	pos, err := ParseFEN("3rk3/8/8/3p4/8/8/3R4/3Q2K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "d2d5")
	// Rxd5 Rxd5 Qxd5: pawn (100) - rook (500) + rook (500) nets +100 for white.
	if !SeeGE(pos, m, 100) {
		t.Error("expected Rxd5 to net at least a pawn after the full exchange")
	}
	if SeeGE(pos, m, 600) {
		t.Error("expected Rxd5 to not net a full rook's worth")
	}
}

func TestSeeGEKingCannotCaptureIntoAttack(t *testing.T) {
	// King on e1 takes a pawn on d2, but the pawn is defended by a rook on
	// d8, so the king can't actually complete the capture safely; SeeGE
	// should stop once the only remaining attacker is the king and the
	// enemy still holds an attacker of the square.
	pos, err := ParseFEN("3rk3/8/8/8/8/8/3p4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "e1d2")
	if SeeGE(pos, m, 0) {
		t.Error("expected Kxd2 to lose the king (rook recaptures)")
	}
}

func TestSeeGECastleTrivialPass(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := seeMove(t, pos, "e1g1")
	if !SeeGE(pos, m, -1) {
		t.Error("expected castling to trivially pass a negative threshold")
	}
	if SeeGE(pos, m, 1) {
		t.Error("expected castling to trivially fail any positive threshold")
	}
}
