//go:build debug

package board

import "testing"

func TestAssertConsistentPanicsOnCorruption(t *testing.T) {
	pos := NewPosition()
	pos.PawnKey ^= 1

	defer func() {
		if recover() == nil {
			t.Error("assertConsistent should panic on a corrupted PawnKey")
		}
	}()
	assertConsistent(pos, "test")
}

func TestAssertConsistentSilentOnValidPosition(t *testing.T) {
	pos := NewPosition()
	assertConsistent(pos, "test")
}
