//go:build debug

package board

import "fmt"

// assertConsistent runs Position.Validate after every make/unmake in debug
// builds, panicking with the offending operation's name on failure. Builds
// without the debug tag compile this to a no-op (see assert_release.go) so
// the default build stays allocation-free and panic-free on the hot path.
func assertConsistent(p *Position, op string) {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("board: invariant violated after %s: %v", op, err))
	}
}
