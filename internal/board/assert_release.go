//go:build !debug

package board

// assertConsistent is a no-op in the default build; see assert_debug.go for
// the debug-tagged version that actually calls Position.Validate.
func assertConsistent(p *Position, op string) {}
