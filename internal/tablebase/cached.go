package tablebase

import (
	"context"
	"encoding/binary"

	"golang.org/x/sync/errgroup"

	"github.com/corebench/chesscore/internal/board"
	"github.com/corebench/chesscore/internal/storage"
)

// StoreCachedProber wraps another Prober with a badger-backed cache keyed
// by Zobrist hash, so repeated probes of the same endgame position across
// restarts cost one disk lookup instead of a re-probe.
type StoreCachedProber struct {
	inner Prober
	store *storage.Store
}

// NewStoreCachedProber wraps inner with a persistent cache in store.
func NewStoreCachedProber(inner Prober, store *storage.Store) *StoreCachedProber {
	return &StoreCachedProber{inner: inner, store: store}
}

func cacheKey(hash uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], hash)
	return buf[:]
}

func encodeProbeResult(r ProbeResult) []byte {
	buf := make([]byte, 9)
	if r.Found {
		buf[0] = 1
	}
	buf[1] = byte(int8(r.WDL))
	binary.BigEndian.PutUint32(buf[2:6], uint32(int32(r.DTZ)))
	return buf[:6]
}

func decodeProbeResult(raw []byte) (ProbeResult, bool) {
	if len(raw) < 6 {
		return ProbeResult{}, false
	}
	return ProbeResult{
		Found: raw[0] == 1,
		WDL:   WDL(int8(raw[1])),
		DTZ:   int(int32(binary.BigEndian.Uint32(raw[2:6]))),
	}, true
}

// Probe checks the persistent cache before falling through to inner.
func (cp *StoreCachedProber) Probe(pos *board.Position) ProbeResult {
	key := cacheKey(pos.Hash)
	if raw, ok, err := cp.store.Get(storage.NamespaceTablebase, key); err == nil && ok {
		if result, ok := decodeProbeResult(raw); ok {
			return result
		}
	}

	result := cp.inner.Probe(pos)
	_ = cp.store.Set(storage.NamespaceTablebase, key, encodeProbeResult(result))
	return result
}

// ProbeRoot probes every legal move concurrently via errgroup, each made on
// its own cloned position, and returns the move with the best WDL. DTZ is
// not compared: among moves of equal WDL the first in generation order is
// kept, and its DTZ is reported as probed. Concurrency matters
// here specifically because each candidate move's resulting position is
// an independent cache-or-probe round trip, unlike Probe's single lookup.
func (cp *StoreCachedProber) ProbeRoot(pos *board.Position) RootResult {
	legal := pos.GenLegalMoves()
	if legal.Len() == 0 {
		return RootResult{Found: false}
	}

	results := make([]ProbeResult, legal.Len())
	moves := make([]board.Move, legal.Len())

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < legal.Len(); i++ {
		i := i
		m := legal.Get(i)
		moves[i] = m

		g.Go(func() error {
			clone := pos.Copy()
			if !clone.MakeMove(m) {
				return nil
			}
			results[i] = cp.Probe(clone)
			return nil
		})
	}
	_ = g.Wait()

	best := RootResult{Found: false}
	for i, r := range results {
		if !r.Found {
			continue
		}
		// From the root side's perspective a child's WDL is inverted: a
		// loss for the side to move after our move is a win for us.
		theirWDL := r.WDL
		ourWDL := -theirWDL
		if !best.Found || ourWDL > best.WDL {
			best = RootResult{Found: true, Move: moves[i], WDL: ourWDL, DTZ: r.DTZ}
		}
	}
	return best
}

// MaxPieces delegates to the wrapped prober.
func (cp *StoreCachedProber) MaxPieces() int { return cp.inner.MaxPieces() }

// Available delegates to the wrapped prober.
func (cp *StoreCachedProber) Available() bool { return cp.inner.Available() }
