package dandelion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/dandelion/btcutil/er"
	"github.com/pkt-cash/dandelion/dandelion"
)

func peers(n int) []dandelion.PeerID {
	out := make([]dandelion.PeerID, n)
	for i := range out {
		out[i] = dandelion.PeerID{byte(i + 1)}
	}
	return out
}

func sources(n int) []dandelion.SourceID {
	out := make([]dandelion.SourceID, n)
	for i := range out {
		out[i] = dandelion.SourceID{byte(i + 1), byte(i + 1)}
	}
	return out
}

func newMap(n int, avail []dandelion.PeerID) *dandelion.Map[dandelion.PeerID, dandelion.SourceID] {
	return dandelion.New[dandelion.PeerID, dandelion.SourceID](n, avail, dandelion.CompareSourceID)
}

func TestZeroTargetIsNoOp(t *testing.T) {
	m := newMap(0, peers(4))
	require.Equal(t, 0, m.Size())

	_, ok := m.GetStem(sources(1)[0])
	require.False(t, ok)

	require.False(t, m.Update(peers(9)))
	require.Equal(t, 0, m.Size())
}

// Scenario 4: N=3, 6 peers, 9 sources -- each slot gets exactly 3.
func TestGetStemDistributesEvenly(t *testing.T) {
	p := peers(6)
	m := newMap(3, p)
	require.Equal(t, 3, m.Size())

	s := sources(9)
	counts := map[dandelion.PeerID]int{}
	for _, src := range s {
		peer, ok := m.GetStem(src)
		require.True(t, ok)
		counts[peer]++
	}
	require.Len(t, counts, 3)
	for peer, c := range counts {
		require.Equalf(t, 3, c, "peer %v bound to %d sources, want 3", peer, c)
	}

	// Stability: repeated calls with no intervening update return the same peer.
	for _, src := range s {
		first, ok := m.GetStem(src)
		require.True(t, ok)
		again, ok := m.GetStem(src)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

// Scenario 5: drop one peer of six, verify replacement and stability of
// the other bindings.
func TestUpdateDropOnePeer(t *testing.T) {
	p := peers(6)
	m := newMap(3, p)
	s := sources(9)

	before := map[dandelion.SourceID]dandelion.PeerID{}
	for _, src := range s {
		peer, ok := m.GetStem(src)
		require.True(t, ok)
		before[src] = peer
	}

	droppedPeer := p[1] // originally occupies slot 1
	remaining := append([]dandelion.PeerID{}, p[:1]...)
	remaining = append(remaining, p[2:]...)

	changed := m.Update(remaining)
	require.True(t, changed)
	require.Equal(t, 3, m.Size())

	movedSources := 0
	for _, src := range s {
		peer, ok := m.GetStem(src)
		require.True(t, ok)
		require.NotEqual(t, droppedPeer, peer, "dropped peer must never be returned again")
		if before[src] == droppedPeer {
			movedSources++
			require.NotEqual(t, before[src], peer)
		} else {
			require.Equal(t, before[src], peer, "unaffected source must resolve to the same peer")
		}
	}
	require.Equal(t, 3, movedSources)

	// A second identical update is a no-op.
	require.False(t, m.Update(remaining))
}

// Scenario 6: drop all peers, then restore with a disjoint set of 30.
func TestUpdateDropAllThenRestoreDisjoint(t *testing.T) {
	p := peers(6)
	m := newMap(3, p)
	s := sources(9)
	for _, src := range s {
		_, ok := m.GetStem(src)
		require.True(t, ok)
	}

	require.True(t, m.Update(nil))
	require.Equal(t, 0, m.Size())
	for _, src := range s {
		_, ok := m.GetStem(src)
		require.False(t, ok, "bound source must see a hole once its peer is dropped")
	}

	fresh := peers(36)[6:] // 30 peers disjoint from the original 6
	require.True(t, m.Update(fresh))
	require.Equal(t, 3, m.Size())

	counts := map[dandelion.PeerID]int{}
	for _, src := range s {
		peer, ok := m.GetStem(src)
		require.True(t, ok)
		counts[peer]++
	}
	require.Len(t, counts, 3)
	for peer, c := range counts {
		require.Equalf(t, 3, c, "peer %v bound to %d sources, want 3", peer, c)
	}

	// Stability across a further no-op update.
	snapshot := map[dandelion.SourceID]dandelion.PeerID{}
	for _, src := range s {
		peer, _ := m.GetStem(src)
		snapshot[src] = peer
	}
	require.False(t, m.Update(fresh))
	for _, src := range s {
		peer, _ := m.GetStem(src)
		require.Equal(t, snapshot[src], peer)
	}
}

func TestUpdateNeverSteals(t *testing.T) {
	p := peers(3)
	m := newMap(3, p)
	// available grows but keeps every existing peer: nothing should move.
	grown := append(append([]dandelion.PeerID{}, p...), peers(5)[3:]...)
	require.False(t, m.Update(grown))

	var seen []dandelion.PeerID
	err := m.ForEach(func(peer dandelion.PeerID) er.R { seen = append(seen, peer); return nil })
	require.Nil(t, err)
	require.ElementsMatch(t, p, seen)
}

func TestIterationDistinctAndBoundedBySize(t *testing.T) {
	p := peers(6)
	m := newMap(3, p)

	var got []dandelion.PeerID
	err := m.ForEach(func(peer dandelion.PeerID) er.R {
		got = append(got, peer)
		return nil
	})
	require.Nil(t, err)
	require.Len(t, got, m.Size())
	require.LessOrEqual(t, m.Size(), 3)

	seen := map[dandelion.PeerID]bool{}
	for _, peer := range got {
		require.False(t, seen[peer], "iteration must yield distinct peers")
		require.False(t, peer.IsZero(), "iteration must never yield the nil peer")
		seen[peer] = true
	}
}

func TestCloneIteratesIdentically(t *testing.T) {
	p := peers(6)
	m := newMap(3, p)
	for _, src := range sources(9) {
		m.GetStem(src)
	}

	clone := m.Clone()
	var orig, cloned []dandelion.PeerID
	m.ForEach(func(peer dandelion.PeerID) er.R { orig = append(orig, peer); return nil })
	clone.ForEach(func(peer dandelion.PeerID) er.R { cloned = append(cloned, peer); return nil })
	require.Equal(t, orig, cloned)

	// Mutating the clone must not affect the original.
	require.True(t, clone.Update(nil))
	require.Equal(t, 3, m.Size())
	require.Equal(t, 0, clone.Size())
}

// The map type must work equally well for a second, unrelated pair of
// concrete type parameters -- this is a generic container, not one
// hand-specialized for PeerID/SourceID.
func TestMapIsGenericOverTypeParameters(t *testing.T) {
	cmp := func(a, b *int) int {
		switch {
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		default:
			return 0
		}
	}
	avail := []string{"peerA", "peerB", "peerC", "peerD"}
	m := dandelion.New[string, int](2, avail, cmp)
	require.Equal(t, 2, m.Size())

	a, ok := m.GetStem(1)
	require.True(t, ok)
	b, ok := m.GetStem(1)
	require.True(t, ok)
	require.Equal(t, a, b)
}
