// Package dandelion implements the Dandelion++ stem-routing connection map:
// a stable, least-loaded mapping from inbound source identifiers to a
// fixed-size vector of outbound stem-peer slots, reconciled against peer
// churn without ever relocating a peer already occupying a slot.
//
// The map is a plain value manipulated by its owner; no operation is
// internally synchronized. Concurrent calls on the same Map are undefined,
// matching the single-threaded contract the surrounding transport is
// expected to hold behind its own lock.
package dandelion

import (
	"github.com/pkt-cash/dandelion/btcutil/er"
	"github.com/pkt-cash/dandelion/btcutil/util/tmap"
	"github.com/pkt-cash/dandelion/pktlog/log"
)

type slotEntry[P comparable] struct {
	peer    P
	present bool
	count   int
}

// Map holds N stem slots and the sources table binding each source to the
// slot it was assigned on first contact. P is the peer identifier type, S
// the source identifier type; both are caller-chosen, which is why the
// concrete PeerID/SourceID types in this package are a convenience rather
// than a requirement.
type Map[P comparable, S any] struct {
	slots   []slotEntry[P]
	sources *tmap.Map[S, int]
	cmp     func(a, b *S) int
}

// New constructs a Map targeting n stem slots. It fills min(n, len(available))
// of them with distinct peers drawn from available in the order given; any
// remaining slots start as holes. cmp totally orders S for the internal
// sources table and need not be meaningful, only consistent.
//
// available is assumed to already reflect the caller's chosen deterministic
// order (§9 design note): New does not sort it.
func New[P comparable, S any](n int, available []P, cmp func(a, b *S) int) *Map[P, S] {
	m := &Map[P, S]{
		slots:   make([]slotEntry[P], n),
		sources: tmap.New[S, int](cmp),
		cmp:     cmp,
	}
	fill := n
	if len(available) < fill {
		fill = len(available)
	}
	for i := 0; i < fill; i++ {
		m.slots[i] = slotEntry[P]{peer: available[i], present: true}
	}
	return m
}

// GetStem resolves source to its bound peer, binding it to the
// least-loaded live slot on first contact. It returns false when the map
// targets zero slots, when source's bound slot is currently a hole, or when
// source is new and no slot is live.
func (m *Map[P, S]) GetStem(source S) (P, bool) {
	var zero P
	if len(m.slots) == 0 {
		return zero, false
	}
	if idx, ok := tmap.Get(m.sources, &source); ok {
		s := m.slots[idx]
		if !s.present {
			return zero, false
		}
		return s.peer, true
	}
	idx, ok := m.leastLoadedSlot()
	if !ok {
		return zero, false
	}
	tmap.Insert(m.sources, &source, &idx)
	m.slots[idx].count++
	return m.slots[idx].peer, true
}

// leastLoadedSlot returns the index of the live slot with the fewest bound
// sources, ties broken by lowest index -- a plain scan, not a lookup into
// an unordered container, so the tie-break is deterministic (§9).
func (m *Map[P, S]) leastLoadedSlot() (int, bool) {
	best := -1
	for i := range m.slots {
		if !m.slots[i].present {
			continue
		}
		if best == -1 || m.slots[i].count < m.slots[best].count {
			best = i
		}
	}
	return best, best != -1
}

// Update reconciles the slot vector against a fresh available set, in
// order: drop slots whose peer left, then fill every resulting or
// pre-existing hole from peers in available that aren't already occupying
// another slot. Because Update never shrinks or grows the slot vector
// itself (it is sized to N at construction and holes occupy the
// difference), filling a hole created just now and filling one that has
// persisted since construction are the same mechanic -- there is no
// separate "grow" step to implement.
//
// Holes are filled in slot-index order with the unassigned peers taken in
// the order available lists them; Update does not sort available.
//
// It returns true iff some slot's peer changed; a peer already occupying a
// slot is never moved to another slot.
func (m *Map[P, S]) Update(available []P) bool {
	if len(m.slots) == 0 {
		return false
	}

	availSet := make(map[P]bool, len(available))
	for _, p := range available {
		availSet[p] = true
	}

	assigned := make(map[P]bool, len(m.slots))
	for i := range m.slots {
		if m.slots[i].present {
			assigned[m.slots[i].peer] = true
		}
	}

	changed := false
	var zero P
	for i := range m.slots {
		if m.slots[i].present && !availSet[m.slots[i].peer] {
			log.Debugf("dandelion: slot %d peer departed, marking hole", i)
			delete(assigned, m.slots[i].peer)
			m.slots[i].peer = zero
			m.slots[i].present = false
			changed = true
		}
	}

	var pool []P
	for _, p := range available {
		if !assigned[p] {
			pool = append(pool, p)
			assigned[p] = true
		}
	}

	poolIdx := 0
	for i := range m.slots {
		if m.slots[i].present || poolIdx >= len(pool) {
			continue
		}
		log.Debugf("dandelion: slot %d hole filled", i)
		m.slots[i].peer = pool[poolIdx]
		m.slots[i].present = true
		poolIdx++
		changed = true
	}

	return changed
}

// Clone returns an independent copy with identical slot contents and
// sources-table contents.
func (m *Map[P, S]) Clone() *Map[P, S] {
	c := &Map[P, S]{
		slots:   make([]slotEntry[P], len(m.slots)),
		sources: tmap.New[S, int](m.cmp),
		cmp:     m.cmp,
	}
	copy(c.slots, m.slots)
	_ = tmap.ForEach(m.sources, func(k *S, v *int) er.R {
		kk, vv := *k, *v
		tmap.Insert(c.sources, &kk, &vv)
		return nil
	})
	return c
}

// Size returns the number of non-hole (live) slots.
func (m *Map[P, S]) Size() int {
	n := 0
	for i := range m.slots {
		if m.slots[i].present {
			n++
		}
	}
	return n
}

// ForEach iterates the non-hole slot values in slot-index order. Returning
// er.LoopBreak from f stops iteration early without propagating an error.
func (m *Map[P, S]) ForEach(f func(peer P) er.R) er.R {
	for i := range m.slots {
		if !m.slots[i].present {
			continue
		}
		if err := f(m.slots[i].peer); err != nil {
			if er.IsLoopBreak(err) {
				return nil
			}
			return err
		}
	}
	return nil
}
