package dandelion

import (
	"bytes"
	"encoding/hex"
)

// PeerID identifies an outbound connection eligible to occupy a stem slot.
// The zero PeerID is reserved for "no peer" and must never be assigned to a
// live slot.
type PeerID [16]byte

// String renders p as lowercase hex.
func (p PeerID) String() string {
	return hex.EncodeToString(p[:])
}

// IsZero reports whether p is the reserved zero identifier.
func (p PeerID) IsZero() bool {
	return p == PeerID{}
}

// SourceID identifies the origin of an inbound transaction that the stem
// router binds to a slot via Map.GetStem.
type SourceID [16]byte

// String renders s as lowercase hex.
func (s SourceID) String() string {
	return hex.EncodeToString(s[:])
}

// CompareSourceID is a total order over SourceID suitable for use as the
// Map sources-table comparator; the order itself carries no meaning beyond
// consistency.
func CompareSourceID(a, b *SourceID) int {
	return bytes.Compare(a[:], b[:])
}
