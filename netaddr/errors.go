// Package netaddr implements the anonymity-network address value types
// (Tor v2/v3 onion addresses and I2P b32 addresses) and the small
// dispatching parser that classifies a textual endpoint into one of them,
// an IPv4 address, or a categorized error.
package netaddr

import (
	"github.com/pkt-cash/dandelion/btcutil/er"
)

// Err is the error namespace for the parsing faults this package reports.
// Construction and endpoint parsing are total: they return either a value or
// one of these codes, never a panic for caller-supplied input. The decoders
// (Decode, UnmarshalJSON and the keyed helpers) instead pass through the
// read or JSON syntax error of the underlying reader or decoder.
var Err = er.NewErrorType("netaddr.Err")

var (
	// ErrInvalidPort is returned when a ":port" suffix fails to parse as
	// a decimal integer in [0, 65535].
	ErrInvalidPort = Err.CodeWithDetail("ErrInvalidPort", "invalid port")

	// ErrInvalidTorAddress is returned when a host was identified as a
	// candidate Tor onion address but its length or character set does
	// not match either the v2 or v3 form.
	ErrInvalidTorAddress = Err.CodeWithDetail("ErrInvalidTorAddress", "invalid tor address")

	// ErrInvalidI2PAddress is returned when a host was identified as a
	// candidate I2P b32 address but its length or character set is
	// invalid.
	ErrInvalidI2PAddress = Err.CodeWithDetail("ErrInvalidI2PAddress", "invalid i2p address")

	// ErrUnsupportedAddress is returned by the endpoint parser when the
	// text cannot be classified as any known address variant.
	ErrUnsupportedAddress = Err.CodeWithDetail("ErrUnsupportedAddress", "unsupported address")
)
