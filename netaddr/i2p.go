package netaddr

import (
	"strconv"
	"strings"

	"github.com/pkt-cash/dandelion/btcutil/er"
)

const (
	i2pHostLen  = 60 // 52 base32 chars + ".b32.i2p"
	i2pLabelLen = 52
	i2pSuffix   = ".b32.i2p"

	// i2pUnknownHost is the sentinel host string an I2PAddr carries when
	// no valid b32 host is known. It is returned verbatim by HostStr,
	// never an empty string.
	i2pUnknownHost = "<unknown i2p host>"
)

// I2PAddr is an I2P b32.i2p address plus an optional port. The zero value
// is the unknown sentinel (equal to UnknownI2P()). I2PAddr performs no I2P
// cryptography: it validates shape and alphabet only.
type I2PAddr struct {
	host    string
	port    uint16
	unknown bool
}

// UnknownI2P returns the distinguished I2PAddr representing "no valid b32
// host present".
func UnknownI2P() I2PAddr {
	return I2PAddr{host: i2pUnknownHost, unknown: true}
}

// MakeI2PAddr validates host (optionally suffixed with ":port") and
// constructs an I2PAddr. If host carries no ":port" suffix, defaultPort is
// used. The operation is total: every input yields either a value or one
// of ErrInvalidPort / ErrInvalidI2PAddress.
func MakeI2PAddr(host string, defaultPort uint16) (I2PAddr, er.R) {
	hostPart, port, err := splitHostPort(host, defaultPort)
	if err != nil {
		return I2PAddr{}, err
	}
	if !validI2PHost(hostPart) {
		return I2PAddr{}, ErrInvalidI2PAddress.Default()
	}
	return I2PAddr{host: hostPart, port: port}, nil
}

func validI2PHost(h string) bool {
	return len(h) == i2pHostLen && strings.HasSuffix(h, i2pSuffix) && isBase32Host(h[:i2pLabelLen])
}

// IsUnknown reports whether a carries no valid b32 host.
func (a I2PAddr) IsUnknown() bool {
	return a.unknown || a.host == ""
}

// IsBlockable reports whether a is a validly parsed, nameable address: false
// for the unknown sentinel, true otherwise.
func (a I2PAddr) IsBlockable() bool {
	return !a.IsUnknown()
}

// HostStr returns the b32.i2p hostname, or the unknown sentinel string for
// an unknown address -- never an empty string.
func (a I2PAddr) HostStr() string {
	if a.IsUnknown() {
		return i2pUnknownHost
	}
	return a.host
}

// Port returns the stored port; 0 means "unspecified".
func (a I2PAddr) Port() uint16 {
	return a.port
}

// IsLocal is always false: no I2P address is ever a local-network address.
func (I2PAddr) IsLocal() bool {
	return false
}

// IsLoopback is always false: no I2P address is ever a loopback address.
func (I2PAddr) IsLoopback() bool {
	return false
}

// Str renders the address the way it would appear in a textual endpoint:
// "host" when the port is 0, "host:port" otherwise. The unknown sentinel
// renders as itself regardless of port.
func (a I2PAddr) Str() string {
	if a.IsUnknown() {
		return i2pUnknownHost
	}
	if a.port == 0 {
		return a.host
	}
	return a.host + ":" + strconv.FormatUint(uint64(a.port), 10)
}

// String implements fmt.Stringer.
func (a I2PAddr) String() string {
	return a.Str()
}

// Equal reports full value equality: same host and same port.
func (a I2PAddr) Equal(b I2PAddr) bool {
	return a.HostStr() == b.HostStr() && a.port == b.port
}

// IsSameHost reports host equality, ignoring port.
func (a I2PAddr) IsSameHost(b I2PAddr) bool {
	return a.HostStr() == b.HostStr()
}

// Compare imposes a total order: the unknown sentinel sorts before any valid
// b32 host, other hosts compare lexicographically, ties broken by port.
func (a I2PAddr) Compare(b I2PAddr) int {
	if au, bu := a.IsUnknown(), b.IsUnknown(); au != bu {
		if au {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.HostStr(), b.HostStr()); c != 0 {
		return c
	}
	switch {
	case a.port < b.port:
		return -1
	case a.port > b.port:
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts before b under Compare.
func (a I2PAddr) Less(b I2PAddr) bool {
	return a.Compare(b) < 0
}
