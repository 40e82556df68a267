package netaddr

import (
	"strconv"
	"strings"

	"github.com/pkt-cash/dandelion/btcutil/er"
)

const (
	torV2HostLen  = 22 // 16 base32 chars + ".onion"
	torV3HostLen  = 62 // 56 base32 chars + ".onion"
	torV2LabelLen = 16
	torV3LabelLen = 56
	torSuffix     = ".onion"

	// torUnknownHost is the sentinel host string a TorAddr carries when
	// no valid onion host is known. It is returned verbatim by HostStr,
	// never an empty string.
	torUnknownHost = "<unknown tor host>"
)

// TorAddr is a Tor v2 or v3 onion address plus an optional port. The zero
// value is the unknown sentinel (equal to Unknown()). TorAddr performs no
// Tor cryptography: it validates shape and alphabet only, never decodes
// the host to recover or verify a public key.
type TorAddr struct {
	host    string
	port    uint16
	unknown bool
}

// Unknown returns the distinguished TorAddr representing "no valid onion
// host present".
func Unknown() TorAddr {
	return TorAddr{host: torUnknownHost, unknown: true}
}

// MakeTorAddr validates host (optionally suffixed with ":port") and
// constructs a TorAddr. If host carries no ":port" suffix, defaultPort is
// used. The operation is total: every input yields either a value or one
// of ErrInvalidPort / ErrInvalidTorAddress.
func MakeTorAddr(host string, defaultPort uint16) (TorAddr, er.R) {
	hostPart, port, err := splitHostPort(host, defaultPort)
	if err != nil {
		return TorAddr{}, err
	}
	if !validTorHost(hostPart) {
		return TorAddr{}, ErrInvalidTorAddress.Default()
	}
	return TorAddr{host: hostPart, port: port}, nil
}

func validTorHost(h string) bool {
	switch len(h) {
	case torV2HostLen:
		return strings.HasSuffix(h, torSuffix) && isBase32Host(h[:torV2LabelLen])
	case torV3HostLen:
		return strings.HasSuffix(h, torSuffix) && isBase32Host(h[:torV3LabelLen])
	default:
		return false
	}
}

// splitHostPort splits s at the last ':'. If no colon is present, defaultPort
// is used for the port. The decimal port suffix, when present, must lie in
// [0, 65535].
func splitHostPort(s string, defaultPort uint16) (string, uint16, er.R) {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return s, defaultPort, nil
	}
	hostPart := s[:idx]
	portPart := s[idx+1:]
	n, errr := strconv.ParseUint(portPart, 10, 16)
	if errr != nil {
		return "", 0, ErrInvalidPort.Default()
	}
	return hostPart, uint16(n), nil
}

// IsUnknown reports whether a carries no valid onion host.
func (a TorAddr) IsUnknown() bool {
	return a.unknown || a.host == ""
}

// IsBlockable reports whether a is a validly parsed, nameable address: false
// for the unknown sentinel, true otherwise.
func (a TorAddr) IsBlockable() bool {
	return !a.IsUnknown()
}

// HostStr returns the onion hostname, or the unknown sentinel string for an
// unknown address -- never an empty string.
func (a TorAddr) HostStr() string {
	if a.IsUnknown() {
		return torUnknownHost
	}
	return a.host
}

// Port returns the stored port; 0 means "unspecified".
func (a TorAddr) Port() uint16 {
	return a.port
}

// IsLocal is always false: no onion address is ever a local-network address.
func (TorAddr) IsLocal() bool {
	return false
}

// IsLoopback is always false: no onion address is ever a loopback address.
func (TorAddr) IsLoopback() bool {
	return false
}

// Str renders the address the way it would appear in a textual endpoint:
// "host" when the port is 0, "host:port" otherwise. The unknown sentinel
// renders as itself regardless of port.
func (a TorAddr) Str() string {
	if a.IsUnknown() {
		return torUnknownHost
	}
	if a.port == 0 {
		return a.host
	}
	return a.host + ":" + strconv.FormatUint(uint64(a.port), 10)
}

// String implements fmt.Stringer.
func (a TorAddr) String() string {
	return a.Str()
}

// Equal reports full value equality: same host and same port.
func (a TorAddr) Equal(b TorAddr) bool {
	return a.HostStr() == b.HostStr() && a.port == b.port
}

// IsSameHost reports host equality, ignoring port.
func (a TorAddr) IsSameHost(b TorAddr) bool {
	return a.HostStr() == b.HostStr()
}

// Compare imposes a total order: the unknown sentinel sorts before any valid
// onion host, other hosts compare lexicographically, ties broken by port.
func (a TorAddr) Compare(b TorAddr) int {
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
func (a TorAddr) Less(b TorAddr) bool {
	return a.Compare(b) < 0
}
