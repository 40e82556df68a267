package netaddr

import (
	"net"
	"strconv"

	"github.com/pkt-cash/dandelion/btcutil/er"
)

// Zone classifies which routing domain a NetworkAddress belongs to. The
// surrounding transport treats Tor and I2P destinations very differently
// from public clearnet ones (e.g. only routing transaction stems to peers
// in a compatible zone), so the zone is carried as a first-class tag
// rather than re-derived from the Type on every use.
type Zone int

const (
	// ZoneInvalid is reached only by a default-constructed or explicitly
	// unknown NetworkAddress.
	ZoneInvalid Zone = iota
	ZonePublic
	ZoneTor
	ZoneI2P
)

func (z Zone) String() string {
	switch z {
	case ZonePublic:
		return "public"
	case ZoneTor:
		return "tor"
	case ZoneI2P:
		return "i2p"
	default:
		return "invalid"
	}
}

// Type identifies which variant's payload a NetworkAddress carries.
type Type int

const (
	TypeInvalid Type = iota
	TypeIPv4
	TypeIPv6
	TypeTor
	TypeI2P
)

func (t Type) String() string {
	switch t {
	case TypeIPv4:
		return "ipv4"
	case TypeIPv6:
		return "ipv6"
	case TypeTor:
		return "tor"
	case TypeI2P:
		return "i2p"
	default:
		return "invalid"
	}
}

// NetworkAddress is a tagged union over {IPv4, IPv6, Tor, I2P}. The zero
// value is the invalid/unknown address: Zone() returns ZoneInvalid and
// Type() returns TypeInvalid.
type NetworkAddress struct {
	typ  Type
	zone Zone
	ip   net.IP
	port uint16
	tor  TorAddr
	i2p  I2PAddr
}

// NewIPv4NetworkAddress wraps a 4-byte (or 4-in-16) IP as a public NetworkAddress.
func NewIPv4NetworkAddress(ip net.IP, port uint16) (NetworkAddress, er.R) {
	v4 := ip.To4()
	if v4 == nil {
		return NetworkAddress{}, ErrUnsupportedAddress.Default()
	}
	return NetworkAddress{typ: TypeIPv4, zone: ZonePublic, ip: v4, port: port}, nil
}

// NewIPv6NetworkAddress wraps a 16-byte IP as a public NetworkAddress.
func NewIPv6NetworkAddress(ip net.IP, port uint16) (NetworkAddress, er.R) {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return NetworkAddress{}, ErrUnsupportedAddress.Default()
	}
	return NetworkAddress{typ: TypeIPv6, zone: ZonePublic, ip: v6, port: port}, nil
}

// NewTorNetworkAddress wraps a TorAddr as a NetworkAddress in the Tor zone.
func NewTorNetworkAddress(a TorAddr) NetworkAddress {
	return NetworkAddress{typ: TypeTor, zone: ZoneTor, tor: a}
}

// NewI2PNetworkAddress wraps an I2PAddr as a NetworkAddress in the I2P zone.
func NewI2PNetworkAddress(a I2PAddr) NetworkAddress {
	return NetworkAddress{typ: TypeI2P, zone: ZoneI2P, i2p: a}
}

// Type reports which variant's payload this address carries.
func (n NetworkAddress) Type() Type {
	return n.typ
}

// Zone reports the routing domain this address belongs to.
func (n NetworkAddress) Zone() Zone {
	return n.zone
}

// IsValid reports whether this address carries a real payload, i.e. is not
// the default-constructed / explicitly-unknown instance.
func (n NetworkAddress) IsValid() bool {
	return n.zone != ZoneInvalid
}

// IP returns the wrapped IP for IPv4/IPv6 variants, or nil otherwise.
func (n NetworkAddress) IP() net.IP {
	return n.ip
}

// Tor returns the wrapped TorAddr for the Tor variant, or the zero TorAddr
// otherwise.
func (n NetworkAddress) Tor() TorAddr {
	return n.tor
}

// I2P returns the wrapped I2PAddr for the I2P variant, or the zero I2PAddr
// otherwise.
func (n NetworkAddress) I2P() I2PAddr {
	return n.i2p
}

// Port returns the port of the wrapped variant.
func (n NetworkAddress) Port() uint16 {
	switch n.typ {
	case TypeTor:
		return n.tor.Port()
	case TypeI2P:
		return n.i2p.Port()
	default:
		return n.port
	}
}

// String renders the address the way it would appear in a textual endpoint.
func (n NetworkAddress) String() string {
	switch n.typ {
	case TypeTor:
		return n.tor.Str()
	case TypeI2P:
		return n.i2p.Str()
	case TypeIPv4, TypeIPv6:
		if n.port == 0 {
			return n.ip.String()
		}
		return net.JoinHostPort(n.ip.String(), strconv.FormatUint(uint64(n.port), 10))
	default:
		return "<invalid address>"
	}
}
