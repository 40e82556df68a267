package netaddr

import (
	"net"
	"strconv"
	"strings"

	"github.com/pkt-cash/dandelion/btcutil/er"
)

// GetNetworkAddress classifies a textual endpoint of the form
// "host[:port]" and returns the corresponding NetworkAddress, or one of
// ErrUnsupportedAddress / ErrInvalidTorAddress / ErrInvalidI2PAddress /
// ErrInvalidPort. defaultPort is used when text carries no ":port" suffix.
//
// Dispatch order: a host ending in ".onion" is routed to the Tor
// constructor, ".b32.i2p" to the I2P constructor, and a dotted-quad IPv4
// host to the IPv4 constructor; anything else is ErrUnsupportedAddress.
// Classification looks only at the host portion (the text before a
// trailing ":port", if any) -- a malformed port on an otherwise-valid Tor
// or I2P host still surfaces as ErrInvalidPort, not as the variant-specific
// invalid-address error, because port syntax is a concern shared by every
// variant.
func GetNetworkAddress(text string, defaultPort uint16) (NetworkAddress, er.R) {
	host := hostOnly(text)

	switch {
	case strings.HasSuffix(host, torSuffix):
		t, err := MakeTorAddr(text, defaultPort)
		if err != nil {
			return NetworkAddress{}, err
		}
		return NewTorNetworkAddress(t), nil

	case strings.HasSuffix(host, i2pSuffix):
		a, err := MakeI2PAddr(text, defaultPort)
		if err != nil {
			return NetworkAddress{}, err
		}
		return NewI2PNetworkAddress(a), nil

	default:
		ip, port, matched, err := parseIPv4(text, defaultPort)
		if err != nil {
			return NetworkAddress{}, err
		}
		if !matched {
			return NetworkAddress{}, ErrUnsupportedAddress.Default()
		}
		na, err := NewIPv4NetworkAddress(ip, port)
		if err != nil {
			return NetworkAddress{}, ErrUnsupportedAddress.Default()
		}
		return na, nil
	}
}

// hostOnly strips a trailing ":suffix" without validating it, for the sole
// purpose of classifying which variant a textual endpoint names. The real
// port parse (and its error reporting) happens in the variant constructor.
func hostOnly(s string) string {
	if idx := strings.LastIndexByte(s, ':'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// parseIPv4 recognizes a strict dotted-quad "d.d.d.d" host, each d in
// [0, 255], optionally followed by ":port". matched is false (and err nil)
// when host does not have the dotted-quad shape at all, so the caller can
// fall through to ErrUnsupportedAddress; once the shape matches, a bad
// port suffix is reported as ErrInvalidPort.
func parseIPv4(text string, defaultPort uint16) (ip net.IP, port uint16, matched bool, err er.R) {
	host := hostOnly(text)
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return nil, 0, false, nil
	}
	b := make(net.IP, 4)
	for i, o := range octets {
		if len(o) == 0 || len(o) > 3 {
			return nil, 0, false, nil
		}
		for _, c := range o {
			if c < '0' || c > '9' {
				return nil, 0, false, nil
			}
		}
		n, convErr := strconv.ParseUint(o, 10, 16)
		if convErr != nil || n > 255 {
			return nil, 0, false, nil
		}
		b[i] = byte(n)
	}
	p := defaultPort
	if idx := strings.LastIndexByte(text, ':'); idx >= 0 {
		n, convErr := strconv.ParseUint(text[idx+1:], 10, 16)
		if convErr != nil {
			return nil, 0, true, ErrInvalidPort.Default()
		}
		p = uint16(n)
	}
	return b, p, true, nil
}
