package netaddr_test

import (
	"net"
	"testing"

	"github.com/pkt-cash/dandelion/netaddr"
)

func TestNewIPv4NetworkAddress(t *testing.T) {
	ip := net.ParseIP("203.0.113.7")
	na, err := netaddr.NewIPv4NetworkAddress(ip, 8333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if na.Type() != netaddr.TypeIPv4 {
		t.Errorf("Type() = %v, want TypeIPv4", na.Type())
	}
	if na.Zone() != netaddr.ZonePublic {
		t.Errorf("Zone() = %v, want ZonePublic", na.Zone())
	}
	if !na.IsValid() {
		t.Error("expected IsValid() true")
	}
	if got, want := na.String(), "203.0.113.7:8333"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewIPv6NetworkAddress(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	na, err := netaddr.NewIPv6NetworkAddress(ip, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if na.Type() != netaddr.TypeIPv6 {
		t.Errorf("Type() = %v, want TypeIPv6", na.Type())
	}
	if na.Zone() != netaddr.ZonePublic {
		t.Errorf("Zone() = %v, want ZonePublic", na.Zone())
	}
}

func TestNewIPv4NetworkAddressRejectsIPv6(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	if _, err := netaddr.NewIPv4NetworkAddress(ip, 0); err == nil {
		t.Error("expected error constructing IPv4 address from an IPv6 literal")
	}
}

func TestNewTorNetworkAddress(t *testing.T) {
	tor, err := netaddr.MakeTorAddr(v3Host, 9050)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	na := netaddr.NewTorNetworkAddress(tor)
	if na.Type() != netaddr.TypeTor {
		t.Errorf("Type() = %v, want TypeTor", na.Type())
	}
	if na.Zone() != netaddr.ZoneTor {
		t.Errorf("Zone() = %v, want ZoneTor", na.Zone())
	}
	if na.Port() != 9050 {
		t.Errorf("Port() = %d, want 9050", na.Port())
	}
	if got, want := na.String(), tor.Str(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewI2PNetworkAddress(t *testing.T) {
	i2p, err := netaddr.MakeI2PAddr(i2pHost, 4444)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	na := netaddr.NewI2PNetworkAddress(i2p)
	if na.Type() != netaddr.TypeI2P {
		t.Errorf("Type() = %v, want TypeI2P", na.Type())
	}
	if na.Zone() != netaddr.ZoneI2P {
		t.Errorf("Zone() = %v, want ZoneI2P", na.Zone())
	}
}

func TestZeroNetworkAddressIsInvalid(t *testing.T) {
	var na netaddr.NetworkAddress
	if na.IsValid() {
		t.Error("zero value NetworkAddress must be invalid")
	}
	if na.Zone() != netaddr.ZoneInvalid {
		t.Errorf("Zone() = %v, want ZoneInvalid", na.Zone())
	}
	if na.Type() != netaddr.TypeInvalid {
		t.Errorf("Type() = %v, want TypeInvalid", na.Type())
	}
}

func TestZoneAndTypeString(t *testing.T) {
	zones := map[netaddr.Zone]string{
		netaddr.ZoneInvalid: "invalid",
		netaddr.ZonePublic:  "public",
		netaddr.ZoneTor:     "tor",
		netaddr.ZoneI2P:     "i2p",
	}
	for z, want := range zones {
		if got := z.String(); got != want {
			t.Errorf("Zone(%d).String() = %q, want %q", z, got, want)
		}
	}

	types := map[netaddr.Type]string{
		netaddr.TypeInvalid: "invalid",
		netaddr.TypeIPv4:    "ipv4",
		netaddr.TypeIPv6:    "ipv6",
		netaddr.TypeTor:     "tor",
		netaddr.TypeI2P:     "i2p",
	}
	for ty, want := range types {
		if got := ty.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", ty, got, want)
		}
	}
}
