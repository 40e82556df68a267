package netaddr_test

import (
	"bytes"
	"testing"

	"github.com/pkt-cash/dandelion/netaddr"
)

const i2pHost = "abcdefghijklmnopqrstuvwxyz234567abcdefghijklmnopqrst.b32.i2p"

func TestMakeI2PAddrValid(t *testing.T) {
	a, err := netaddr.MakeI2PAddr(i2pHost, 4444)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := a.Str(), i2pHost+":4444"; got != want {
		t.Errorf("Str() = %q, want %q", got, want)
	}
	if !a.IsBlockable() {
		t.Error("expected IsBlockable() true")
	}
	if a.IsUnknown() {
		t.Error("expected IsUnknown() false")
	}
	if a.HostStr() != i2pHost {
		t.Errorf("HostStr() = %q, want %q", a.HostStr(), i2pHost)
	}
}

func TestMakeI2PAddrInvalid(t *testing.T) {
	tests := []struct {
		name string
		host string
	}{
		{"bare suffix", ".b32.i2p"},
		{"too short", "short.b32.i2p"},
		{"bad char", "0bcdefghijklmnopqrstuvwxyz234567abcdefghijklmnopqrst.b32.i2p"},
		{"wrong suffix", i2pHost[:len(i2pHost)-8] + ".onion"},
	}
	for _, test := range tests {
		if _, err := netaddr.MakeI2PAddr(test.host, 0); err == nil {
			t.Errorf("%s: expected error, got none", test.name)
		} else if !netaddr.ErrInvalidI2PAddress.Is(err) {
			t.Errorf("%s: expected ErrInvalidI2PAddress, got %v", test.name, err)
		}
	}
}

func TestMakeI2PAddrInvalidPort(t *testing.T) {
	if _, err := netaddr.MakeI2PAddr(i2pHost+":70000", 0); err == nil {
		t.Fatal("expected error, got none")
	} else if !netaddr.ErrInvalidPort.Is(err) {
		t.Errorf("expected ErrInvalidPort, got %v", err)
	}
}

func TestI2PAddrUnknown(t *testing.T) {
	var zero netaddr.I2PAddr
	u := netaddr.UnknownI2P()

	if !zero.IsUnknown() || !u.IsUnknown() {
		t.Error("expected IsUnknown() true for zero value and UnknownI2P()")
	}
	if !zero.Equal(u) {
		t.Error("zero value must equal UnknownI2P()")
	}
	if zero.IsBlockable() {
		t.Error("unknown address must not be blockable")
	}
	if zero.IsLocal() || zero.IsLoopback() {
		t.Error("i2p addresses are never local/loopback")
	}
}

func TestI2PAddrComparison(t *testing.T) {
	a, _ := netaddr.MakeI2PAddr(i2pHost, 10)
	b, _ := netaddr.MakeI2PAddr(i2pHost, 20)
	u := netaddr.UnknownI2P()

	if !a.IsSameHost(b) {
		t.Error("same host, different port must report IsSameHost true")
	}
	if a.Equal(b) {
		t.Error("different port must not be Equal")
	}
	if !u.Less(a) {
		t.Error("unknown sentinel must sort before any valid host")
	}
}

func TestI2PAddrArchivalRoundTrip(t *testing.T) {
	tests := []netaddr.I2PAddr{
		mustI2P(t, i2pHost, 4444),
		netaddr.UnknownI2P(),
	}
	for _, want := range tests {
		var buf bytes.Buffer
		if err := want.Encode(&buf, 0); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		var got netaddr.I2PAddr
		if err := got.Decode(&buf, 0); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip mismatch: got %v want %v", got, want)
		}
	}
}

func TestI2PAddrArchivalSanitizesOverlongHost(t *testing.T) {
	want := mustI2P(t, i2pHost, 4444)
	var buf bytes.Buffer
	if err := want.Encode(&buf, 0); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw := buf.Bytes()
	raw[3]++
	raw = append(raw, 'x')

	var got netaddr.I2PAddr
	if err := got.Decode(bytes.NewReader(raw), 0); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.IsUnknown() {
		t.Errorf("expected sanitized unknown sentinel, got %v", got)
	}
}

func TestI2PAddrKeyedRoundTrip(t *testing.T) {
	tests := []netaddr.I2PAddr{
		mustI2P(t, i2pHost, 4444),
		netaddr.UnknownI2P(),
	}
	for _, want := range tests {
		data, err := want.MarshalKeyed()
		if err != nil {
			t.Fatalf("MarshalKeyed: %v", err)
		}
		got, err := netaddr.UnmarshalI2PKeyed(data)
		if err != nil {
			t.Fatalf("UnmarshalI2PKeyed: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip mismatch: got %v want %v", got, want)
		}
	}
}

func mustI2P(t *testing.T, host string, port uint16) netaddr.I2PAddr {
	t.Helper()
	a, err := netaddr.MakeI2PAddr(host, port)
	if err != nil {
		t.Fatalf("MakeI2PAddr(%q): %v", host, err)
	}
	return a
}
