package netaddr

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/pkt-cash/dandelion/btcutil/er"
	"github.com/pkt-cash/dandelion/pktlog/log"
)

// This file implements the self-describing keyed serialization form
// (§4.1/§6): a JSON object with a section named after the address kind
// ("tor" or "i2p"), itself holding "host" and "port" fields. It uses
// json-iterator/go as the node's drop-in encoding/json replacement (see
// pktwallet/walletsetup.go and rpcclient/rawrequest.go for the same
// import).

type torWire struct {
	Host string `json:"host"`
	Port uint16 `json:"port"`
}

type torEnvelope struct {
	Tor torWire `json:"tor"`
}

// MarshalJSON implements json.Marshaler. The unknown sentinel marshals with
// its sentinel host string, like any other value.
func (a TorAddr) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(torEnvelope{Tor: torWire{Host: a.HostStr(), Port: a.port}})
}

// UnmarshalJSON implements json.Unmarshaler, sanitizing an over-long host
// into the unknown sentinel rather than storing it or raising (§4.1/§7).
func (a *TorAddr) UnmarshalJSON(data []byte) error {
	var env torEnvelope
	if err := jsoniter.Unmarshal(data, &env); err != nil {
		return err
	}
	host := env.Tor.Host
	if len(host) > torV3HostLen {
		log.Tracef("netaddr: sanitizing over-long tor host (%d bytes) to unknown sentinel", len(host))
		*a = Unknown()
		return nil
	}
	if host == torUnknownHost || host == "" {
		*a = Unknown()
		return nil
	}
	*a = TorAddr{host: host, port: env.Tor.Port}
	return nil
}

// MarshalKeyed renders a in the self-describing keyed wire form as an er.R
// operation, matching this module's error idiom.
func (a TorAddr) MarshalKeyed() ([]byte, er.R) {
	b, err := jsoniter.Marshal(a)
	return b, er.E(err)
}

// UnmarshalTorKeyed parses the self-describing keyed wire form.
func UnmarshalTorKeyed(data []byte) (TorAddr, er.R) {
	var a TorAddr
	err := jsoniter.Unmarshal(data, &a)
	return a, er.E(err)
}

type i2pWire struct {
	Host string `json:"host"`
	Port uint16 `json:"port"`
}

type i2pEnvelope struct {
	I2P i2pWire `json:"i2p"`
}

// MarshalJSON implements json.Marshaler. The unknown sentinel marshals with
// its sentinel host string, like any other value.
func (a I2PAddr) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(i2pEnvelope{I2P: i2pWire{Host: a.HostStr(), Port: a.port}})
}

// UnmarshalJSON implements json.Unmarshaler, sanitizing an over-long host
// into the unknown sentinel rather than storing it or raising (§4.1/§7).
func (a *I2PAddr) UnmarshalJSON(data []byte) error {
	var env i2pEnvelope
	if err := jsoniter.Unmarshal(data, &env); err != nil {
		return err
	}
	host := env.I2P.Host
	if len(host) > i2pHostLen {
		log.Tracef("netaddr: sanitizing over-long i2p host (%d bytes) to unknown sentinel", len(host))
		*a = UnknownI2P()
		return nil
	}
	if host == i2pUnknownHost || host == "" {
		*a = UnknownI2P()
		return nil
	}
	*a = I2PAddr{host: host, port: env.I2P.Port}
	return nil
}

// MarshalKeyed renders a in the self-describing keyed wire form as an er.R
// operation, matching this module's error idiom.
func (a I2PAddr) MarshalKeyed() ([]byte, er.R) {
	b, err := jsoniter.Marshal(a)
	return b, er.E(err)
}

// UnmarshalI2PKeyed parses the self-describing keyed wire form.
func UnmarshalI2PKeyed(data []byte) (I2PAddr, er.R) {
	var a I2PAddr
	err := jsoniter.Unmarshal(data, &a)
	return a, er.E(err)
}
