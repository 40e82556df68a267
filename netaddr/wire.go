package netaddr

import (
	"encoding/binary"
	"io"

	"github.com/pkt-cash/dandelion/btcutil/er"
	"github.com/pkt-cash/dandelion/pktlog/log"
)

// This file implements the binary archival serialization form (§4.1/§6):
// a one-byte version tag, a uint16 port, and a length-prefixed host. It
// follows the same Encode(w, pver)/Decode(r, pver) shape the surrounding
// node uses for its wire.Message implementations (see wire.MsgCFilter's
// BtcEncode/BtcDecode), with pver reserved for a future wire-format bump
// the way the node's own message codecs carry it.

const archivalVersion uint8 = 1

func writeUint8(w io.Writer, v uint8) er.R {
	if _, err := w.Write([]byte{v}); err != nil {
		return er.E(err)
	}
	return nil
}

func readUint8(r io.Reader, v *uint8) er.R {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return er.E(err)
	}
	*v = buf[0]
	return nil
}

func writeUint16(w io.Writer, v uint16) er.R {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return er.E(err)
	}
	return nil
}

func readUint16(r io.Reader, v *uint16) er.R {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return er.E(err)
	}
	*v = binary.BigEndian.Uint16(buf[:])
	return nil
}

func writeHost(w io.Writer, host string) er.R {
	if err := writeUint8(w, uint8(len(host))); err != nil {
		return err
	}
	if len(host) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, host); err != nil {
		return er.E(err)
	}
	return nil
}

func readHost(r io.Reader) (string, er.R) {
	var n uint8
	if err := readUint8(r, &n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", er.E(err)
	}
	return string(buf), nil
}

// Encode writes the archival form of a. pver is reserved for future format
// revisions and is currently unused.
func (a TorAddr) Encode(w io.Writer, pver uint32) er.R {
	if err := writeUint8(w, archivalVersion); err != nil {
		return err
	}
	if err := writeUint16(w, a.port); err != nil {
		return err
	}
	return writeHost(w, a.HostStr())
}

// Decode reads the archival form written by Encode into a, sanitizing an
// over-long host into the unknown sentinel rather than storing it or
// raising (§4.1/§7). A short/truncated reader is reported as an er.R, never
// a panic.
func (a *TorAddr) Decode(r io.Reader, pver uint32) er.R {
	var version uint8
	if err := readUint8(r, &version); err != nil {
		return err
	}
	var port uint16
	if err := readUint16(r, &port); err != nil {
		return err
	}
	host, err := readHost(r)
	if err != nil {
		return err
	}
	if len(host) > torV3HostLen {
		log.Tracef("netaddr: sanitizing over-long tor host (%d bytes) to unknown sentinel", len(host))
		*a = Unknown()
		return nil
	}
	if host == torUnknownHost || host == "" {
		*a = Unknown()
		return nil
	}
	*a = TorAddr{host: host, port: port}
	return nil
}

// Encode writes the archival form of a. pver is reserved for future format
// revisions and is currently unused.
func (a I2PAddr) Encode(w io.Writer, pver uint32) er.R {
	if err := writeUint8(w, archivalVersion); err != nil {
		return err
	}
	if err := writeUint16(w, a.port); err != nil {
		return err
	}
	return writeHost(w, a.HostStr())
}

// Decode reads the archival form written by Encode into a, sanitizing an
// over-long host into the unknown sentinel rather than storing it or
// raising (§4.1/§7). A short/truncated reader is reported as an er.R, never
// a panic.
func (a *I2PAddr) Decode(r io.Reader, pver uint32) er.R {
	var version uint8
	if err := readUint8(r, &version); err != nil {
		return err
	}
	var port uint16
	if err := readUint16(r, &port); err != nil {
		return err
	}
	host, err := readHost(r)
	if err != nil {
		return err
	}
	if len(host) > i2pHostLen {
		log.Tracef("netaddr: sanitizing over-long i2p host (%d bytes) to unknown sentinel", len(host))
		*a = UnknownI2P()
		return nil
	}
	if host == i2pUnknownHost || host == "" {
		*a = UnknownI2P()
		return nil
	}
	*a = I2PAddr{host: host, port: port}
	return nil
}
