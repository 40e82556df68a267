package netaddr

// isBase32Host reports whether s consists entirely of characters from the
// restricted alphabet [a-z2-7] used by onion and b32.i2p hostnames. Unlike
// encoding/base32 this does not decode anything -- the spec treats these
// hosts as opaque validated strings, never as bytes to recover a public
// key from (no Tor/I2P cryptography is performed anywhere in this module).
func isBase32Host(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '2' && c <= '7':
		default:
			return false
		}
	}
	return true
}
