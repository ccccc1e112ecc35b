package simplenet

// IP is an IPv4 address in its 4-byte form, ready for a SockaddrInet4.
type IP []byte

const (
	IPv4len = 4
	big     = 0xFFFFFF
)

// ParseIPv4 parses a dotted-quad address like "127.0.0.1". It returns
// nil on anything else.
func ParseIPv4(s string) IP {
	var p [IPv4len]byte
	for i := 0; i < IPv4len; i++ {
		if len(s) == 0 {
			return nil
		}

		if i > 0 {
			if s[0] != '.' {
				return nil
			}
			s = s[1:]
		}

		n, c, ok := dtoi(s)
		if !ok || n > 0xFF {
			return nil
		}

		s = s[c:]
		p[i] = byte(n)
	}

	if len(s) != 0 {
		return nil
	}
	return IP(p[:])
}

func dtoi(s string) (n int, i int, ok bool) {
	n = 0
	for i = 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n >= big {
			return big, i, false
		}
	}
	if i == 0 {
		return 0, 0, false
	}
	return n, i, true
}
