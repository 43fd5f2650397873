// Package ipv4 implements parsing and formatting of dotted-decimal IPv4
// addresses as used by the URI host grammar.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
package ipv4

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Addr [4]byte

func ParseAddr(s string) (Addr, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return Addr{}, errors.New("octets are not properly seperated")
	}

	var addr Addr
	for idx, octet := range octets {
		n, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return Addr{}, errors.Wrap(err, "failed to parse a part into octet")
		}

		if octet[0] == '0' && !(n == 0 && len(octet) == 1) {
			// '00', '01'
			return Addr{}, errors.New("leading zero is not allowed in octet")
		}
		addr[idx] = byte(n)
	}

	return addr, nil
}

func (a Addr) ToUint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

func (a Addr) String() string {
	b := new(strings.Builder)
	for idx, octet := range a {
		if idx > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(octet), 10))
	}
	return b.String()
}
