// Package ipv6 implements parsing and formatting of textual IPv6 addresses
// as used by the URI host grammar (IP-literal form).
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc4291#section-2.2
//
// - https://datatracker.ietf.org/doc/html/rfc5952
package ipv6

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	ipv4 "http-grammar/ip/v4"
)

type Addr [16]byte

func ParseAddr(s string) (Addr, error) {
	before, after, found := strings.Cut(s, "::")
	var addr Addr

	if !found {
		// Two colons not found. parse the whole string.
		addrBytes, err := parseAddrFrag(before, true)
		if err != nil {
			return Addr{}, err
		}
		if len(addrBytes) != 16 {
			return Addr{}, errors.New("length of address is not 128bit")
		}

		copy(addr[:], addrBytes)

		return addr, nil
	}

	// Two colons found. parse each of them and combine them.
	frag1, err1 := parseAddrFrag(before, false)
	frag2, err2 := parseAddrFrag(after, true)
	if err1 != nil || err2 != nil {
		if err1 != nil {
			return Addr{}, errors.Wrap(err1, "parsing fragment before ::")
		} else {
			return Addr{}, errors.Wrap(err2, "parsing fragment after ::")
		}
	}

	if len(frag1)+len(frag2) > 14 {
		// At least 2 bytes should be ommited.
		return Addr{}, errors.New("ipv6 address too long")
	}

	// copy first len(frag1) bytes.
	copy(addr[:len(frag1)], frag1)
	// copy last len(frag2) bytes.
	copy(addr[len(addr)-len(frag2):], frag2)

	return addr, nil
}

func parseAddrFrag(s string, isLast bool) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	h16s := strings.Split(s, ":")

	addr := make([]byte, len(h16s)*2)
	for idx, h16 := range h16s {
		if h16 == "" {
			// 0:::, 0::0::
			return nil, errors.New("invalid use of colon seperator")
		}

		n, err := strconv.ParseUint(h16, 16, 16)
		if err != nil {
			if !isLast || idx != len(h16s)-1 {
				// If it is not the last element of the whole address
				return nil, errors.Wrap(err, "failed to parse hex")
			}
			// It might be IPv4 address
			addrV4, err := ipv4.ParseAddr(h16)
			if err != nil {
				return nil, errors.Wrap(err,
					"non-hex item found on the last index, but wasn't ipv4 address",
				)
			}

			// An embedded IPv4 address occupies two groups.
			v4 := addrV4.ToUint32()
			nIdx := idx * 2
			addr = append(addr, 0, 0)
			addr[nIdx] = byte(v4 >> 24)
			addr[nIdx+1] = byte(v4 >> 16)
			addr[nIdx+2] = byte(v4 >> 8)
			addr[nIdx+3] = byte(v4)
			continue
		}

		nIdx := idx * 2
		addr[nIdx] = byte(n >> 8)
		addr[nIdx+1] = byte(n & 0xFF)
	}

	return addr, nil
}

// String emits the address in RFC 5952 canonical form: lowercase hex,
// no leading zeros, the leftmost longest run of two or more zero groups
// compressed to "::".
func (a Addr) String() string {
	var groups [8]uint16
	for i := 0; i < 8; i++ {
		groups[i] = uint16(a[i*2])<<8 | uint16(a[i*2+1])
	}

	runStart, runLen := -1, 0
	for i := 0; i < 8; {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if j-i > runLen {
			runStart, runLen = i, j-i
		}
		i = j
	}
	if runLen < 2 {
		runStart = -1
	}

	b := new(strings.Builder)
	afterRun := false
	for i := 0; i < 8; {
		if i == runStart {
			b.WriteString("::")
			i += runLen
			afterRun = true
			continue
		}
		if b.Len() > 0 && !afterRun {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
		afterRun = false
		i++
	}
	return b.String()
}
