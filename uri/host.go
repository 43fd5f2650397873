package uri

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/percent"

	ipv4 "http-grammar/ip/v4"
	ipv6 "http-grammar/ip/v6"
)

// RegName is a registered host name, stored decoded.
type RegName string

// Host is one of IPv6 literal, IPv4 address, or registered name. The parser
// tries the alternatives in that order; an address alternative is rejected
// when the text does not parse as an address of its family, letting
// numerically-looking names fall through to RegName.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
type Host interface {
	isHost()
	String() string
}

type HostIPv4 struct{ Addr ipv4.Addr }

type HostIPv6 struct{ Addr ipv6.Addr }

type HostName struct{ Name RegName }

func (HostIPv4) isHost() {}
func (HostIPv6) isHost() {}
func (HostName) isHost() {}

var regNameCodec = percent.Codec(isRegNameChar)

var HostMapping = parse.Mapping[Host]{
	Parser:    parseHost,
	Formatter: formatHost,
}

func ParseHost(s string) (Host, error) { return HostMapping.Parse(s) }

func TryParseHost(s string) (Host, bool, error) { return HostMapping.TryParse(s) }

func (h HostIPv4) String() string { return HostMapping.Format(h) }
func (h HostIPv6) String() string { return HostMapping.Format(h) }
func (h HostName) String() string { return HostMapping.Format(h) }

func parseHost(in parse.Input) (Host, parse.Input, error) {
	if c, ok := in.Peek(); ok && c == '[' {
		return parseIPLiteral(in)
	}

	// IPv4 and reg-name share a byte class; take the run once and decide.
	rest := in.Rest()
	n := 0
	for n < len(rest) {
		if isRegNameChar(rest[n]) {
			n++
			continue
		}
		if n+2 < len(rest) && rest[n] == '%' {
			// Let the codec validate the triple below.
			n += 3
			continue
		}
		break
	}
	raw := rest[:n]

	if addr, err := ipv4.ParseAddr(raw); err == nil {
		return HostIPv4{Addr: addr}, in.Advance(n), nil
	}

	name, rest2, err := regNameCodec.Parser(in)
	if err != nil {
		return nil, in, err
	}
	if rest2.Offset()-in.Offset() != n {
		return nil, in, parse.Errorf(rest2, "malformed percent encoding in host")
	}

	return HostName{Name: RegName(name)}, rest2, nil
}

func parseIPLiteral(in parse.Input) (Host, parse.Input, error) {
	rest := in.Rest()
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return nil, in, parse.Errorf(in, "missing ']' in IP literal")
	}

	addr, err := ipv6.ParseAddr(rest[1:end])
	if err != nil {
		return nil, in, parse.Wrap(in, err, "invalid IPv6 literal")
	}

	return HostIPv6{Addr: addr}, in.Advance(end + 1), nil
}

func formatHost(h Host, b *strings.Builder) {
	switch host := h.(type) {
	case HostIPv4:
		b.WriteString(host.Addr.String())
	case HostIPv6:
		b.WriteByte('[')
		b.WriteString(host.Addr.String())
		b.WriteByte(']')
	case HostName:
		regNameCodec.Formatter(string(host.Name), b)
	}
}
