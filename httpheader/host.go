package httpheader

import (
	"strconv"
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
	"http-grammar/uri"
)

// Host is the Host header value: uri-host [ ":" port ].
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-5.4
type Host struct {
	Host uri.Host
	Port *uint32
}

var HostMapping = parse.Mapping[Host]{
	Parser:    parseHost,
	Formatter: formatHost,
}

func ParseHost(s string) (Host, error) { return HostMapping.Parse(s) }

func TryParseHost(s string) (Host, bool, error) { return HostMapping.TryParse(s) }

func (h Host) String() string { return HostMapping.Format(h) }

func parseHost(in parse.Input) (Host, parse.Input, error) {
	host, rest, err := uri.HostMapping.Parser(in)
	if err != nil {
		return Host{}, in, err
	}

	out := Host{Host: host}

	if c, ok := rest.Peek(); ok && c == ':' {
		digits, afterPort, err := parse.TakeWhile1(rule.IsDigit, "DIGIT")(rest.Advance(1))
		if err != nil {
			return out, rest, nil
		}
		port, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return Host{}, in, parse.Errorf(rest, "port out of range")
		}
		p := uint32(port)
		out.Port = &p
		rest = afterPort
	}

	return out, rest, nil
}

func formatHost(h Host, b *strings.Builder) {
	b.WriteString(uri.HostMapping.Format(h.Host))
	if h.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(*h.Port), 10))
	}
}
