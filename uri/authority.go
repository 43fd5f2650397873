package uri

import (
	"strconv"
	"strings"

	"http-grammar/parse"
	"http-grammar/percent"
	"http-grammar/rule"
)

// UserInfo is the user information subcomponent, stored decoded.
type UserInfo string

// Authority groups host, optional port, and optional userinfo. The stored
// order differs from the textual order: emission is userinfo "@" host ":"
// port.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2
type Authority struct {
	Host     Host
	Port     *uint32
	UserInfo *UserInfo
}

var userInfoCodec = percent.Codec(isUserInfoChar)

var AuthorityMapping = parse.Mapping[Authority]{
	Parser:    parseAuthority,
	Formatter: formatAuthority,
}

func ParseAuthority(s string) (Authority, error) { return AuthorityMapping.Parse(s) }

func TryParseAuthority(s string) (Authority, bool, error) { return AuthorityMapping.TryParse(s) }

func (a Authority) String() string { return AuthorityMapping.Format(a) }

func parseAuthority(in parse.Input) (Authority, parse.Input, error) {
	var authority Authority

	// The '@' disambiguates userinfo from host; backtrack when absent.
	if info, rest, err := parseUserInfoAt(in); err == nil {
		authority.UserInfo = &info
		in = rest
	}

	host, in, err := parseHost(in)
	if err != nil {
		return Authority{}, in, err
	}
	authority.Host = host

	if c, ok := in.Peek(); ok && c == ':' {
		port, rest, err := parsePort(in.Advance(1))
		if err != nil {
			return Authority{}, in, err
		}
		authority.Port = port
		in = rest
	}

	return authority, in, nil
}

func parseUserInfoAt(in parse.Input) (UserInfo, parse.Input, error) {
	info, rest, err := userInfoCodec.Parser(in)
	if err != nil {
		return "", in, err
	}
	_, rest, err = parse.Char('@')(rest)
	if err != nil {
		return "", in, err
	}
	return UserInfo(info), rest, nil
}

// port = *DIGIT. An empty port is treated as absent.
func parsePort(in parse.Input) (*uint32, parse.Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rule.IsDigit(rest[n]) {
		n++
	}
	if n == 0 {
		return nil, in, nil
	}

	v, err := strconv.ParseUint(rest[:n], 10, 32)
	if err != nil {
		return nil, in, parse.Errorf(in, "port out of range: %q", rest[:n])
	}

	port := uint32(v)
	return &port, in.Advance(n), nil
}

func formatAuthority(a Authority, b *strings.Builder) {
	if a.UserInfo != nil {
		userInfoCodec.Formatter(string(*a.UserInfo), b)
		b.WriteByte('@')
	}

	formatHost(a.Host, b)

	if a.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(*a.Port), 10))
	}
}
