package utm

import "strings"

// pair is one name/value entry of a query string.
type pair struct {
	name  string
	value string
}

// query is an ordered list of query pairs with URLSearchParams semantics:
// parsing and serializing use application/x-www-form-urlencoded rules and
// duplicate names are allowed.
type query []pair

// parseQuery splits a raw query (without the leading '?') into pairs.
func parseQuery(raw string) query {
	var q query
	for _, seq := range strings.Split(raw, "&") {
		if seq == "" {
			continue
		}
		name, value, _ := strings.Cut(seq, "=")
		q = append(q, pair{name: formDecode(name), value: formDecode(value)})
	}
	return q
}

// set replaces the value of the first pair named name and removes any later
// pairs with that name. If no pair matches, the pair is appended.
func (q query) set(name, value string) query {
	out := q[:0:0]
	found := false
	for _, p := range q {
		if p.name != name {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, pair{name: name, value: value})
			found = true
		}
	}
	if !found {
		out = append(out, pair{name: name, value: value})
	}
	return out
}

func (q query) encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		formEncode(&b, p.name)
		b.WriteByte('=')
		formEncode(&b, p.value)
	}
	return b.String()
}

func formEncode(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '*', c == '-', c == '.', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
	}
}

// formDecode turns '+' into a space and decodes %XX escapes. Malformed
// escapes are kept literally.
func formDecode(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			buf = append(buf, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
