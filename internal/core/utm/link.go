package utm

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const upperHex = "0123456789ABCDEF"

// Bytes percent-encoded in a path or fragment on top of C0 controls,
// DEL and non-ASCII.
const (
	pathEscapes     = " \"#<>?`{}"
	fragmentEscapes = " \"<>`"
)

// defaultPorts lists the schemes with a default port; they also get a "/"
// path when none is given.
var defaultPorts = map[string]int{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
)

// link is an absolute URL in canonical form, split so the query can be
// rewritten.
type link struct {
	scheme      string
	authority   string // [userinfo@]host[:port]
	path        string
	query       string // without '?'
	fragment    string
	hasFragment bool
}

// parseLink splits raw into its parts and canonicalizes them the way a
// browser serializes a parsed URL. Path and fragment are taken as typed,
// so stray '%' signs survive; only the scheme and authority go through
// net/url.
func parseLink(raw string) (link, error) {
	var l link

	rest, frag, hasFrag := strings.Cut(raw, "#")
	rest, l.query, _ = strings.Cut(rest, "?")
	scheme, hier, ok := strings.Cut(rest, "://")
	if !ok {
		return link{}, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, raw)
	}
	authority, p := hier, ""
	if i := strings.IndexByte(hier, '/'); i >= 0 {
		authority, p = hier[:i], hier[i:]
	}

	u, err := url.Parse(scheme + "://" + authority)
	if err != nil {
		return link{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return link{}, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, raw)
	}

	l.scheme = strings.ToLower(u.Scheme)
	host, err := canonicalHost(u, l.scheme)
	if err != nil {
		return link{}, err
	}
	l.authority = host
	if u.User != nil {
		l.authority = u.User.String() + "@" + host
	}

	l.path = canonicalPath(p, l.scheme)
	if hasFrag {
		l.fragment = percentEncode(frag, fragmentEscapes)
		l.hasFragment = true
	}
	return l, nil
}

func (l link) String() string {
	var b strings.Builder
	b.WriteString(l.scheme)
	b.WriteString("://")
	b.WriteString(l.authority)
	b.WriteString(l.path)
	if l.query != "" {
		b.WriteByte('?')
		b.WriteString(l.query)
	}
	if l.hasFragment {
		b.WriteByte('#')
		b.WriteString(l.fragment)
	}
	return b.String()
}

// canonicalHost lowercases the host, converts internationalized names to
// their ASCII form and drops the port when it is the scheme's default.
func canonicalHost(u *url.URL, scheme string) (string, error) {
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	switch {
	case strings.HasPrefix(u.Host, "["):
		host = "[" + strings.ToLower(host) + "]"
	case !isASCII(host):
		ascii, err := hostProfile.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("%w: host %q: %v", ErrInvalidURL, host, err)
		}
		host = strings.ToLower(ascii)
	default:
		host = strings.ToLower(host)
	}

	port := u.Port()
	if port == "" {
		return host, nil
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > 65535 {
		return "", fmt.Errorf("%w: port %q out of range", ErrInvalidURL, port)
	}
	if def, ok := defaultPorts[scheme]; ok && def == n {
		return host, nil
	}
	return host + ":" + strconv.Itoa(n), nil
}

// canonicalPath resolves "." and ".." segments and percent-encodes bytes
// that may not appear in a path. Empty segments are kept.
func canonicalPath(p, scheme string) string {
	if p == "" {
		if _, special := defaultPorts[scheme]; special {
			return "/"
		}
		return ""
	}

	segs := strings.Split(p[1:], "/")
	out := make([]string, 0, len(segs))
	for i, seg := range segs {
		last := i == len(segs)-1
		switch {
		case isDoubleDot(seg):
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			if last {
				out = append(out, "")
			}
		case isSingleDot(seg):
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}
	return percentEncode("/"+strings.Join(out, "/"), pathEscapes)
}

func isSingleDot(seg string) bool {
	return seg == "." || strings.EqualFold(seg, "%2e")
}

func isDoubleDot(seg string) bool {
	switch strings.ToLower(seg) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

// percentEncode escapes controls, non-ASCII bytes and the bytes in extra.
// Existing escapes, valid or not, are left alone.
func percentEncode(s, extra string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c >= 0x7f || strings.IndexByte(extra, c) >= 0 {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// cleanInput trims surrounding whitespace and drops tabs and newlines,
// which browsers ignore anywhere in a URL.
func cleanInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
