package uri

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wasilibs/go-re2"
)

// ErrInvalidURI is returned by Parse when the input cannot be decomposed
// under the generic URI grammar.
var ErrInvalidURI = errors.New("invalid URI")

var (
	// Generic splitting per RFC 3986 appendix B, with an extra group for
	// the "//" authority marker so an empty authority can be told apart
	// from a missing one.
	splitPattern = re2.MustCompile(`^(?:([^:/?#]+):)?(?:(//)([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)

	schemePattern = re2.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*$`)
	portPattern   = re2.MustCompile(`^[0-9]+$`)
)

// Parse decomposes raw into a URI. Missing optional components stay empty
// (port 0). It fails with an error wrapping ErrInvalidURI when raw does not
// follow the generic grammar: a "//" authority marker followed by an empty
// authority, an invalid scheme, a host with stray colons, or a port that is
// not a decimal number in range.
func Parse(raw string) (URI, error) {
	m := splitPattern.FindStringSubmatch(raw)
	if m == nil {
		return URI{}, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}
	scheme, marker, authority := m[1], m[2], m[3]
	path, query, fragment := m[4], m[5], m[6]

	if scheme != "" && !schemePattern.MatchString(scheme) {
		return URI{}, fmt.Errorf("%w: bad scheme %q in %q", ErrInvalidURI, scheme, raw)
	}
	if marker != "" && authority == "" {
		return URI{}, fmt.Errorf("%w: empty authority in %q", ErrInvalidURI, raw)
	}

	u := URI{
		scheme:   scheme,
		path:     path,
		query:    query,
		fragment: fragment,
	}

	if authority != "" {
		userInfo, host, port, err := splitAuthority(authority)
		if err != nil {
			return URI{}, fmt.Errorf("%w: %v in %q", ErrInvalidURI, err, raw)
		}
		u.userInfo = userInfo
		u.host = host
		u.port = port
	}

	return u, nil
}

// splitAuthority breaks "[userinfo@]host[:port]" apart, keeping bracketed
// IPv6 literals intact.
func splitAuthority(authority string) (userInfo, host string, port int, err error) {
	hostPort := authority
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		userInfo, hostPort = authority[:i], authority[i+1:]
	}

	portStr := ""
	hasPort := false
	switch {
	case strings.HasPrefix(hostPort, "["):
		end := strings.Index(hostPort, "]")
		if end < 0 {
			return "", "", 0, fmt.Errorf("unclosed bracket in host %q", hostPort)
		}
		host = hostPort[:end+1]
		rest := hostPort[end+1:]
		if rest != "" {
			if !strings.HasPrefix(rest, ":") {
				return "", "", 0, fmt.Errorf("trailing garbage after host %q", hostPort)
			}
			portStr, hasPort = rest[1:], true
		}
	default:
		host = hostPort
		if i := strings.LastIndex(hostPort, ":"); i >= 0 {
			host, portStr, hasPort = hostPort[:i], hostPort[i+1:], true
		}
		if strings.Contains(host, ":") {
			return "", "", 0, fmt.Errorf("stray colon in host %q", host)
		}
	}

	if host == "" {
		return "", "", 0, fmt.Errorf("missing host in authority %q", authority)
	}

	if hasPort {
		if !portPattern.MatchString(portStr) {
			return "", "", 0, fmt.Errorf("bad port %q", portStr)
		}
		port, err = strconv.Atoi(portStr)
		if err != nil || port > 65535 {
			return "", "", 0, fmt.Errorf("port %q out of range", portStr)
		}
	}

	return userInfo, host, port, nil
}
