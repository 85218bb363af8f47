// Package uri provides an immutable URI value for tests. A URI holds the
// seven generic URI components as plain fields; every With* mutator returns
// a new value and never touches the receiver, so instances can be shared
// freely between test cases. Parse builds a URI from a string and String
// reassembles one, and the two round-trip.
package uri

import (
	"strconv"
	"strings"
)

// URI is an immutable URI value. The zero value has every component empty;
// New returns a value with the default path "/". Query and fragment are
// stored without their leading "?" and "#" delimiters.
type URI struct {
	scheme   string
	userInfo string
	host     string
	port     int
	path     string
	query    string
	fragment string
}

// New creates a URI with no scheme, host or authority and the default
// path "/". No implicit scheme or host is invented.
func New() URI {
	return URI{path: "/"}
}

// Scheme returns the URI scheme without the trailing ":".
func (u URI) Scheme() string { return u.scheme }

// UserInfo returns the "user[:password]" portion of the authority.
func (u URI) UserInfo() string { return u.userInfo }

// Host returns the host component.
func (u URI) Host() string { return u.host }

// Port returns the port, or 0 when no port is set.
func (u URI) Port() int { return u.port }

// Path returns the path component.
func (u URI) Path() string { return u.path }

// Query returns the query string without the leading "?".
func (u URI) Query() string { return u.query }

// Fragment returns the fragment without the leading "#".
func (u URI) Fragment() string { return u.fragment }

// Authority assembles "[userInfo@]host[:port]". It is empty whenever the
// host is empty, regardless of the other two parts.
func (u URI) Authority() string {
	if u.host == "" {
		return ""
	}
	authority := u.host
	if u.userInfo != "" {
		authority = u.userInfo + "@" + authority
	}
	if u.port != 0 {
		authority += ":" + strconv.Itoa(u.port)
	}
	return authority
}

// WithScheme returns a copy of the URI with the scheme replaced.
func (u URI) WithScheme(scheme string) URI {
	u.scheme = strings.TrimSuffix(scheme, ":")
	return u
}

// WithUserInfo returns a copy of the URI with the user information
// replaced. The password is joined to the user with ":" only when it is
// non-empty; an empty user clears the component entirely.
func (u URI) WithUserInfo(user, password string) URI {
	switch {
	case user == "":
		u.userInfo = ""
	case password != "":
		u.userInfo = user + ":" + password
	default:
		u.userInfo = user
	}
	return u
}

// WithHost returns a copy of the URI with the host replaced.
func (u URI) WithHost(host string) URI {
	u.host = host
	return u
}

// WithPort returns a copy of the URI with the port replaced. Port 0 means
// "no port".
func (u URI) WithPort(port int) URI {
	u.port = port
	return u
}

// WithPath returns a copy of the URI with the path replaced.
func (u URI) WithPath(path string) URI {
	u.path = path
	return u
}

// WithQuery returns a copy of the URI with the query replaced. A leading
// "?" is stripped defensively; callers are not expected to pass one.
func (u URI) WithQuery(query string) URI {
	u.query = strings.TrimPrefix(query, "?")
	return u
}

// WithFragment returns a copy of the URI with the fragment replaced. A
// leading "#" is stripped defensively.
func (u URI) WithFragment(fragment string) URI {
	u.fragment = strings.TrimPrefix(fragment, "#")
	return u
}

// String assembles the URI: "scheme://" when the scheme is non-empty, then
// the authority, path, "?query" and "#fragment" (the last two only when
// non-empty).
func (u URI) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	b.WriteString(u.Authority())
	b.WriteString(u.path)
	if u.query != "" {
		b.WriteString("?")
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteString("#")
		b.WriteString(u.fragment)
	}
	return b.String()
}
