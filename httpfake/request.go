package httpfake

import (
	"net/http"

	"github.com/aatumaykin/fakekit/uri"
)

// Request is a fake HTTP request. Method and URL are exported for direct
// inspection and mutation from tests.
type Request struct {
	Message
	Method string
	URL    uri.URI

	target string
}

// NewRequest creates a Request for the given method and URL string. An
// empty method defaults to GET; the URL must parse under uri.Parse.
func NewRequest(method, rawurl string) (*Request, error) {
	u, err := uri.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	if method == "" {
		method = http.MethodGet
	}
	return &Request{
		Message: newMessage(),
		Method:  method,
		URL:     u,
	}, nil
}

// RequestTarget returns the origin-form target derived from the URL
// (path plus "?query"), or the explicit override set with
// SetRequestTarget. An empty path derives as "/".
func (r *Request) RequestTarget() string {
	if r.target != "" {
		return r.target
	}
	target := r.URL.Path()
	if target == "" {
		target = "/"
	}
	if q := r.URL.Query(); q != "" {
		target += "?" + q
	}
	return target
}

// SetRequestTarget overrides the derived request target.
func (r *Request) SetRequestTarget(target string) {
	r.target = target
}
