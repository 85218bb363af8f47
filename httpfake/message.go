// Package httpfake provides in-memory HTTP message fakes: requests,
// responses, a call-recording handler and middleware, and an uploaded file.
// Bodies are stream.Stream fakes and addresses are uri.URI values, so tests
// can inspect exactly what was read and where a request pointed without any
// transport underneath.
package httpfake

import (
	"net/http"

	"github.com/aatumaykin/fakekit/stream"
)

// Message is the shared base of Request and Response: protocol version,
// header bag and body. The header bag is a plain http.Header so tests can
// assert against it with the usual canonical-key semantics, and the body is
// never nil (an empty stream by default).
type Message struct {
	Proto  string
	Header http.Header
	Body   *stream.Stream
}

func newMessage() Message {
	return Message{
		Proto:  "1.1",
		Header: make(http.Header),
		Body:   stream.New(nil),
	}
}

// SetHeader replaces the values stored under name.
func (m *Message) SetHeader(name, value string) {
	m.Header.Set(name, value)
}

// AddHeader appends a value to the ones stored under name.
func (m *Message) AddHeader(name, value string) {
	m.Header.Add(name, value)
}

// HeaderValues returns all values stored under name.
func (m *Message) HeaderValues(name string) []string {
	return m.Header.Values(name)
}

// HasHeader reports whether at least one value is stored under name.
func (m *Message) HasHeader(name string) bool {
	return len(m.Header.Values(name)) > 0
}

// DelHeader removes every value stored under name.
func (m *Message) DelHeader(name string) {
	m.Header.Del(name)
}

// SetBodyString replaces the body with a fresh stream over s.
func (m *Message) SetBodyString(s string) {
	m.Body = stream.New([]byte(s))
}
