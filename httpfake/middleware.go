package httpfake

import "github.com/google/uuid"

// Next continues a middleware chain with the (possibly modified) request.
type Next func(*Request) *Response

// Middleware is a fake middleware with an injectable ProcessFunc slot. When
// the slot is nil the request is passed straight through to next. Every
// pass is recorded in CallLog with the response that came back.
type Middleware struct {
	ProcessFunc func(*Request, Next) *Response

	CallLog []Call
}

// NewMiddleware creates a Middleware with the default pass-through
// behavior.
func NewMiddleware() *Middleware {
	return &Middleware{}
}

// Process runs req through the configured slot, records the exchange and
// returns the response.
func (m *Middleware) Process(req *Request, next Next) *Response {
	fn := m.ProcessFunc
	if fn == nil {
		fn = func(r *Request, n Next) *Response { return n(r) }
	}

	resp := fn(req, next)
	m.CallLog = append(m.CallLog, Call{
		ID:       uuid.NewString(),
		Request:  req,
		Response: resp,
	})
	return resp
}

// Calls returns the recorded passes, oldest first.
func (m *Middleware) Calls() []Call {
	out := make([]Call, len(m.CallLog))
	copy(out, m.CallLog)
	return out
}
