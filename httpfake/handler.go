package httpfake

import (
	"net/http"

	"github.com/google/uuid"
)

// Call is one recorded dispatch through a Handler or Middleware.
type Call struct {
	ID       string // unique per call
	Request  *Request
	Response *Response
}

// Handler is a fake request handler. Behavior is injected through the
// HandleFunc slot rather than by embedding and overriding; when the slot is
// nil every request gets an empty 200 response. Every dispatch is recorded
// in CallLog, which tests may inspect directly or through Calls.
type Handler struct {
	HandleFunc func(*Request) *Response

	CallLog []Call
}

// NewHandler creates a Handler with the default no-op behavior.
func NewHandler() *Handler {
	return &Handler{}
}

// Handle dispatches req through the configured slot, records the exchange
// and returns the response.
func (h *Handler) Handle(req *Request) *Response {
	fn := h.HandleFunc
	if fn == nil {
		fn = func(*Request) *Response { return NewResponse(http.StatusOK) }
	}

	resp := fn(req)
	h.CallLog = append(h.CallLog, Call{
		ID:       uuid.NewString(),
		Request:  req,
		Response: resp,
	})
	return resp
}

// Calls returns the recorded dispatches, oldest first.
func (h *Handler) Calls() []Call {
	out := make([]Call, len(h.CallLog))
	copy(out, h.CallLog)
	return out
}
