package httpfake

import "net/http"

// Response is a fake HTTP response.
type Response struct {
	Message
	StatusCode int
}

// NewResponse creates a Response with the given status code. A zero status
// defaults to 200.
func NewResponse(status int) *Response {
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{
		Message:    newMessage(),
		StatusCode: status,
	}
}
