package httpfake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("POST", "https://acme.com:8080/orders?draft=1")
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "acme.com", req.URL.Host())
	assert.Equal(t, 8080, req.URL.Port())
	assert.Equal(t, "1.1", req.Proto)
	assert.NotNil(t, req.Body)
	assert.Equal(t, int64(0), req.Body.Size())
}

func TestNewRequest_DefaultsToGet(t *testing.T) {
	req, err := NewRequest("", "https://acme.com/")
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
}

func TestNewRequest_InvalidURL(t *testing.T) {
	_, err := NewRequest("GET", "http://")
	require.Error(t, err)
}

func TestRequestTarget(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "path and query", url: "https://acme.com/test?foo=bar", want: "/test?foo=bar"},
		{name: "path only", url: "https://acme.com/test", want: "/test"},
		{name: "empty path derives root", url: "https://acme.com", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest("GET", tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.RequestTarget())
		})
	}
}

func TestRequestTarget_Override(t *testing.T) {
	req, err := NewRequest("OPTIONS", "https://acme.com/ignored")
	require.NoError(t, err)

	req.SetRequestTarget("*")
	assert.Equal(t, "*", req.RequestTarget())
}

func TestMessage_Headers(t *testing.T) {
	req, err := NewRequest("GET", "https://acme.com/")
	require.NoError(t, err)

	req.SetHeader("content-type", "application/json")
	req.AddHeader("Accept", "text/html")
	req.AddHeader("accept", "application/json")

	// Canonical-key semantics: casing of the lookup does not matter.
	assert.True(t, req.HasHeader("Content-Type"))
	assert.Equal(t, []string{"application/json"}, req.HeaderValues("CONTENT-TYPE"))
	assert.Equal(t, []string{"text/html", "application/json"}, req.HeaderValues("Accept"))

	req.DelHeader("accept")
	assert.False(t, req.HasHeader("Accept"))

	// The bag itself is open for direct assertions.
	assert.Len(t, req.Header, 1)
}

func TestMessage_SetBodyString(t *testing.T) {
	resp := NewResponse(0)
	resp.SetBodyString("hello")

	assert.Equal(t, "hello", resp.Body.String())
	assert.Equal(t, int64(5), resp.Body.Size())
}

func TestNewResponse(t *testing.T) {
	assert.Equal(t, 200, NewResponse(0).StatusCode)
	assert.Equal(t, 404, NewResponse(404).StatusCode)
}

func TestUploadedFile(t *testing.T) {
	f := NewUploadedFile([]byte("csv,data"), "report.csv", "text/csv")

	assert.Equal(t, int64(8), f.Size())
	assert.False(t, f.Moved())

	s, err := f.Stream()
	require.NoError(t, err)
	assert.Equal(t, "csv,data", s.String())

	require.NoError(t, f.MoveTo("/uploads/report.csv"))
	assert.True(t, f.Moved())
	assert.Equal(t, "/uploads/report.csv", f.MovedTo)

	_, err = f.Stream()
	assert.ErrorIs(t, err, ErrFileMoved)

	err = f.MoveTo("/elsewhere")
	require.ErrorIs(t, err, ErrFileMoved)
	assert.Equal(t, "/uploads/report.csv", f.MovedTo, "first destination must stick")
}
