package fixture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/fakekit/clockfake"
	"github.com/aatumaykin/fakekit/stream"
)

const tomlFixture = `
[cache.greeting]
value = "hello"
ttl = "30s"

[cache.permanent]
value = "forever"

[services]
mailer = "smtp://localhost"
queue = "amqp://localhost"

[[requests]]
method = "POST"
url = "https://acme.com/orders"
body = "{}"

[requests.headers]
Content-Type = "application/json"

[[requests]]
url = "https://acme.com/health"
`

const yamlFixture = `
cache:
  greeting:
    value: hello
    ttl: 30s
services:
  mailer: smtp://localhost
requests:
  - method: PUT
    url: https://acme.com/items/1
    headers:
      Accept: application/json
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	f, err := Load(writeFixture(t, "fakes.toml", tomlFixture))
	require.NoError(t, err)

	assert.Len(t, f.Cache, 2)
	assert.Equal(t, "hello", f.Cache["greeting"].Value)
	assert.Equal(t, "30s", f.Cache["greeting"].TTL)
	assert.Equal(t, map[string]string{
		"mailer": "smtp://localhost",
		"queue":  "amqp://localhost",
	}, f.Services)
	require.Len(t, f.Requests, 2)
	assert.Empty(t, f.Validate())
}

func TestLoad_YAML(t *testing.T) {
	f, err := Load(writeFixture(t, "fakes.yaml", yamlFixture))
	require.NoError(t, err)

	assert.Equal(t, "hello", f.Cache["greeting"].Value)
	require.Len(t, f.Requests, 1)
	assert.Equal(t, "PUT", f.Requests[0].Method)
	assert.Empty(t, f.Validate())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeFixture(t, "fakes.json", "{}"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, stream.ErrUnreadable)
}

func TestParse_BadTOML(t *testing.T) {
	_, err := Parse([]byte("[cache\n"), FormatTOML)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	f := &Fixture{
		Cache: map[string]CacheEntry{
			"bad": {Value: "x", TTL: "soon"},
		},
		Requests: []Request{
			{Method: "GET"},
			{Method: "GET", URL: "http://"},
		},
	}

	errs := f.Validate()
	require.Len(t, errs, 3)

	joined := ""
	for _, err := range errs {
		joined += err.Error() + "\n"
	}
	assert.Contains(t, joined, `cache.bad: invalid ttl "soon"`)
	assert.Contains(t, joined, "requests[0]: url is required")
	assert.Contains(t, joined, "requests[1]")
}

func TestStore(t *testing.T) {
	f, err := Load(writeFixture(t, "fakes.toml", tomlFixture))
	require.NoError(t, err)

	clock := clockfake.NewAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	store, err := f.Store(clock)
	require.NoError(t, err)

	value, ok := store.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", value)

	clock.Advance(30 * time.Second)
	_, ok = store.Get("greeting")
	assert.False(t, ok, "fixture ttl must anchor to the supplied clock")

	_, ok = store.Get("permanent")
	assert.True(t, ok)
}

func TestStore_BadTTL(t *testing.T) {
	f := &Fixture{Cache: map[string]CacheEntry{"bad": {Value: "x", TTL: "soon"}}}

	_, err := f.Store(clockfake.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid ttl "soon"`)
}

func TestContainer(t *testing.T) {
	f, err := Load(writeFixture(t, "fakes.toml", tomlFixture))
	require.NoError(t, err)

	c := f.Container()
	svc, err := c.Get("mailer")
	require.NoError(t, err)
	assert.Equal(t, "smtp://localhost", svc)
}

func TestHTTPRequests(t *testing.T) {
	f, err := Load(writeFixture(t, "fakes.toml", tomlFixture))
	require.NoError(t, err)

	reqs, err := f.HTTPRequests()
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "POST", reqs[0].Method)
	assert.Equal(t, "/orders", reqs[0].RequestTarget())
	assert.Equal(t, []string{"application/json"}, reqs[0].HeaderValues("Content-Type"))
	assert.Equal(t, "{}", reqs[0].Body.String())

	assert.Equal(t, "GET", reqs[1].Method, "missing method defaults to GET")
}

func TestHTTPRequests_InvalidURL(t *testing.T) {
	f := &Fixture{Requests: []Request{{URL: "http://"}}}

	_, err := f.HTTPRequests()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requests[0]")
}
