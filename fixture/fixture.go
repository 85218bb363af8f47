// Package fixture builds pre-populated fakes from declarative files. A
// fixture file (TOML or YAML, picked by extension) can declare cache
// entries, container services and canned HTTP requests; the materializer
// methods turn those sections into ready-to-use fakes.
//
// Example fixture (TOML):
//
//	[cache.greeting]
//	value = "hello"
//	ttl = "30s"
//
//	[services]
//	mailer = "smtp://localhost"
//
//	[[requests]]
//	method = "POST"
//	url = "https://acme.com/orders"
//	body = "{}"
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/fakekit/cachefake"
	"github.com/aatumaykin/fakekit/clockfake"
	"github.com/aatumaykin/fakekit/containerfake"
	"github.com/aatumaykin/fakekit/httpfake"
	"github.com/aatumaykin/fakekit/stream"
	"github.com/aatumaykin/fakekit/uri"
)

// Format identifies a fixture file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions and Format values
// the loader does not understand.
var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// CacheEntry declares one cache key. TTL is an optional duration string
// ("30s", "5m"); empty means the entry never expires.
type CacheEntry struct {
	Value string `toml:"value" yaml:"value"`
	TTL   string `toml:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// Request declares one canned HTTP request.
type Request struct {
	Method  string            `toml:"method,omitempty" yaml:"method,omitempty"`
	URL     string            `toml:"url" yaml:"url"`
	Body    string            `toml:"body,omitempty" yaml:"body,omitempty"`
	Headers map[string]string `toml:"headers,omitempty" yaml:"headers,omitempty"`
}

// Fixture is a parsed fixture file.
type Fixture struct {
	Cache    map[string]CacheEntry `toml:"cache" yaml:"cache"`
	Services map[string]string     `toml:"services" yaml:"services"`
	Requests []Request             `toml:"requests" yaml:"requests"`
}

// Load reads and parses the fixture file at path, dispatching on the file
// extension (.toml, .yaml, .yml). A file that cannot be read fails with an
// error wrapping stream.ErrUnreadable.
func Load(path string) (*Fixture, error) {
	var format Format
	switch filepath.Ext(path) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w: %w", path, stream.ErrUnreadable, err)
	}
	return Parse(data, format)
}

// Parse parses fixture data in the given format.
func Parse(data []byte, format Format) (*Fixture, error) {
	var f Fixture
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse fixture: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse fixture: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &f, nil
}

// Validate checks the fixture's declarations and returns every problem
// found: unparsable TTL strings, requests without a URL, URLs that do not
// parse.
func (f *Fixture) Validate() []error {
	var errs []error

	for key, entry := range f.Cache {
		if entry.TTL == "" {
			continue
		}
		if _, err := time.ParseDuration(entry.TTL); err != nil {
			errs = append(errs, fmt.Errorf("cache.%s: invalid ttl %q", key, entry.TTL))
		}
	}

	for i, req := range f.Requests {
		if req.URL == "" {
			errs = append(errs, fmt.Errorf("requests[%d]: url is required", i))
			continue
		}
		if _, err := uri.Parse(req.URL); err != nil {
			errs = append(errs, fmt.Errorf("requests[%d]: %v", i, err))
		}
	}

	return errs
}

// Store materializes the cache section into a cachefake.Store using clock
// for TTL anchoring. Fails on unparsable TTL strings.
func (f *Fixture) Store(clock clockfake.Clock) (*cachefake.Store, error) {
	store := cachefake.NewStore(cachefake.WithClock(clock))
	for key, entry := range f.Cache {
		if entry.TTL == "" {
			store.Set(key, entry.Value)
			continue
		}
		ttl, err := time.ParseDuration(entry.TTL)
		if err != nil {
			return nil, fmt.Errorf("cache.%s: invalid ttl %q: %w", key, entry.TTL, err)
		}
		store.SetTTL(key, entry.Value, ttl)
	}
	return store, nil
}

// Container materializes the services section into a fake container.
func (f *Fixture) Container() *containerfake.Container {
	c := containerfake.New()
	for id, svc := range f.Services {
		c.Register(id, svc)
	}
	return c
}

// HTTPRequests materializes the requests section into httpfake requests, in
// declaration order.
func (f *Fixture) HTTPRequests() ([]*httpfake.Request, error) {
	reqs := make([]*httpfake.Request, 0, len(f.Requests))
	for i, decl := range f.Requests {
		req, err := httpfake.NewRequest(decl.Method, decl.URL)
		if err != nil {
			return nil, fmt.Errorf("requests[%d]: %w", i, err)
		}
		for name, value := range decl.Headers {
			req.SetHeader(name, value)
		}
		if decl.Body != "" {
			req.SetBodyString(decl.Body)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
