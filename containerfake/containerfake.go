// Package containerfake provides a fake service container: a plain id to
// service map with a lookup log, standing in for dependency-injection
// containers in tests.
package containerfake

import (
	"errors"
	"fmt"
)

// ErrServiceNotFound is returned by Get when no service is registered under
// the requested id.
var ErrServiceNotFound = errors.New("service not found")

// Container is a fake service container. Services is the backing map and
// Lookups records every id passed to Get or Has, in order; both are
// exported for direct inspection. Not safe for concurrent use.
type Container struct {
	Services map[string]any
	Lookups  []string
}

// New creates an empty Container.
func New() *Container {
	return &Container{Services: make(map[string]any)}
}

// Register stores svc under id, replacing any previous registration.
func (c *Container) Register(id string, svc any) {
	c.Services[id] = svc
}

// Has reports whether a service is registered under id.
func (c *Container) Has(id string) bool {
	c.Lookups = append(c.Lookups, id)
	_, ok := c.Services[id]
	return ok
}

// Get returns the service registered under id. An unknown id fails with an
// error wrapping ErrServiceNotFound that names the missing id.
func (c *Container) Get(id string) (any, error) {
	c.Lookups = append(c.Lookups, id)
	svc, ok := c.Services[id]
	if !ok {
		return nil, fmt.Errorf("service %q is not registered: %w", id, ErrServiceNotFound)
	}
	return svc, nil
}
