package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the read-only set of bookable services. It is built once at
// startup; lookups are safe for concurrent use.
type Catalog struct {
	services map[string]*Service
	order    []string
}

// Default returns a catalog populated with the built-in services.
func Default() *Catalog {
	c, _ := build(defaultServices())
	return c
}

// LoadFile reads a JSON catalog file and returns the catalog it describes.
// The file holds an array of Service objects.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var services []*Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return build(services)
}

func build(services []*Service) (*Catalog, error) {
	if len(services) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{services: make(map[string]*Service, len(services))}
	for _, svc := range services {
		if _, ok := c.services[svc.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate service id %q", svc.ID)
		}
		c.services[svc.ID] = svc
		c.order = append(c.order, svc.ID)
	}
	return c, nil
}

// Get returns the service with the given id.
func (c *Catalog) Get(id string) (*Service, error) {
	svc, ok := c.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// List returns all services in their declared order.
func (c *Catalog) List() []*Service {
	out := make([]*Service, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.services[id])
	}
	return out
}
