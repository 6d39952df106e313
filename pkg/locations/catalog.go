// Package locations supplies the fixed set of service locations offered by
// the form. The set is only iterated and displayed; submission requires a
// non-empty choice and nothing more.
package locations

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var embeddedCatalog []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Catalog is an ordered list of location names.
type Catalog struct {
	values []string
	index  map[string]struct{}
}

type document struct {
	Locations []string `yaml:"locations"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Decode(bytes.NewReader(embeddedCatalog))
	})
	return defaultCatalog, defaultErr
}

// Load reads a catalog file with the same layout as the embedded one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locations: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a YAML catalog. Blank and repeated entries are dropped.
func Decode(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("locations: decode: %w", err)
	}
	return New(doc.Locations...), nil
}

// New builds a catalog from names.
func New(names ...string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := c.index[trimmed]; ok {
			continue
		}
		c.index[trimmed] = struct{}{}
		c.values = append(c.values, trimmed)
	}
	return c
}

// Values returns the locations in catalog order.
func (c *Catalog) Values() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.values...)
}

// Contains reports whether name is offered.
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// IndexOf returns the position of name, or -1.
func (c *Catalog) IndexOf(name string) int {
	if c == nil {
		return -1
	}
	for i, v := range c.values {
		if v == name {
			return i
		}
	}
	return -1
}

// Len returns the number of locations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}
