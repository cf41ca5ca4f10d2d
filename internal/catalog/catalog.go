package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed plugins.json
var defaultCatalog []byte

// Descriptor describes one installable plugin as listed in the catalog file.
type Descriptor struct {
	Name        string          `json:"name"`
	PackageName string          `json:"package_name"`
	Version     string          `json:"version"`
	Configs     json.RawMessage `json:"configs,omitempty"`
}

// JSON returns the compact JSON encoding of the descriptor. Keys keep the
// catalog order (name, package_name, version, configs) and HTML characters
// are written as-is.
func (d Descriptor) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("encoding plugin %q: %w", d.Name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Catalog is the ordered, read-only list of available plugins.
type Catalog struct {
	entries []Descriptor
	byName  map[string]int
}

// New builds a catalog from descriptors in display order. When two
// descriptors share a name, lookups resolve to the first one.
func New(entries []Descriptor) *Catalog {
	c := &Catalog{
		entries: make([]Descriptor, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, d := range c.entries {
		if _, dup := c.byName[d.Name]; !dup {
			c.byName[d.Name] = i
		}
	}
	return c
}

// Parse decodes a catalog file: a JSON array of plugin descriptors.
func Parse(data []byte) (*Catalog, error) {
	var entries []Descriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(entries), nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err) // embedded file is checked by tests
	}
	return c
}

// Open returns the catalog at path, or the built-in catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Entries returns a copy of the catalog in display order.
func (c *Catalog) Entries() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of plugins in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the descriptor at display index i.
func (c *Catalog) At(i int) Descriptor {
	return c.entries[i]
}

// Lookup finds a plugin by name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return c.entries[i], true
}
