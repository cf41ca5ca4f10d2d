package commands

import (
	"fmt"
	"strings"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/selection"
)

// SelectOptions configures Select.
type SelectOptions struct {
	Catalog *catalog.Catalog
	// Text is the starting selection. Blank means an empty selection.
	Text     string
	Names    []string
	Notifier selection.Notifier
}

// Select toggles each named catalog plugin, in order, on top of the starting
// text and returns the resulting JSON. Every name is resolved before any
// toggle runs, so an unknown name leaves nothing half-applied.
func Select(opts SelectOptions) (string, error) {
	plugins := make([]catalog.Descriptor, 0, len(opts.Names))
	for _, name := range opts.Names {
		d, ok := opts.Catalog.Lookup(name)
		if !ok {
			return "", fmt.Errorf("unknown plugin %q", name)
		}
		plugins = append(plugins, d)
	}

	sel := selection.New(opts.Notifier, nil)
	if strings.TrimSpace(opts.Text) != "" {
		sel.EditText(opts.Text)
	}
	for _, d := range plugins {
		if err := sel.Toggle(d); err != nil {
			return "", fmt.Errorf("toggling %s: %w", d.Name, err)
		}
	}
	return sel.Text(), nil
}
