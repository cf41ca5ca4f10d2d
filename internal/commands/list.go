package commands

import (
	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/selection"
)

// ListRow is one catalog plugin as shown by the list command.
type ListRow struct {
	Name        string `json:"name"`
	PackageName string `json:"package_name"`
	Version     string `json:"version"`
	Selected    bool   `json:"selected"`
}

// List returns one row per catalog plugin in catalog order. When text is
// non-empty and parses as a JSON array, rows for plugins named in it are
// marked selected.
func List(cat *catalog.Catalog, text string) []ListRow {
	sel := selection.New(nil, nil)
	if text != "" {
		sel.EditText(text)
	}

	rows := make([]ListRow, 0, cat.Len())
	for _, d := range cat.Entries() {
		rows = append(rows, ListRow{
			Name:        d.Name,
			PackageName: d.PackageName,
			Version:     d.Version,
			Selected:    sel.Selected(d.Name),
		})
	}
	return rows
}
