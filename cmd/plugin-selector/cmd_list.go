package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/commands"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listFrom string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plugins in the catalog",
	Long: "Prints every catalog plugin in catalog order. With --from, plugins named in the " +
		"given JSON configuration are marked as selected.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}

		var text string
		if listFrom != "" {
			if text, err = readInput(listFrom); err != nil {
				return err
			}
		}
		rows := commands.List(cat, text)

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		printRows(rows)
		return nil
	},
}

func printRows(rows []commands.ListRow) {
	if len(rows) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "\tNAME\tPACKAGE\tVERSION")
	for _, r := range rows {
		mark := " "
		if r.Selected {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, r.Name, r.PackageName, r.Version)
	}
	w.Flush()
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the rows as JSON")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Mark plugins selected in this JSON file (- for stdin)")
}
