package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ruminaider/plugin-selector/internal/commands"
	"github.com/ruminaider/plugin-selector/internal/selection"
	"github.com/spf13/cobra"
)

var (
	selectFrom string
	selectCopy bool
)

var selectCmd = &cobra.Command{
	Use:   "select NAME...",
	Short: "Toggle plugins and print the resulting JSON",
	Long: "Starts from an empty selection, or from the JSON in --from, toggles each named " +
		"plugin in order and prints the configuration. A plugin that is already selected " +
		"is removed.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}

		var start string
		if selectFrom != "" {
			if start, err = readInput(selectFrom); err != nil {
				return err
			}
		}

		text, err := commands.Select(commands.SelectOptions{
			Catalog:  env.catalog,
			Text:     start,
			Names:    args,
			Notifier: stderrNotifier(),
		})
		if err != nil {
			return err
		}
		fmt.Println(text)

		if !selectCopy {
			return nil
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		_, err = commands.Copy(ctx, commands.CopyOptions{
			Text:      text,
			Clipboard: env.clipboard,
			Notifier:  stderrNotifier(),
		})
		return err
	},
}

// stderrNotifier prints notifications as they happen, keeping stdout for
// the configuration itself.
func stderrNotifier() selection.Notifier {
	return selection.NotifierFunc(func(n selection.Notification) {
		switch n.Level {
		case selection.Warning, selection.Error:
			fmt.Fprintf(os.Stderr, "%s: %s\n", n.Level, n.Message)
		default:
			fmt.Fprintln(os.Stderr, n.Message)
		}
	})
}

func init() {
	selectCmd.Flags().StringVar(&selectFrom, "from", "", "Start from the JSON in this file (- for stdin)")
	selectCmd.Flags().BoolVar(&selectCopy, "copy", false, "Also copy the result to the clipboard")
}
