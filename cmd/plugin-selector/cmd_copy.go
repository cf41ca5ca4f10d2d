package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ruminaider/plugin-selector/internal/commands"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [FILE]",
	Short: "Copy a plugin configuration to the clipboard",
	Long: "Copies the configuration in FILE (or stdin when FILE is omitted or -) to the " +
		"clipboard verbatim. An empty selection is not copied.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		text, err := readInput(path)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		res, err := commands.Copy(ctx, commands.CopyOptions{
			Text:      text,
			Clipboard: env.clipboard,
			Notifier:  stderrNotifier(),
		})
		if err != nil {
			return err
		}

		if !res.Copied {
			fmt.Println("Nothing to copy: the selection is empty.")
			return nil
		}
		summary := fmt.Sprintf("%s copied", humanize.Bytes(uint64(res.Bytes)))
		if res.Valid {
			summary += fmt.Sprintf(", %d %s", res.Entries, pluralize(res.Entries, "plugin", "plugins"))
		} else {
			summary += " (not a valid JSON array)"
		}
		fmt.Println(summary)
		return nil
	},
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
