package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plugin-selector configuration",
	Long:  "Commands for creating and inspecting ~/.plugin-selector/config.yaml.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the config file interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		updated, err := promptConfig(cfg)
		if err != nil {
			return err
		}
		if err := config.Save(path, updated); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration after flag overrides are applied.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", resolvedConfigPath())
		_, err = os.Stdout.Write(data)
		return err
	},
}

// promptConfig asks for every setting, starting from cfg.
func promptConfig(cfg config.Config) (config.Config, error) {
	backend := cfg.Clipboard
	catalogFile := cfg.Catalog
	toast := strconv.Itoa(cfg.ToastSeconds)

	options := []huh.Option[string]{
		huh.NewOption("System clipboard tools (xclip, pbcopy, ...)", clipboard.BackendSystem),
		huh.NewOption("Native clipboard (in-process)", clipboard.BackendNative),
		huh.NewOption("Terminal escape sequence (OSC 52, works over SSH)", clipboard.BackendOSC52),
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Clipboard backend").
				Options(options...).
				Value(&backend),
			huh.NewInput().
				Title("Catalog file").
				Description("Leave empty to use the built-in catalog.").
				Value(&catalogFile).
				Validate(validateCatalogPath),
			huh.NewInput().
				Title("Notification duration (seconds)").
				Description("0 keeps each notification until the next one.").
				Value(&toast).
				Validate(validateToastSeconds),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	seconds, _ := strconv.Atoi(toast)
	updated := config.Config{
		Catalog:      catalogFile,
		Clipboard:    backend,
		ToastSeconds: seconds,
	}
	return updated, updated.Validate()
}

func validateCatalogPath(path string) error {
	if path == "" {
		return nil
	}
	_, err := catalog.Load(path)
	return err
}

func validateToastSeconds(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number of seconds")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
