package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/plugin-selector/cmd/plugin-selector/tui"
	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/config"
	"github.com/ruminaider/plugin-selector/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath    string
	catalogPath   string
	clipboardName string
	debugLog      bool
)

var logFile *os.File

var rootCmd = &cobra.Command{
	Use:   "plugin-selector",
	Short: "Pick gateway plugins and copy their JSON configuration",
	Long: "plugin-selector shows the plugin catalog next to an editable JSON configuration. " +
		"Toggling a plugin updates the JSON, editing the JSON updates the checklist, " +
		"and the result can be copied to the clipboard.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(debugLog)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: runSelector,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plugin-selector %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.plugin-selector/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Plugin catalog JSON file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&clipboardName, "clipboard", "", "Clipboard backend: system, native or osc52")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write a debug log to ~/.plugin-selector/debug.log")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSelector(cmd *cobra.Command, args []string) error {
	// TTY guard: without a terminal there is nothing to draw on, so fall
	// back to listing the catalog.
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return listCmd.RunE(listCmd, nil)
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	model := tui.NewModel(env.catalog, env.clipboard, tui.Options{
		ToastDuration: env.cfg.ToastDuration(),
		Context:       cmd.Context(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging routes slog to the debug log file, or discards it. The
// terminal belongs to the UI, so nothing is ever logged to stderr.
func setupLogging(debug bool) error {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	path := paths.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logFile = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("plugin-selector starting", "version", version)
	return nil
}

// environment is everything a command needs after flags and the config
// file are merged.
type environment struct {
	cfg       config.Config
	catalog   *catalog.Catalog
	clipboard clipboard.Writer
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return paths.ConfigFile()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return config.Config{}, err
	}
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}
	if clipboardName != "" {
		cfg.Clipboard = clipboardName
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadEnv() (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	clip, err := clipboard.Open(cfg.Clipboard, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.Debug("environment loaded",
		"catalog", cfg.Catalog, "plugins", cat.Len(), "clipboard", cfg.Clipboard)
	return &environment{cfg: cfg, catalog: cat, clipboard: clip}, nil
}

// readInput returns the contents of path, or stdin when path is "" or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
