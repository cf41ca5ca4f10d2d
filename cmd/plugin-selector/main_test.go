package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFlags sets the persistent flag variables for one test.
func withFlags(t *testing.T, cfgPath, cat, clip string) {
	t.Helper()
	oldCfg, oldCat, oldClip := configPath, catalogPath, clipboardName
	configPath, catalogPath, clipboardName = cfgPath, cat, clip
	t.Cleanup(func() {
		configPath, catalogPath, clipboardName = oldCfg, oldCat, oldClip
	})
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.Save(path, config.Config{
		Catalog:      "from-file.json",
		Clipboard:    clipboard.BackendNative,
		ToastSeconds: 7,
	}))

	withFlags(t, path, "", "")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.Catalog)
	assert.Equal(t, clipboard.BackendNative, cfg.Clipboard)

	withFlags(t, path, "flag.json", clipboard.BackendOSC52)
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Catalog)
	assert.Equal(t, clipboard.BackendOSC52, cfg.Clipboard)
	assert.Equal(t, 7, cfg.ToastSeconds)
}

func TestLoadConfigAcceptsUpperCaseBackendFlag(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "", "OSC52")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, clipboard.BackendOSC52, cfg.Clipboard)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "", "carrier-pigeon")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadEnvUsesCatalogFile(t *testing.T) {
	dir := t.TempDir()
	catFile := filepath.Join(dir, "plugins.json")
	require.NoError(t, os.WriteFile(catFile, []byte(`[{"name":"only","package_name":"p","version":"1","configs":{}}]`), 0644))

	withFlags(t, filepath.Join(dir, "missing.yaml"), catFile, clipboard.BackendOSC52)
	env, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, 1, env.catalog.Len())
	assert.NotNil(t, env.clipboard)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sel.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	text, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", text)

	_, err = readInput(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateToastSeconds(t *testing.T) {
	assert.NoError(t, validateToastSeconds("0"))
	assert.NoError(t, validateToastSeconds("10"))
	assert.Error(t, validateToastSeconds("-1"))
	assert.Error(t, validateToastSeconds("soon"))
}

func TestValidateCatalogPath(t *testing.T) {
	assert.NoError(t, validateCatalogPath(""))
	assert.Error(t, validateCatalogPath(filepath.Join(t.TempDir(), "missing.json")))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":"x"}`), 0644))
	assert.Error(t, validateCatalogPath(bad))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "plugin", pluralize(1, "plugin", "plugins"))
	assert.Equal(t, "plugins", pluralize(0, "plugin", "plugins"))
	assert.Equal(t, "plugins", pluralize(3, "plugin", "plugins"))
}
