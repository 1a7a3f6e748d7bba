package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wailsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "wailsctl.yaml"))
	require.NoError(t, err)

	require.Equal(t, "wails", cfg.Tools.Wails)
	require.Equal(t, "go", cfg.Tools.Go)
	require.Equal(t, "npm", cfg.Tools.Npm)
	require.Equal(t, "golangci-lint", cfg.Tools.Lint)
	require.Equal(t, "frontend", cfg.Frontend.Dir)
	require.Equal(t, []string{"./internal/...", "./pkg/..."}, cfg.Test.Packages)
	require.Equal(t, "coverage.out", cfg.Coverage.Profile)
	require.Equal(t, "coverage.html", cfg.Coverage.Report)
	require.Equal(t, []string{
		"build",
		"frontend/dist",
		"frontend/node_modules",
		"coverage.out",
		"coverage.html",
	}, cfg.Clean.Paths)
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  npm: pnpm
test:
  packages:
    - ./...
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "pnpm", cfg.Tools.Npm)
	require.Equal(t, []string{"./..."}, cfg.Test.Packages)
	// Untouched fields keep their defaults.
	require.Equal(t, "wails", cfg.Tools.Wails)
	require.Equal(t, "coverage.out", cfg.Coverage.Profile)
	require.Len(t, cfg.Clean.Paths, 5)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("WAILSCTL_TEST_TOOLHOME", "/opt/wails-sdk")
	path := writeConfig(t, `
tools:
  wails: ${WAILSCTL_TEST_TOOLHOME}/bin/wails
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/wails-sdk/bin/wails", cfg.Tools.Wails)
}

func TestLoadEnvOverrideWins(t *testing.T) {
	path := writeConfig(t, `
tools:
  go: go1.24
`)
	t.Setenv("WAILSCTL_GO_BIN", "go1.25")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "go1.25", cfg.Tools.Go)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "tools: [")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmarshal")
}

func TestLoadRejectsEscapingCleanPath(t *testing.T) {
	path := writeConfig(t, `
clean:
  paths:
    - ../outside
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "clean path")
}

func TestLoadRejectsEscapingFrontendDir(t *testing.T) {
	path := writeConfig(t, `
frontend:
  dir: /tmp/elsewhere
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "frontend dir")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wailsctl.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	t.Run("refuses overwrite", func(t *testing.T) {
		err := Init(path, false)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already exists")
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, Init(path, true))
	})
}
