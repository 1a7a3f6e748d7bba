// Package config holds the project settings wailsctl reads from
// wailsctl.yaml, the environment, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration.
type Config struct {
	Tools    ToolsConfig    `yaml:"tools"`
	Frontend FrontendConfig `yaml:"frontend"`
	Test     TestConfig     `yaml:"test"`
	Coverage CoverageConfig `yaml:"coverage"`
	Clean    CleanConfig    `yaml:"clean"`
}

// ToolsConfig names the external executables to invoke. The env tags allow
// per-machine overrides without touching the project file.
type ToolsConfig struct {
	Wails string `yaml:"wails" env:"WAILSCTL_WAILS_BIN"`
	Go    string `yaml:"go" env:"WAILSCTL_GO_BIN"`
	Npm   string `yaml:"npm" env:"WAILSCTL_NPM_BIN"`
	Lint  string `yaml:"lint" env:"WAILSCTL_LINT_BIN"`
}

// FrontendConfig locates the frontend asset tree.
type FrontendConfig struct {
	Dir string `yaml:"dir"`
}

// TestConfig selects the package patterns the test command runs. The
// entry-point package is excluded by default since it needs built frontend
// assets to compile.
type TestConfig struct {
	Packages []string `yaml:"packages"`
}

// CoverageConfig names the coverage artifacts.
type CoverageConfig struct {
	Profile string `yaml:"profile"`
	Report  string `yaml:"report"`
}

// CleanConfig lists the paths the clean command removes, in order,
// relative to the project base directory.
type CleanConfig struct {
	Paths []string `yaml:"paths"`
}

// Default returns the configuration for a standard Wails project layout.
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			Wails: "wails",
			Go:    "go",
			Npm:   "npm",
			Lint:  "golangci-lint",
		},
		Frontend: FrontendConfig{Dir: "frontend"},
		Test:     TestConfig{Packages: []string{"./internal/...", "./pkg/..."}},
		Coverage: CoverageConfig{Profile: "coverage.out", Report: "coverage.html"},
		Clean: CleanConfig{Paths: []string{
			"build",
			"frontend/dist",
			"frontend/node_modules",
			"coverage.out",
			"coverage.html",
		}},
	}
}

// Load reads configuration from the specified file. A missing file is not
// an error: the defaults describe a standard Wails project. Environment
// overrides apply last.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		applyDefaults(cfg)
	}

	if err := env.Parse(&cfg.Tools); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields the project file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Tools.Wails == "" {
		cfg.Tools.Wails = def.Tools.Wails
	}
	if cfg.Tools.Go == "" {
		cfg.Tools.Go = def.Tools.Go
	}
	if cfg.Tools.Npm == "" {
		cfg.Tools.Npm = def.Tools.Npm
	}
	if cfg.Tools.Lint == "" {
		cfg.Tools.Lint = def.Tools.Lint
	}
	if cfg.Frontend.Dir == "" {
		cfg.Frontend.Dir = def.Frontend.Dir
	}
	if len(cfg.Test.Packages) == 0 {
		cfg.Test.Packages = def.Test.Packages
	}
	if cfg.Coverage.Profile == "" {
		cfg.Coverage.Profile = def.Coverage.Profile
	}
	if cfg.Coverage.Report == "" {
		cfg.Coverage.Report = def.Coverage.Report
	}
	if len(cfg.Clean.Paths) == 0 {
		cfg.Clean.Paths = def.Clean.Paths
	}
}

func (c *Config) validate() error {
	if !filepath.IsLocal(c.Frontend.Dir) {
		return fmt.Errorf("frontend dir must stay inside the project: %q", c.Frontend.Dir)
	}
	for _, p := range c.Clean.Paths {
		if !filepath.IsLocal(p) {
			return fmt.Errorf("clean path must stay inside the project: %q", p)
		}
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
