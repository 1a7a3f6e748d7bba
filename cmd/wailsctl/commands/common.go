// Package commands declares the wailsctl command tree. One struct per
// command; flags only one command understands live on that command.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/Advik-B/wailsctl/internal/config"
	"github.com/Advik-B/wailsctl/internal/logfields"
	"github.com/Advik-B/wailsctl/internal/toolchain"
	"github.com/Advik-B/wailsctl/internal/workflow"
)

// Global carries the resolved per-run state into command Run methods.
type Global struct {
	BaseDir    string
	ConfigPath string
	Config     *config.Config
	Engine     *workflow.Engine
}

// CLI is the root command tree and its global flags.
type CLI struct {
	Dir     string           `short:"C" default:"." help:"Project base directory all relative paths resolve against"`
	Config  string           `default:"wailsctl.yaml" help:"Project configuration file, relative to the base directory"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Dev            DevCmd            `cmd:"" help:"Start the Wails development server with hot reload"`
	Build          BuildCmd          `cmd:"" help:"Build the production application bundle"`
	Test           TestCmd           `cmd:"" help:"Run the Go test suites"`
	Clean          CleanCmd          `cmd:"" help:"Remove build artifacts and caches"`
	Deps           DepsCmd           `cmd:"" help:"Download and tidy Go modules, then install frontend dependencies"`
	Lint           LintCmd           `cmd:"" help:"Run golangci-lint over the source tree"`
	Generate       GenerateCmd       `cmd:"" help:"Regenerate the Go/frontend binding module"`
	Doctor         DoctorCmd         `cmd:"" help:"Diagnose the Wails development environment"`
	InstallTooling InstallToolingCmd `cmd:"" help:"Install the Wails CLI itself"`
	Init           InitCmd           `cmd:"" help:"Write an example wailsctl.yaml"`
}

// AfterApply runs after flag parsing: resolve the base directory once,
// load the environment and project configuration, and set up logging.
// The process working directory is never changed.
func (c *CLI) AfterApply(g *Global) error {
	base, err := filepath.Abs(c.Dir)
	if err != nil {
		return fmt.Errorf("cannot resolve base directory: %w", err)
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("base directory does not exist: %s", base)
	}

	if err := config.LoadDotEnv(base); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(c.Verbose)}))
	slog.SetDefault(logger.With(logfields.RunID(uuid.NewString())))

	configPath := c.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(base, configPath)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	g.BaseDir = base
	g.ConfigPath = configPath
	g.Config = cfg
	g.Engine = workflow.New(cfg, toolchain.ExecRunner{}, base)
	return nil
}

// logLevel picks the log level: --verbose wins, then WAILSCTL_LOG_LEVEL.
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("WAILSCTL_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
