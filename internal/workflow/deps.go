package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/Advik-B/wailsctl/internal/logfields"
	"github.com/Advik-B/wailsctl/internal/toolchain"
)

// Deps refreshes the Go module graph and, when the project has a frontend
// tree, its npm dependencies. The frontend phase is never attempted when
// the Go phase fails.
func (e *Engine) Deps(ctx context.Context) error {
	// Fail fast with a clear diagnostic when the base directory is not a
	// Go module, instead of surfacing a confusing `go mod download` error.
	modPath := filepath.Join(e.base, "go.mod")
	data, err := os.ReadFile(modPath)
	if err != nil {
		return fmt.Errorf("not a Go module (cannot read %s): %w", modPath, err)
	}
	mod, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return fmt.Errorf("invalid go.mod: %w", err)
	}
	if mod.Module == nil || mod.Module.Mod.Path == "" {
		return fmt.Errorf("go.mod is missing a module directive: %s", modPath)
	}
	slog.Info("Refreshing dependencies", logfields.Module(mod.Module.Mod.Path))

	if err := e.exec(ctx, e.cfg.Tools.Go, "mod", "download"); err != nil {
		return err
	}
	if err := e.exec(ctx, e.cfg.Tools.Go, "mod", "tidy"); err != nil {
		return err
	}

	frontendDir := filepath.Join(e.base, e.cfg.Frontend.Dir)
	info, err := os.Stat(frontendDir)
	if os.IsNotExist(err) {
		slog.Info("No frontend directory, skipping npm install", logfields.Dir(frontendDir))
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("frontend path is not a directory: %s", frontendDir)
	}

	res := e.runner.Run(ctx, toolchain.Invocation{
		Name: e.cfg.Tools.Npm,
		Args: []string{"install"},
		Dir:  frontendDir,
	})
	return res.Err
}
