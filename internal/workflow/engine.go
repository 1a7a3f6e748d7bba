// Package workflow maps wailsctl commands onto ordered tool invocations
// and the local side effects around them.
package workflow

import (
	"context"

	"github.com/Advik-B/wailsctl/internal/config"
	"github.com/Advik-B/wailsctl/internal/toolchain"
)

// Engine dispatches commands against one project directory. All relative
// paths resolve against the base directory; the process working directory
// is never consulted.
type Engine struct {
	cfg    *config.Config
	runner toolchain.Runner
	base   string
}

// New wires an engine for the project at baseDir.
func New(cfg *config.Config, runner toolchain.Runner, baseDir string) *Engine {
	return &Engine{cfg: cfg, runner: runner, base: baseDir}
}

// exec runs one tool in the project base directory and reduces the result
// to an error.
func (e *Engine) exec(ctx context.Context, name string, args ...string) error {
	res := e.runner.Run(ctx, toolchain.Invocation{Name: name, Args: args, Dir: e.base})
	return res.Err
}
