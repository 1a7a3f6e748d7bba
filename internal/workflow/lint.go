package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/Advik-B/wailsctl/internal/toolchain"
)

// ErrLintFindings reports that the linter ran and found issues. It is
// distinct from toolchain.ErrExecutableNotFound so callers can tell "fix
// your code" apart from "install the linter".
var ErrLintFindings = errors.New("lint findings reported")

// Lint runs the linter across the whole source tree. The non-zero exit a
// linter uses to signal findings is tolerated at the runner level and
// classified here instead.
func (e *Engine) Lint(ctx context.Context) error {
	res := e.runner.Run(ctx, toolchain.Invocation{
		Name:         e.cfg.Tools.Lint,
		Args:         []string{"run", "./..."},
		Dir:          e.base,
		TolerateExit: true,
	})

	switch res.Outcome {
	case toolchain.OutcomeNotFound:
		return fmt.Errorf("%s is not installed: %w", e.cfg.Tools.Lint, res.Err)
	case toolchain.OutcomeExitError:
		if res.Err != nil {
			// The linter could not run at all; that is not a finding.
			return res.Err
		}
		return fmt.Errorf("%w: %s exited with code %d", ErrLintFindings, e.cfg.Tools.Lint, res.ExitCode)
	}
	return nil
}
