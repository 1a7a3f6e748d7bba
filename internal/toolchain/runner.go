package toolchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/Advik-B/wailsctl/internal/logfields"
)

// Runner executes external tool invocations. Implementations block until
// the process exits; no timeout is imposed.
type Runner interface {
	Run(ctx context.Context, inv Invocation) Result
}

// ExecRunner runs invocations as real child processes with the parent's
// standard streams attached, so interactive tools stay usable.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, inv Invocation) Result {
	res := Result{Invocation: inv}

	path, err := exec.LookPath(inv.Name)
	if err != nil {
		res.Outcome = OutcomeNotFound
		res.Err = fmt.Errorf("%w: %w", ErrExecutableNotFound, err)
		slog.Error("Command not found", logfields.Tool(inv.Name), logfields.Error(err))
		return res
	}

	slog.Info("Running command", logfields.Tool(inv.Name), logfields.Args(inv.Args), logfields.Dir(inv.Dir))

	// #nosec G204 -- the executable and arguments come from the dispatcher, not user text
	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err == nil {
		res.Outcome = OutcomeCompleted
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Outcome = OutcomeExitError
		res.ExitCode = exitErr.ExitCode()
		if inv.TolerateExit {
			slog.Warn("Command exited non-zero", logfields.Tool(inv.Name), logfields.ExitCode(res.ExitCode))
			return res
		}
		res.Err = fmt.Errorf("%w: %s exited with code %d", ErrExecutionFailed, inv.Name, res.ExitCode)
		slog.Error("Command exited non-zero", logfields.Tool(inv.Name), logfields.ExitCode(res.ExitCode))
		return res
	}

	// The process could not be started or died without an exit code.
	res.Outcome = OutcomeExitError
	res.ExitCode = -1
	res.Err = fmt.Errorf("%w: %w", ErrExecutionFailed, err)
	slog.Error("Command failed to run", logfields.Tool(inv.Name), logfields.Error(err))
	return res
}
