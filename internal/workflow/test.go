package workflow

import (
	"context"
	"log/slog"

	"github.com/Advik-B/wailsctl/internal/logfields"
)

// TestOptions selects coverage mode for the test command.
type TestOptions struct {
	Coverage bool
}

// Test runs the Go test suites over the configured package patterns. With
// coverage enabled, a passing run is followed by exactly one
// report-generation call; a failing run produces no report.
func (e *Engine) Test(ctx context.Context, opts TestOptions) error {
	args := []string{"test", "-v"}
	if opts.Coverage {
		args = append(args, "-coverprofile="+e.cfg.Coverage.Profile)
	}
	args = append(args, e.cfg.Test.Packages...)

	if err := e.exec(ctx, e.cfg.Tools.Go, args...); err != nil {
		return err
	}
	if !opts.Coverage {
		return nil
	}

	slog.Info("Generating coverage report", logfields.Path(e.cfg.Coverage.Report))
	return e.exec(ctx, e.cfg.Tools.Go, "tool", "cover", "-html="+e.cfg.Coverage.Profile, "-o", e.cfg.Coverage.Report)
}
