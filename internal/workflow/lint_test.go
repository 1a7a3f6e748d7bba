package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Advik-B/wailsctl/internal/toolchain"
)

func TestLintCleanRun(t *testing.T) {
	eng, runner, base := newEngine(t)

	require.NoError(t, eng.Lint(context.Background()))

	require.Len(t, runner.Calls, 1)
	inv := runner.Calls[0]
	require.Equal(t, "golangci-lint", inv.Name)
	require.Equal(t, []string{"run", "./..."}, inv.Args)
	require.Equal(t, base, inv.Dir)
	require.True(t, inv.TolerateExit, "the linter's exit code is classified by the dispatcher")
}

func TestLintFindings(t *testing.T) {
	eng, _, _ := newEngine(t, toolchain.ExitedWith(1))

	err := eng.Lint(context.Background())

	require.ErrorIs(t, err, ErrLintFindings)
	require.NotErrorIs(t, err, toolchain.ErrExecutableNotFound)
}

func TestLintBinaryMissing(t *testing.T) {
	eng, _, _ := newEngine(t, toolchain.NotFound())

	err := eng.Lint(context.Background())

	require.ErrorIs(t, err, toolchain.ErrExecutableNotFound)
	require.NotErrorIs(t, err, ErrLintFindings)
	require.Contains(t, err.Error(), "not installed")
}
