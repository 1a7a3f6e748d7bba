package commands

import (
	"context"

	"github.com/Advik-B/wailsctl/internal/workflow"
)

// TestCmd implements the 'test' command.
type TestCmd struct {
	Coverage bool `help:"Record a coverage profile and render an HTML report"`
}

func (t *TestCmd) Run(g *Global) error {
	return g.Engine.Test(context.Background(), workflow.TestOptions{Coverage: t.Coverage})
}
