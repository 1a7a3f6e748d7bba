package commands

import "context"

// LintCmd implements the 'lint' command.
type LintCmd struct{}

func (LintCmd) Run(g *Global) error {
	return g.Engine.Lint(context.Background())
}
