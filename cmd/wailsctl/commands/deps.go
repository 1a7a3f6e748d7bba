package commands

import "context"

// DepsCmd implements the 'deps' command.
type DepsCmd struct{}

func (DepsCmd) Run(g *Global) error {
	return g.Engine.Deps(context.Background())
}
