package commands

import "context"

// DevCmd implements the 'dev' command.
type DevCmd struct{}

func (DevCmd) Run(g *Global) error {
	return g.Engine.Dev(context.Background())
}
