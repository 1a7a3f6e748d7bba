package commands

import "fmt"

// CleanCmd implements the 'clean' command.
type CleanCmd struct{}

func (CleanCmd) Run(g *Global) error {
	sum, err := g.Engine.Clean()
	fmt.Printf("Removed %d path(s), skipped %d missing\n", len(sum.Removed), len(sum.Skipped))
	return err
}
