package commands

import "context"

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct{}

func (GenerateCmd) Run(g *Global) error {
	return g.Engine.Generate(context.Background())
}

// DoctorCmd implements the 'doctor' command.
type DoctorCmd struct{}

func (DoctorCmd) Run(g *Global) error {
	return g.Engine.Doctor(context.Background())
}
