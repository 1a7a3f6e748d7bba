package commands

import (
	"fmt"

	"github.com/Advik-B/wailsctl/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(g *Global) error {
	if err := config.Init(g.ConfigPath, i.Force); err != nil {
		return err
	}
	fmt.Println("Wrote", g.ConfigPath)
	return nil
}
