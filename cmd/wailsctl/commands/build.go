package commands

import (
	"context"

	"github.com/Advik-B/wailsctl/internal/workflow"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Clean bool `help:"Clean the bundler output before building"`
	Upx   bool `help:"Compress the final binary with UPX"`
}

func (b *BuildCmd) Run(g *Global) error {
	return g.Engine.Build(context.Background(), workflow.BuildOptions{
		Clean: b.Clean,
		UPX:   b.Upx,
	})
}
