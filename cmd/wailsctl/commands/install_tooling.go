package commands

import "context"

// InstallToolingCmd implements the 'install-tooling' command.
type InstallToolingCmd struct {
	ToolVersion string `default:"latest" help:"Wails CLI version to install (semver or 'latest')"`
}

func (i *InstallToolingCmd) Run(g *Global) error {
	return g.Engine.InstallTooling(context.Background(), i.ToolVersion)
}
