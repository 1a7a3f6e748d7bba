package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Advik-B/wailsctl/cmd/wailsctl/commands"
	"github.com/Advik-B/wailsctl/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{}

	ctx := kong.Parse(cli,
		kong.Name("wailsctl"),
		kong.Description("Build orchestration front end for Wails projects."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %s failed: %v\n", ctx.Command(), err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s completed successfully\n", ctx.Command())
}
