package workflow

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// wailsModule is the module path of the Wails CLI itself.
const wailsModule = "github.com/wailsapp/wails/v2/cmd/wails"

// InstallTooling installs the Wails CLI at the requested version via
// `go install`. Anything other than "latest" must parse as semver and is
// normalized to a v-prefixed full version before any invocation.
func (e *Engine) InstallTooling(ctx context.Context, toolVersion string) error {
	ref := "latest"
	if toolVersion != "" && toolVersion != "latest" {
		v, err := semver.NewVersion(toolVersion)
		if err != nil {
			return fmt.Errorf("invalid tool version %q: %w", toolVersion, err)
		}
		ref = "v" + v.String()
	}
	return e.exec(ctx, e.cfg.Tools.Go, "install", wailsModule+"@"+ref)
}
