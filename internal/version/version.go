package version

import "fmt"

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X github.com/Advik-B/wailsctl/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the single-line form used by the --version flag.
func String() string {
	return fmt.Sprintf("wailsctl %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
