package workflow

import "context"

// BuildOptions selects the optional bundler build flags.
type BuildOptions struct {
	Clean bool
	UPX   bool
}

// Build produces a production application bundle. Option flags append
// after the base arguments, clean before upx.
func (e *Engine) Build(ctx context.Context, opts BuildOptions) error {
	args := []string{"build"}
	if opts.Clean {
		args = append(args, "-clean")
	}
	if opts.UPX {
		args = append(args, "-upx")
	}
	return e.exec(ctx, e.cfg.Tools.Wails, args...)
}
