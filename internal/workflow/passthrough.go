package workflow

import "context"

// Dev starts the bundler's hot-reload development server. Output passes
// straight through to the operator's terminal.
func (e *Engine) Dev(ctx context.Context) error {
	return e.exec(ctx, e.cfg.Tools.Wails, "dev")
}

// Generate regenerates the Go/frontend binding module.
func (e *Engine) Generate(ctx context.Context) error {
	return e.exec(ctx, e.cfg.Tools.Wails, "generate", "module")
}

// Doctor runs the bundler's environment self-check.
func (e *Engine) Doctor(ctx context.Context) error {
	return e.exec(ctx, e.cfg.Tools.Wails, "doctor")
}
