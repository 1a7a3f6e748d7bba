package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCommand  = "command"
	KeyTool     = "tool"
	KeyArgs     = "args"
	KeyDir      = "dir"
	KeyPath     = "path"
	KeyExitCode = "exit_code"
	KeyModule   = "module"
	KeyRunID    = "run_id"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Command(name string) slog.Attr { return slog.String(KeyCommand, name) }
func Tool(name string) slog.Attr    { return slog.String(KeyTool, name) }
func Args(args []string) slog.Attr  { return slog.Any(KeyArgs, args) }
func Dir(dir string) slog.Attr      { return slog.String(KeyDir, dir) }
func Path(path string) slog.Attr    { return slog.String(KeyPath, path) }
func ExitCode(code int) slog.Attr   { return slog.Int(KeyExitCode, code) }
func Module(path string) slog.Attr  { return slog.String(KeyModule, path) }
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
