// Package toolchain executes external developer tools and classifies how
// each invocation ended.
package toolchain

import "strings"

// Outcome classifies how an invocation ended.
type Outcome int

const (
	// OutcomeCompleted means the process ran and exited zero.
	OutcomeCompleted Outcome = iota
	// OutcomeExitError means the process ran and exited non-zero.
	OutcomeExitError
	// OutcomeNotFound means the executable could not be located on PATH.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExitError:
		return "exit_error"
	case OutcomeNotFound:
		return "not_found"
	}
	return "unknown"
}

// Invocation describes one external command to run.
type Invocation struct {
	// Name is the executable to look up on PATH.
	Name string
	// Args are passed verbatim to the process.
	Args []string
	// Dir is the working directory for the process. Empty means the
	// caller's working directory.
	Dir string
	// TolerateExit downgrades a non-zero exit from an error to a plain
	// result, for tools whose exit code carries meaning (linters).
	// Lookup failures are never tolerated.
	TolerateExit bool
}

// String renders the command roughly as it would be typed in a shell.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}

// Result reports how an invocation ended. Err is nil when the process
// exited zero or when a non-zero exit was tolerated.
type Result struct {
	Invocation Invocation
	Outcome    Outcome
	ExitCode   int
	Err        error
}

// Success reports whether the process ran and exited zero.
func (r Result) Success() bool {
	return r.Outcome == OutcomeCompleted
}
