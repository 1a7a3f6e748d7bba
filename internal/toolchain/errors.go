package toolchain

import "errors"

var (
	// ErrExecutableNotFound indicates the requested tool is not on PATH.
	ErrExecutableNotFound = errors.New("executable not found")
	// ErrExecutionFailed indicates the tool started but did not exit cleanly.
	ErrExecutionFailed = errors.New("command execution failed")
)
