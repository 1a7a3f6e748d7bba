package toolchain

import (
	"context"
	"fmt"
)

// Completed, ExitedWith and NotFound build the outcomes a ScriptedRunner
// replays.
func Completed() Result {
	return Result{Outcome: OutcomeCompleted}
}

func ExitedWith(code int) Result {
	return Result{Outcome: OutcomeExitError, ExitCode: code}
}

func NotFound() Result {
	return Result{Outcome: OutcomeNotFound}
}

// ScriptedRunner replays queued outcomes in order while recording every
// invocation it receives; useful in tests. When the script is exhausted
// (or for the zero value) every call completes successfully.
type ScriptedRunner struct {
	Script []Result
	Calls  []Invocation
}

func (s *ScriptedRunner) Run(_ context.Context, inv Invocation) Result {
	s.Calls = append(s.Calls, inv)

	res := Completed()
	if len(s.Script) > 0 {
		res = s.Script[0]
		s.Script = s.Script[1:]
	}
	res.Invocation = inv

	switch res.Outcome {
	case OutcomeNotFound:
		res.Err = fmt.Errorf("%w: %s", ErrExecutableNotFound, inv.Name)
	case OutcomeExitError:
		if !inv.TolerateExit {
			res.Err = fmt.Errorf("%w: %s exited with code %d", ErrExecutionFailed, inv.Name, res.ExitCode)
		}
	}
	return res
}
