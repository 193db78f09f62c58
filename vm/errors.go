package vm

import "fmt"

// StepLimitError is returned by ExecuteWithLimit when a program runs
// past the caller-supplied step budget. It is never produced by
// Execute: per spec §5, execution is unbounded and the caller's
// responsibility unless they opt into a limit (config.Execution.MaxSteps).
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("vm: exceeded step limit of %d instructions", e.Limit)
}
