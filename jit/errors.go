package jit

import "fmt"

// TrapKind names which of the two documented runtime traps (spec §7)
// fired.
type TrapKind int

const (
	TrapUnreachable TrapKind = iota
	TrapStackOverflow
)

func (k TrapKind) String() string {
	if k == TrapStackOverflow {
		return "stack overflow"
	}
	return "computed-goto index out of range"
}

// TrapError reports a JIT runtime trap: an abort-equivalent the
// interpreter path never raises for the same program, since the
// interpreter normalizes goto targets by modulo and grows its stack
// unbounded (spec §7, §9).
type TrapError struct {
	Kind       TrapKind
	BlockIndex int
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("jit: trap at block %d: %s", e.BlockIndex, e.Kind)
}
