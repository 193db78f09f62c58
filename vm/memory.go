// Package vm implements the two-register, single-stack interpreter for
// classified AshPaper programs (spec §3, §4.3).
package vm

import "github.com/ashpaper-run/ashpaper/classify"

// Memory is the mutable machine state for one execution. A Memory value
// is owned by exactly one Execute call; there is no cross-run state.
type Memory struct {
	R0, R1 int64
	Stack  []int64
	IP     int
}

// Active returns the value of the register nominated by reg.
func (m *Memory) Active(reg classify.Register) int64 {
	if reg == classify.R0 {
		return m.R0
	}
	return m.R1
}

// Inactive returns the value of the register not nominated by reg.
func (m *Memory) Inactive(reg classify.Register) int64 {
	return m.Active(reg.Other())
}

// SetActive writes v into the register nominated by reg.
func (m *Memory) SetActive(reg classify.Register, v int64) {
	if reg == classify.R0 {
		m.R0 = v
	} else {
		m.R1 = v
	}
}

// Push pushes v onto the stack. The interpreter's stack is unbounded
// (spec §3); only the JIT's reference backend enforces the 128-slot
// limit and traps on overflow.
func (m *Memory) Push(v int64) {
	m.Stack = append(m.Stack, v)
}

// Pop removes and returns the top of the stack. ok is false, and v is
// zero, if the stack was empty.
func (m *Memory) Pop() (v int64, ok bool) {
	n := len(m.Stack)
	if n == 0 {
		return 0, false
	}
	v = m.Stack[n-1]
	m.Stack = m.Stack[:n-1]
	return v, true
}
