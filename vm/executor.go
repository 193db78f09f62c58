package vm

import (
	"strconv"

	"github.com/ashpaper-run/ashpaper/classify"
)

// Options configures one Execute call. The zero value runs unbounded
// with no tracing or statistics, matching spec §5's default (no
// cancellation, no timeouts, caller opts in to limits).
type Options struct {
	// MaxSteps bounds the number of dispatched instructions; zero means
	// unbounded. This is the config.Execution.MaxSteps safety net, off
	// by default.
	MaxSteps int

	// Trace, if non-nil, records one TraceEntry per dispatched
	// instruction.
	Trace *ExecutionTrace

	// Stats, if non-nil, accumulates per-kind dispatch counts.
	Stats *Statistics
}

// Execute runs prog to completion against a fresh Memory and returns the
// accumulated output. Per spec §4.3, the interpreter is infallible at
// the language level; it never returns an error unless opts.MaxSteps is
// exceeded.
func Execute(prog classify.Program) string {
	out, _ := ExecuteWithOptions(prog, Options{})
	return out
}

// ExecuteWithOptions is Execute with tracing, statistics, and an
// optional step limit.
func ExecuteWithOptions(prog classify.Program, opts Options) (string, error) {
	n := len(prog)
	if n == 0 {
		return "", nil
	}

	m := &Memory{}
	out := make([]byte, 0, 64)
	steps := 0

	for m.IP < n {
		if opts.MaxSteps > 0 {
			steps++
			if steps > opts.MaxSteps {
				return string(out), &StepLimitError{Limit: opts.MaxSteps}
			}
		}

		ins, chunk := Step(prog, m)
		out = append(out, chunk...)

		if opts.Trace != nil {
			opts.Trace.record(TraceEntry{Index: m.IP, Instruction: ins, R0: m.R0, R1: m.R1, StackDepth: len(m.Stack)})
		}
		if opts.Stats != nil {
			opts.Stats.record(ins.Kind, len(m.Stack))
		}
	}

	return string(out), nil
}

// Step dispatches exactly one instruction, the one at m.IP, mutating m
// in place and returning it along with any bytes it wrote to output.
// Callers (ExecuteWithOptions, the debugger's single-step command) must
// not call Step once m.IP is out of range for prog.
func Step(prog classify.Program, m *Memory) (classify.Instruction, []byte) {
	n := len(prog)
	ins := prog[m.IP]
	reg := ins.Register
	active := m.Active(reg)
	inactive := m.Inactive(reg)
	branched := false
	var out []byte

	switch ins.Kind {
	case classify.Noop:
		// no state change

	case classify.Store:
		m.SetActive(reg, int64(ins.Operand))

	case classify.Negate:
		m.SetActive(reg, -active)

	case classify.Multiply:
		m.SetActive(reg, active*inactive)

	case classify.Add:
		m.SetActive(reg, active+inactive)

	case classify.Push:
		m.Push(active)

	case classify.Pop:
		if v, ok := m.Pop(); ok {
			m.SetActive(reg, v)
		}

	case classify.PrintValue:
		out = strconv.AppendInt(out, active, 10)

	case classify.PrintChar:
		out = appendISOChar(out, byte(absInt64(active)%255))

	case classify.Goto:
		m.IP = wrapIndex(active, n)
		branched = true

	case classify.ConditionalGoto:
		if active > int64(ins.Operand) {
			m.IP = wrapIndex(inactive, n)
			branched = true
		}

	case classify.ConditionalPush:
		if active < inactive {
			m.Push(int64(ins.PrevSyllables))
		} else {
			m.Push(int64(ins.CurSyllables))
		}
	}

	if !branched {
		m.IP++
	}

	return ins, out
}

// appendISOChar appends the UTF-8 encoding of the Unicode code point
// numerically equal to b (ISO-8859-1 interpretation, per spec §4.3/§9)
// to out. b is always in [0,254] at the call site, since PrintChar
// masks with %255 first.
func appendISOChar(out []byte, b byte) []byte {
	return append(out, string(rune(b))...)
}

func absInt64(v int64) int64 {
	if v < 0 {
		v = -v
	}
	if v < 0 {
		// v was the two's-complement minimum and negation wrapped back
		// to itself; accept the wraparound rather than trap (spec §4.3).
		return v
	}
	return v
}

func wrapIndex(v int64, n int) int {
	av := absInt64(v)
	if av < 0 {
		// two's-complement minimum: reinterpret via unsigned arithmetic
		// rather than trap.
		return int(uint64(av) % uint64(n))
	}
	return int(av % int64(n))
}
