package jit

import (
	"strconv"

	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/ashpaper-run/ashpaper/jit/ir"
)

// Interpret runs f as the reference IR backend: it stands in for the
// native code generator spec §1 places out of scope, executing the same
// IR a real backend would be handed. Unlike vm.Execute, Interpret can
// fail with a *TrapError — the JIT's documented divergence from the
// interpreter (spec §7, §9).
func Interpret(f *ir.Func) (string, error) {
	if f.Empty() {
		return "", nil
	}

	var r0, r1 int64
	stack := make([]int64, 0, ir.StackSlots)
	out := make([]byte, 0, 64)

	active := func(reg classify.Register) int64 {
		if reg == classify.R0 {
			return r0
		}
		return r1
	}
	inactive := func(reg classify.Register) int64 {
		if reg == classify.R0 {
			return r1
		}
		return r0
	}
	setActive := func(reg classify.Register, v int64) {
		if reg == classify.R0 {
			r0 = v
		} else {
			r1 = v
		}
	}
	push := func(v int64) (trapped bool) {
		if len(stack) == ir.StackSlots {
			return true
		}
		stack = append(stack, v)
		return false
	}
	pop := func(reg classify.Register) {
		n := len(stack)
		if n == 0 {
			return
		}
		setActive(reg, stack[n-1])
		stack = stack[:n-1]
	}

	idx := 0
	for {
		block := f.Blocks[idx]
		in := block.Instr
		reg := in.Reg
		a := active(reg)
		i := inactive(reg)
		branchedTo := -1

		switch in.Op {
		case ir.OpNoop:

		case ir.OpConst:
			setActive(reg, in.Imm)

		case ir.OpNeg:
			setActive(reg, -a)

		case ir.OpMul:
			setActive(reg, a*i)

		case ir.OpAdd:
			setActive(reg, a+i)

		case ir.OpPush:
			if push(a) {
				branchedTo = f.TrapStackOverflow
			}

		case ir.OpPop:
			pop(reg)

		case ir.OpCallPutValue:
			out = strconv.AppendInt(out, a, 10)

		case ir.OpCallPutChar:
			out = append(out, string(rune(absInt64(a)%255))...)

		case ir.OpBranchTable:
			target := jumpTarget(a, f.N)
			if target < 0 {
				branchedTo = f.TrapUnreachable
			} else {
				branchedTo = target
			}

		case ir.OpCondBranchTable:
			if a > in.Imm {
				target := jumpTarget(absInt64(i), f.N)
				if target < 0 {
					branchedTo = f.TrapUnreachable
				} else {
					branchedTo = target
				}
			}

		case ir.OpCondPush:
			var v int64
			if a < i {
				v = in.A
			} else {
				v = in.B
			}
			if push(v) {
				branchedTo = f.TrapStackOverflow
			}

		case ir.OpTrapUnreachable:
			return string(out), &TrapError{Kind: TrapUnreachable, BlockIndex: block.Index}

		case ir.OpTrapStackOverflow:
			return string(out), &TrapError{Kind: TrapStackOverflow, BlockIndex: block.Index}
		}

		if branchedTo >= 0 {
			idx = branchedTo
			continue
		}
		idx++
		if idx >= f.N {
			return string(out), nil
		}
	}
}

// jumpTarget returns v as a direct (non-modulo) block index if it falls
// in [0, n), or -1 if out of range — spec §4.4's documented divergence
// from the interpreter's modulo-indexed Goto.
func jumpTarget(v int64, n int) int {
	if v < 0 || v >= int64(n) {
		return -1
	}
	return int(v)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
