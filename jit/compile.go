// Package jit lowers classified AshPaper programs to the generic SSA IR
// defined in jit/ir (spec §4.4), and provides a reference backend that
// interprets that IR directly. The IR lowering is the spec's actual
// scope; a native-code-generating backend is explicitly out of scope
// (spec §1 treats it as "an IR sink with documented opcode
// requirements") — Interpret is that sink, generalized from teacher's
// encoder.Encoder (one typed instruction in, one target representation
// out, routed by kind).
package jit

import (
	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/ashpaper-run/ashpaper/jit/ir"
)

// Compile lowers prog to IR. It never fails: lowering, like
// classification, is total over every Kind spec §4.2 defines.
func Compile(prog classify.Program) *ir.Func {
	n := len(prog)
	blocks := make([]ir.Block, 0, n+2)

	for i, ins := range prog {
		blocks = append(blocks, ir.Block{Index: i, Instr: lower(ins), Source: ins})
	}

	trapUnreachable := n
	blocks = append(blocks, ir.Block{Index: trapUnreachable, Instr: ir.Instr{Op: ir.OpTrapUnreachable}})
	trapOverflow := n + 1
	blocks = append(blocks, ir.Block{Index: trapOverflow, Instr: ir.Instr{Op: ir.OpTrapStackOverflow}})

	return &ir.Func{
		Blocks:            blocks,
		TrapUnreachable:   trapUnreachable,
		TrapStackOverflow: trapOverflow,
		N:                 n,
	}
}

// lower maps one classify.Instruction to its IR op (spec §4.4 "lowering
// per kind mirrors §4.3").
func lower(ins classify.Instruction) ir.Instr {
	base := ir.Instr{Reg: ins.Register}
	switch ins.Kind {
	case classify.Noop:
		base.Op = ir.OpNoop
	case classify.Store:
		base.Op = ir.OpConst
		base.Imm = int64(ins.Operand)
	case classify.Negate:
		base.Op = ir.OpNeg
	case classify.Multiply:
		base.Op = ir.OpMul
	case classify.Add:
		base.Op = ir.OpAdd
	case classify.Push:
		base.Op = ir.OpPush
	case classify.Pop:
		base.Op = ir.OpPop
	case classify.PrintValue:
		base.Op = ir.OpCallPutValue
	case classify.PrintChar:
		base.Op = ir.OpCallPutChar
	case classify.Goto:
		base.Op = ir.OpBranchTable
	case classify.ConditionalGoto:
		base.Op = ir.OpCondBranchTable
		base.Imm = int64(ins.Operand)
	case classify.ConditionalPush:
		base.Op = ir.OpCondPush
		base.A = int64(ins.PrevSyllables)
		base.B = int64(ins.CurSyllables)
	}
	return base
}
