// Package ir defines the generic SSA-shaped intermediate representation
// that jit.Compile lowers classified AshPaper programs into (spec
// §4.4). It models exactly the primitives spec §4.4 requires of a
// backend: blocks forming a jump table, two integer SSA variables, a
// fixed-size stack slot with start/end/top tracking variables, trap
// blocks, and two imported runtime calls — nothing more.
package ir

import "github.com/ashpaper-run/ashpaper/classify"

// Op tags one IR instruction. Each Block holds exactly one, mirroring
// one classify.Instruction per spec §4.4's "one IR block per source
// instruction".
type Op int

const (
	OpNoop Op = iota
	OpConst
	OpNeg
	OpMul
	OpAdd
	OpPush
	OpPop
	OpCallPutValue
	OpCallPutChar
	OpBranchTable       // Goto: indexed directly by the active register's value, no modulo
	OpCondBranchTable   // ConditionalGoto: if active > Imm, branch indexed by |inactive|
	OpCondPush          // ConditionalPush: if active < inactive push A else push B
	OpTrapUnreachable   // computed-goto index out of [0, N)
	OpTrapStackOverflow // Push when the stack slot is full
)

// Instr is one block's body.
type Instr struct {
	Op  Op
	Reg classify.Register

	// Imm carries Store's value, ConditionalGoto's comparand.
	Imm int64

	// A, B carry ConditionalPush's prev/cur operands.
	A, B int64
}

// Block is one jump-table entry. Index matches its position in
// Func.Blocks and, for the first N blocks, the source instruction index
// it was lowered from.
type Block struct {
	Index  int
	Instr  Instr
	Source classify.Instruction
}

// StackSlots is the fixed stack slot size spec §4.4 mandates for the
// JIT backend (the interpreter's stack is unbounded by contrast).
const StackSlots = 128

// Func is a fully lowered program: N ordinary blocks (one per source
// instruction) plus two trap blocks appended at fixed indices.
type Func struct {
	Blocks []Block

	// TrapUnreachable and TrapStackOverflow are indices into Blocks of
	// the two dedicated trap blocks spec §4.4 requires.
	TrapUnreachable   int
	TrapStackOverflow int

	// N is the number of ordinary (non-trap) blocks, i.e. len(source
	// program). Jump tables are keyed against N, not len(Blocks).
	N int
}

// Empty reports whether this Func has no ordinary blocks to execute; a
// JIT backend compiling an empty program "immediately returns without
// executing any block" (spec §4.4).
func (f *Func) Empty() bool { return f.N == 0 }
