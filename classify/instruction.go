// Package classify turns AshPaper source text into a flat, ordered
// instruction list. Classification is total: every physical line of a
// poem, including blank ones, produces exactly one Instruction, and no
// rule in the cascade can fail.
package classify

import "fmt"

// Kind tags the eleven (plus Noop) instruction variants a line can
// classify to. The zero value is Noop.
type Kind int

const (
	Noop Kind = iota
	ConditionalPush
	ConditionalGoto
	Negate
	Multiply
	Add
	PrintChar
	PrintValue
	Pop
	Push
	Goto
	Store
)

var kindNames = [...]string{
	Noop:            "Noop",
	ConditionalPush: "ConditionalPush",
	ConditionalGoto: "ConditionalGoto",
	Negate:          "Negate",
	Multiply:        "Multiply",
	Add:             "Add",
	PrintChar:       "PrintChar",
	PrintValue:      "PrintValue",
	Pop:             "Pop",
	Push:            "Push",
	Goto:            "Goto",
	Store:           "Store",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Register names one of the machine's two integer cells.
type Register int

const (
	R0 Register = iota
	R1
)

func (r Register) String() string {
	if r == R0 {
		return "R0"
	}
	return "R1"
}

// Other returns the register not r.
func (r Register) Other() Register {
	if r == R0 {
		return R1
	}
	return R0
}

// Instruction is one classified line.
type Instruction struct {
	Kind     Kind
	Register Register
	Line     string // raw line, trailing whitespace stripped; retained for tracing only

	// Operand carries the single-integer operand for Store and
	// ConditionalGoto; it is the instruction's syllable count in both
	// cases.
	Operand int

	// PrevSyllables and CurSyllables carry ConditionalPush's two
	// operands. Unused (zero) for every other kind.
	PrevSyllables int
	CurSyllables  int
}

func (ins Instruction) String() string {
	switch ins.Kind {
	case Store:
		return fmt.Sprintf("Store(%d) @ %s", ins.Operand, ins.Register)
	case ConditionalGoto:
		return fmt.Sprintf("ConditionalGoto(%d) @ %s", ins.Operand, ins.Register)
	case ConditionalPush:
		return fmt.Sprintf("ConditionalPush{prev=%d, cur=%d} @ %s", ins.PrevSyllables, ins.CurSyllables, ins.Register)
	default:
		return fmt.Sprintf("%s @ %s", ins.Kind, ins.Register)
	}
}

// Program is the fixed, ordered result of classifying a whole source
// string. It is immutable once returned by Parse.
type Program []Instruction

// Len is the program length N used for modulo-indexed goto targets.
func (p Program) Len() int { return len(p) }
