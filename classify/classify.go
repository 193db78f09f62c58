package classify

import (
	"regexp"
	"strings"
)

// Regex table for the rule cascade (§4.2), compiled once at package
// init, mirroring the source's lazy_static! regex table.
var (
	internalCapRE = regexp.MustCompile(`\b\S+[A-Z]\S+\b`)
	capWordRE     = regexp.MustCompile(`\b[A-Z][^A-Z]+\b`)
	simileRE      = regexp.MustCompile(`\b(like|as)\b`)
)

// Parse classifies source using the process-wide default pronunciation
// dictionary. It panics only if that dictionary fails to load (a
// build-time defect); classification itself never fails.
func Parse(source string) Program {
	a, err := defaultAnalyzer()
	if err != nil {
		panic(err)
	}
	return a.Parse(source)
}

// Parse classifies source against a's bound dictionary, producing one
// Instruction per physical line (split on "\n"), in order, including
// blank lines and a trailing empty line if source ends in "\n".
func (a *Analyzer) Parse(source string) Program {
	rawLines := strings.Split(source, "\n")
	program := make(Program, 0, len(rawLines))

	hasPrev := false
	var prevRaw string

	for _, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")
		ins := a.classifyLine(raw, prevRaw, hasPrev)
		program = append(program, ins)
		prevRaw = raw
		hasPrev = true
	}

	return program
}

// classifyLine applies the ordered rule cascade to one raw line, given
// the immediately preceding raw line (and whether one exists).
func (a *Analyzer) classifyLine(raw, prevRaw string, hasPrev bool) Instruction {
	reg := R0
	if len(raw) > 0 && isWhitespaceByte(raw[0]) {
		reg = R1
	}
	retained := strings.TrimRight(raw, " \t\v\f")

	base := Instruction{Register: reg, Line: retained}

	switch {
	case strings.TrimSpace(raw) == "":
		base.Kind = Noop
		return base

	case a.CheckEndRhyme(prevRaw, hasPrev, raw):
		base.Kind = ConditionalPush
		base.PrevSyllables = a.CountSyllables(prevRaw)
		base.CurSyllables = a.CountSyllables(raw)
		return base

	case strings.Contains(raw, "/"):
		base.Kind = ConditionalGoto
		base.Operand = a.CountSyllables(raw)
		return base

	case internalCapRE.MatchString(raw):
		base.Kind = Negate
		return base

	case capWordRE.MatchString(raw):
		base.Kind = Multiply
		return base

	case simileRE.MatchString(raw):
		base.Kind = Add
		return base

	case strings.Contains(raw, "?"):
		base.Kind = PrintChar
		return base

	case strings.Contains(raw, "."):
		base.Kind = PrintValue
		return base

	case strings.Contains(raw, ","):
		base.Kind = Pop
		return base

	case strings.Contains(raw, "-"):
		base.Kind = Push
		return base

	case a.HasAlliteration(raw):
		base.Kind = Goto
		return base

	default:
		base.Kind = Store
		base.Operand = a.CountSyllables(raw)
		return base
	}
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
