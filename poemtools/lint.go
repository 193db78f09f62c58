// Package poemtools provides static advisory diagnostics and a
// canonical formatter over a classified classify.Program. Neither ever
// rejects a program — classification is total (spec §1 Non-goals) — so
// Lint only ever produces advisory Issues, never parse errors.
package poemtools

import (
	"fmt"

	"github.com/ashpaper-run/ashpaper/classify"
)

// Severity levels an Issue, mirroring teacher's LintLevel.
type Severity int

const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "info"
}

// Issue is one advisory finding.
type Issue struct {
	Severity Severity
	Line     int // zero-based index into the Program
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: line %d: %s", i.Severity, i.Line, i.Message)
}

// Lint scans prog for classification curiosities that are valid per
// spec §4.2 but are likely authoring mistakes.
func Lint(prog classify.Program) []Issue {
	var issues []Issue

	if len(prog) == 0 {
		issues = append(issues, Issue{Severity: Info, Line: 0, Message: "empty program produces no output"})
		return issues
	}

	storedTo := map[classify.Register]bool{}
	for i, ins := range prog {
		switch ins.Kind {
		case classify.Store:
			storedTo[ins.Register] = true

		case classify.Goto:
			if !storedTo[ins.Register] {
				issues = append(issues, Issue{
					Severity: Warning, Line: i,
					Message: fmt.Sprintf("Goto @ %s before any Store to %s: jumps to index 0 every time", ins.Register, ins.Register),
				})
			}
		}

		if i == len(prog)-1 && (ins.Kind == classify.Goto || ins.Kind == classify.ConditionalGoto) {
			issues = append(issues, Issue{
				Severity: Info, Line: i,
				Message: "program's last line is a branch; its target, not fallthrough, decides whether execution halts here",
			})
		}
	}

	return issues
}
