package debugger

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ashpaper-run/ashpaper/classify"
)

func countdownProgram() classify.Program {
	return classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 3, Line: "store 3"},
		{Kind: classify.PrintValue, Register: classify.R0, Line: "print"},
		{Kind: classify.Negate, Register: classify.R0, Line: "negate"},
		{Kind: classify.Store, Register: classify.R1, Operand: 1, Line: "store 1"},
		{Kind: classify.Add, Register: classify.R0, Line: "add"},
		{Kind: classify.Negate, Register: classify.R0, Line: "negate"},
		{Kind: classify.ConditionalGoto, Register: classify.R0, Operand: 0, Line: "cond goto"},
	}
}

func TestStepExecutesOneInstructionAtATime(t *testing.T) {
	d := NewDebugger(classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 4, Line: "somebody once"},
		{Kind: classify.PrintValue, Register: classify.R0, Line: "test."},
	})

	if _, err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if d.Memory.R0 != 4 {
		t.Fatalf("R0 = %d, want 4", d.Memory.R0)
	}
	if _, err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !d.Finished() {
		t.Fatalf("expected program to be finished")
	}
	if d.Output.String() != "4" {
		t.Errorf("Output = %q, want %q", d.Output.String(), "4")
	}
}

func TestBreakpointStopsContinue(t *testing.T) {
	d := NewDebugger(countdownProgram())
	d.Breakpoints.Add(4, false)

	bp, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if bp == nil || bp.Line != 4 {
		t.Fatalf("Continue() stopped at %+v, want breakpoint at line 4", bp)
	}
	if d.Memory.IP != 4 {
		t.Errorf("IP = %d, want 4", d.Memory.IP)
	}
}

func TestContinueWithoutBreakpointsRunsToCompletion(t *testing.T) {
	d := NewDebugger(countdownProgram())
	bp, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if bp != nil {
		t.Errorf("expected no breakpoint hit, got %+v", bp)
	}
	if !d.Finished() {
		t.Errorf("expected program finished")
	}
	if d.Output.String() != "321" {
		t.Errorf("Output = %q, want %q", d.Output.String(), "321")
	}
}

func TestExecuteCommandBreakAndDelete(t *testing.T) {
	d := NewDebugger(countdownProgram())

	if err := d.ExecuteCommand("break 2"); err != nil {
		t.Fatalf("break: %v", err)
	}
	if len(d.Breakpoints.List()) != 1 {
		t.Fatalf("expected 1 breakpoint, got %d", len(d.Breakpoints.List()))
	}

	id := d.Breakpoints.List()[0].ID
	if err := d.ExecuteCommand("delete " + strconv.Itoa(id)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(d.Breakpoints.List()) != 0 {
		t.Errorf("expected 0 breakpoints after delete, got %d", len(d.Breakpoints.List()))
	}
}

func TestExecuteCommandRegistersReportsState(t *testing.T) {
	d := NewDebugger(countdownProgram())
	if err := d.ExecuteCommand("step"); err != nil {
		t.Fatalf("step: %v", err)
	}
	if err := d.ExecuteCommand("registers"); err != nil {
		t.Fatalf("registers: %v", err)
	}
	out := d.GetOutput()
	if !strings.Contains(out, "R0=3") {
		t.Errorf("registers output = %q, want it to mention R0=3", out)
	}
}

func TestCommandHistoryNavigation(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("continue")

	if got := h.Previous(); got != "continue" {
		t.Errorf("Previous() = %q, want continue", got)
	}
	if got := h.Previous(); got != "step" {
		t.Errorf("Previous() = %q, want step", got)
	}
	if got := h.Next(); got != "continue" {
		t.Errorf("Next() = %q, want continue", got)
	}
}
