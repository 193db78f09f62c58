// Package debugger provides a line-stepping debugger for AshPaper
// poems: breakpoints by source line, single-step/continue, and a
// tcell/tview TUI over registers, stack, and output.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/ashpaper-run/ashpaper/poemtools"
	"github.com/ashpaper-run/ashpaper/vm"
)

// Debugger holds one poem's classified program plus the interpreter
// state needed to step through it line by line.
type Debugger struct {
	Program classify.Program
	Memory  *vm.Memory

	Breakpoints *BreakpointManager
	History     *CommandHistory

	Running     bool
	LastCommand string

	Output strings.Builder
}

// NewDebugger builds a debugger over prog, ready to Step/Continue from
// the first instruction.
func NewDebugger(prog classify.Program) *Debugger {
	return &Debugger{
		Program:     prog,
		Memory:      &vm.Memory{},
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(),
	}
}

// Restart resets execution to the first instruction with fresh
// registers and an empty stack, keeping breakpoints and history.
func (d *Debugger) Restart() {
	d.Memory = &vm.Memory{}
	d.Running = false
}

// Finished reports whether the instruction pointer has run off the end
// of the program.
func (d *Debugger) Finished() bool {
	return d.Memory.IP >= len(d.Program)
}

// Step dispatches exactly one instruction and returns it. Calling Step
// once Finished is a programmer error, like reading Step's interpreter
// counterpart vm.Step.
func (d *Debugger) Step() (classify.Instruction, error) {
	if d.Finished() {
		return classify.Instruction{}, fmt.Errorf("program already finished")
	}
	ins, chunk := vm.Step(d.Program, d.Memory)
	d.Output.Write(chunk)
	return ins, nil
}

// Continue steps until the program finishes or an enabled breakpoint
// is hit at the new instruction pointer. It returns the breakpoint hit,
// or nil if the program ran to completion.
func (d *Debugger) Continue() (*Breakpoint, error) {
	d.Running = true
	defer func() { d.Running = false }()

	for !d.Finished() {
		if _, err := d.Step(); err != nil {
			return nil, err
		}
		if d.Finished() {
			break
		}
		if bp, hit := d.Breakpoints.At(d.Memory.IP); hit {
			return bp, nil
		}
	}
	return nil, nil
}

// ExecuteCommand parses and runs one debugger command line, appending
// any textual result to Output. Recognized commands: break <line>,
// delete <id>, step (or s), continue (or c), registers (or r), stack,
// restart, list.
func (d *Debugger) ExecuteCommand(line string) error {
	d.History.Add(line)
	d.LastCommand = line

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch strings.ToLower(cmd) {
	case "break", "b":
		return d.cmdBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "step", "s":
		return d.cmdStep()
	case "continue", "c":
		return d.cmdContinue()
	case "restart":
		d.Restart()
		fmt.Fprintln(&d.Output, "restarted")
		return nil
	case "registers", "r":
		fmt.Fprintf(&d.Output, "R0=%d R1=%d IP=%d\n", d.Memory.R0, d.Memory.R1, d.Memory.IP)
		return nil
	case "stack":
		fmt.Fprintf(&d.Output, "%v\n", d.Memory.Stack)
		return nil
	case "list":
		fmt.Fprint(&d.Output, poemtools.Format(d.Program))
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: break <line>")
	}
	line, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line: %s", args[0])
	}
	bp := d.Breakpoints.Add(line, false)
	fmt.Fprintf(&d.Output, "breakpoint %d at line %d\n", bp.ID, bp.Line)
	return nil
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}
	return d.Breakpoints.Delete(id)
}

func (d *Debugger) cmdStep() error {
	if d.Finished() {
		fmt.Fprintln(&d.Output, "program finished")
		return nil
	}
	ins, err := d.Step()
	if err != nil {
		return err
	}
	fmt.Fprintf(&d.Output, "%s\n", ins.String())
	return nil
}

func (d *Debugger) cmdContinue() error {
	bp, err := d.Continue()
	if err != nil {
		return err
	}
	if bp != nil {
		fmt.Fprintf(&d.Output, "breakpoint %d hit at line %d\n", bp.ID, bp.Line)
	} else {
		fmt.Fprintln(&d.Output, "program finished")
	}
	return nil
}

// GetOutput returns and clears the accumulated command output.
func (d *Debugger) GetOutput() string {
	s := d.Output.String()
	d.Output.Reset()
	return s
}
