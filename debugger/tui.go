package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the interactive terminal front end over a Debugger: poem
// source, registers, stack, and output panels plus a command line.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	MainLayout   *tview.Flex
	SourceView   *tview.TextView
	RegisterView *tview.TextView
	StackView    *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI builds a TUI over d, ready for Run.
func NewTUI(d *Debugger) *TUI {
	t := &TUI{Debugger: d, App: tview.NewApplication()}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

func (t *TUI) initializeViews() {
	t.SourceView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.SourceView.SetBorder(true).SetTitle(" Poem ")

	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.StackView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.StackView.SetBorder(true).SetTitle(" Stack ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 5, 0, false).
		AddItem(t.StackView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.SourceView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.run("continue")
			return nil
		case tcell.KeyF10:
			t.run("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd == "" {
		return
	}
	t.run(cmd)
	t.CommandInput.SetText("")
}

func (t *TUI) run(cmd string) {
	err := t.Debugger.ExecuteCommand(cmd)
	out := t.Debugger.GetOutput()
	if err != nil {
		fmt.Fprintf(t.OutputView, "[red]error:[white] %v\n", err)
	}
	if out != "" {
		fmt.Fprint(t.OutputView, out)
	}
	t.RefreshAll()
}

// RefreshAll redraws every panel from current debugger state.
func (t *TUI) RefreshAll() {
	t.SourceView.Clear()
	for i, ins := range t.Debugger.Program {
		marker := "  "
		if i == t.Debugger.Memory.IP {
			marker = "->"
		}
		fmt.Fprintf(t.SourceView, "%s %3d %s\n", marker, i, ins.Line)
	}

	t.RegisterView.Clear()
	fmt.Fprintf(t.RegisterView, "R0 = %d\nR1 = %d\nIP = %d\n",
		t.Debugger.Memory.R0, t.Debugger.Memory.R1, t.Debugger.Memory.IP)

	t.StackView.Clear()
	fmt.Fprintf(t.StackView, "%v\n", t.Debugger.Memory.Stack)

	t.App.Draw()
}

// Run starts the TUI event loop; it blocks until the user quits.
func (t *TUI) Run() error {
	t.RefreshAll()
	return t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput).Run()
}
