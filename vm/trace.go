package vm

import (
	"fmt"
	"io"

	"github.com/ashpaper-run/ashpaper/classify"
)

// TraceEntry is one recorded instruction dispatch: the program index,
// its instruction, and the register/stack state immediately after it
// ran. This recovers the per-instruction log line both original_source
// program.rs variants emitted via log::info!.
type TraceEntry struct {
	Index       int
	Instruction classify.Instruction
	R0, R1      int64
	StackDepth  int
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("%04d  %-40s  r0=%d r1=%d stack=%d", e.Index, e.Instruction, e.R0, e.R1, e.StackDepth)
}

// ExecutionTrace collects TraceEntry values during Execute, optionally
// writing each one to an attached writer as it's recorded. Disabled
// (zero-value-equivalent, i.e. nil) by default; Execute only records
// when the caller passes a non-nil *ExecutionTrace, matching
// config.Config.Trace.Enabled's opt-in gating.
type ExecutionTrace struct {
	Entries []TraceEntry

	// MaxEntries caps recorded entries; zero means unbounded. Useful for
	// long-running or infinite-looping poems where only the tail of the
	// trace matters.
	MaxEntries int

	// Writer, if set, receives one formatted line per recorded entry as
	// execution proceeds.
	Writer io.Writer
}

func (t *ExecutionTrace) record(entry TraceEntry) {
	if t.MaxEntries > 0 && len(t.Entries) >= t.MaxEntries {
		return
	}
	t.Entries = append(t.Entries, entry)
	if t.Writer != nil {
		fmt.Fprintln(t.Writer, entry.String())
	}
}
