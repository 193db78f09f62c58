package vm

import "github.com/ashpaper-run/ashpaper/classify"

// Statistics tallies per-kind dispatch counts across one execution,
// narrowed from teacher's InstructionStats/PerformanceStatistics (which
// tracked ARM opcodes and cycle timing) down to AshPaper's eleven kinds
// plus Noop.
type Statistics struct {
	Counts   map[classify.Kind]int
	Total    int
	MaxDepth int // deepest the stack ever grew during this execution
}

// NewStatistics returns a Statistics ready to record, with Counts
// initialized. Callers that build &Statistics{} directly (e.g. to leave
// it at its zero value and never pass it to Execute) are unaffected;
// anything passed as Options.Stats must come from here.
func NewStatistics() *Statistics {
	return &Statistics{Counts: make(map[classify.Kind]int)}
}

func (s *Statistics) record(kind classify.Kind, stackDepth int) {
	if s.Counts == nil {
		s.Counts = make(map[classify.Kind]int)
	}
	s.Counts[kind]++
	s.Total++
	if stackDepth > s.MaxDepth {
		s.MaxDepth = stackDepth
	}
}
