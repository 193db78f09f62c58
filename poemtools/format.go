package poemtools

import (
	"fmt"
	"strings"

	"github.com/ashpaper-run/ashpaper/classify"
)

// Format renders prog as an aligned instruction listing: index, kind
// (with its operand if any), register, and the retained source line.
// It is read-only — there is no corresponding parser back from this
// format, unlike teacher's assembly formatter which round-trips.
func Format(prog classify.Program) string {
	var b strings.Builder
	for i, ins := range prog {
		fmt.Fprintf(&b, "%4d  %-28s  %q\n", i, ins.String(), ins.Line)
	}
	return b.String()
}
