package vm

import (
	"testing"

	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/stretchr/testify/require"
)

func TestExecuteEmptyProgram(t *testing.T) {
	require.Equal(t, "", Execute(nil))
}

func TestExecuteRhymingStoreAndPrint(t *testing.T) {
	source := "somebody once told me \n" +
		"    he took a new elf \n" +
		"and stabbed it with a shelf\n" +
		"pop,\n" +
		"print.\n" +
		"then he took blue\n" +
		"and stabbed it with some you \n" +
		"pop,\n" +
		"print."
	prog := classify.Parse(source)
	require.Equal(t, "64", Execute(prog))
}

func TestExecuteAlliterationGotoNoEffect(t *testing.T) {
	source := "poem or calculator or nothing\n" +
		"    somebody once\n" +
		"    fish fosh\n" +
		"word."
	prog := classify.Parse(source)

	out, err := ExecuteWithOptions(prog, Options{MaxSteps: 1000})
	require.Error(t, err)
	require.Equal(t, "", out)
}

func TestExecuteStoreNegateMultiplyAdd(t *testing.T) {
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 3},
		{Kind: classify.Store, Register: classify.R1, Operand: 4},
		{Kind: classify.Multiply, Register: classify.R0},
		{Kind: classify.PrintValue, Register: classify.R0},
	}
	require.Equal(t, "12", Execute(prog))
}

func TestExecutePushPopConditionalGoto(t *testing.T) {
	// R0=2, push R0, pop into R0 (no-op round trip), print.
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 2},
		{Kind: classify.Push, Register: classify.R0},
		{Kind: classify.Pop, Register: classify.R0},
		{Kind: classify.PrintValue, Register: classify.R0},
	}
	require.Equal(t, "2", Execute(prog))
}

func TestExecuteGotoWraps(t *testing.T) {
	// R0=5, N=3: goto jumps to 5 mod 3 = 2, which prints R0 and halts.
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 5},
		{Kind: classify.Goto, Register: classify.R0},
		{Kind: classify.PrintValue, Register: classify.R0},
	}
	require.Equal(t, "5", Execute(prog))
}

func TestExecuteConditionalPushActiveInactiveOwnRegister(t *testing.T) {
	// R1=1, R0=9: ConditionalPush @ R1 compares active(R1)=1 < inactive(R0)=9,
	// true, so it pushes prev. Pop+print via R1 to read the stack back.
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R1, Operand: 1},
		{Kind: classify.Store, Register: classify.R0, Operand: 9},
		{Kind: classify.ConditionalPush, Register: classify.R1, PrevSyllables: 7, CurSyllables: 3},
		{Kind: classify.Pop, Register: classify.R1},
		{Kind: classify.PrintValue, Register: classify.R1},
	}
	require.Equal(t, "7", Execute(prog))
}

func TestExecuteStepLimitExceeded(t *testing.T) {
	// Infinite loop: Goto @ R0 with R0=0, N=2 -> always jumps back to 0.
	prog := classify.Program{
		{Kind: classify.Goto, Register: classify.R0},
		{Kind: classify.Noop, Register: classify.R0},
	}
	_, err := ExecuteWithOptions(prog, Options{MaxSteps: 50})
	require.Error(t, err)
	var limitErr *StepLimitError
	require.ErrorAs(t, err, &limitErr)
}

func TestExecuteWithOptionsRecordsStatistics(t *testing.T) {
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 3},
		{Kind: classify.Push, Register: classify.R0},
		{Kind: classify.PrintValue, Register: classify.R0},
	}
	stats := NewStatistics()

	_, err := ExecuteWithOptions(prog, Options{Stats: stats})
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.Counts[classify.Store])
	require.Equal(t, 1, stats.Counts[classify.Push])
	require.Equal(t, 1, stats.Counts[classify.PrintValue])
	require.Equal(t, 1, stats.MaxDepth)
}

func TestExecuteWithOptionsStatisticsZeroValueDoesNotPanic(t *testing.T) {
	prog := classify.Program{
		{Kind: classify.Store, Register: classify.R0, Operand: 1},
	}
	stats := &Statistics{}

	require.NotPanics(t, func() {
		_, err := ExecuteWithOptions(prog, Options{Stats: stats})
		require.NoError(t, err)
	})
	require.Equal(t, 1, stats.Total)
}
