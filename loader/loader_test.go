package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunInterpreterAndJITAgree(t *testing.T) {
	source := "somebody once told me \n" +
		"    he took a new elf \n" +
		"and stabbed it with a shelf\n" +
		"pop,\n" +
		"print.\n" +
		"then he took blue\n" +
		"and stabbed it with some you \n" +
		"pop,\n" +
		"print."

	interp, err := Run(source, Options{Backend: Interpreter})
	require.NoError(t, err)
	require.Equal(t, "64", interp.Output)

	jitRes, err := Run(source, Options{Backend: JIT})
	require.NoError(t, err)
	require.Equal(t, interp.Output, jitRes.Output)
}

func TestRunFileMissingReturnsInputError(t *testing.T) {
	_, err := RunFile(filepath.Join(t.TempDir(), "missing.eso"), Options{})
	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestRunFileReadsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.eso")
	require.NoError(t, os.WriteFile(path, []byte("test,"), 0o600))

	res, err := RunFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, res.Program, 1)
}

func TestRunFileRhymingFixtureMatchesBackends(t *testing.T) {
	interp, err := RunFile(filepath.Join("..", "testdata", "rhyming.eso"), Options{Backend: Interpreter})
	require.NoError(t, err)
	require.Equal(t, "64", interp.Output)

	jitRes, err := RunFile(filepath.Join("..", "testdata", "rhyming.eso"), Options{Backend: JIT})
	require.NoError(t, err)
	require.Equal(t, interp.Output, jitRes.Output)
}

func TestRunFileAlliterationFixtureSkipsPrintViaGoto(t *testing.T) {
	// The alliteration line's Goto jumps to the trailing blank (Noop)
	// line rather than looping back to the start, so "word."'s
	// PrintValue is skipped and the program halts normally with no
	// output, well within the step budget.
	res, err := RunFile(filepath.Join("..", "testdata", "alliteration.eso"), Options{MaxSteps: 1000})
	require.NoError(t, err)
	require.Equal(t, "", res.Output)
}
