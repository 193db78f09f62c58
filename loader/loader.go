// Package loader wires dict, classify, vm, jit, and config together: it
// is AshPaper's single pipeline-owning entry point, the way teacher's
// loader.LoadProgramIntoVM owns parse → encode → place-in-VM → run.
package loader

import (
	"fmt"
	"os"

	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/ashpaper-run/ashpaper/config"
	"github.com/ashpaper-run/ashpaper/jit"
	"github.com/ashpaper-run/ashpaper/vm"
)

// Backend selects which machine runs a classified program.
type Backend int

const (
	Interpreter Backend = iota
	JIT
)

// Options configures one Run call.
type Options struct {
	Backend  Backend
	MaxSteps int // interpreter-only; forwarded to vm.Options.MaxSteps

	Trace *vm.ExecutionTrace
	Stats *vm.Statistics
}

// OptionsFromConfig derives loader Options from a loaded config.Config.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{MaxSteps: cfg.Execution.MaxSteps}
	if cfg.Execution.Backend == "jit" {
		opts.Backend = JIT
	}
	if cfg.Trace.Enabled {
		opts.Trace = &vm.ExecutionTrace{MaxEntries: cfg.Trace.MaxEntries}
	}
	if cfg.Statistics.Enabled {
		opts.Stats = vm.NewStatistics()
	}
	return opts
}

// Result is the outcome of one Run.
type Result struct {
	Output  string
	Program classify.Program
	Trace   *vm.ExecutionTrace
	Stats   *vm.Statistics
}

// Run classifies source and executes it via opts.Backend.
func Run(source string, opts Options) (Result, error) {
	prog := classify.Parse(source)
	res := Result{Program: prog, Trace: opts.Trace, Stats: opts.Stats}

	switch opts.Backend {
	case JIT:
		out, err := jit.Interpret(jit.Compile(prog))
		if err != nil {
			return res, fmt.Errorf("loader: jit execution: %w", err)
		}
		res.Output = out
		return res, nil

	default:
		out, err := vm.ExecuteWithOptions(prog, vm.Options{
			MaxSteps: opts.MaxSteps,
			Trace:    opts.Trace,
			Stats:    opts.Stats,
		})
		res.Output = out
		if err != nil {
			return res, fmt.Errorf("loader: interpreter execution: %w", err)
		}
		return res, nil
	}
}

// RunFile reads path and runs its contents. I/O failure is surfaced as
// an *InputError (spec §7's "Input error" taxonomy entry), program not
// run.
func RunFile(path string, opts Options) (Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied poem path
	if err != nil {
		return Result{}, &InputError{Path: path, Err: err}
	}
	return Run(string(data), opts)
}
