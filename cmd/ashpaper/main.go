package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ashpaper-run/ashpaper/api"
	"github.com/ashpaper-run/ashpaper/classify"
	"github.com/ashpaper-run/ashpaper/config"
	"github.com/ashpaper-run/ashpaper/debugger"
	"github.com/ashpaper-run/ashpaper/loader"
	"github.com/ashpaper-run/ashpaper/poemtools"
	"github.com/ashpaper-run/ashpaper/vm"
)

// Version is overridden at build time with -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		jitMode     = flag.Bool("jit", false, "Run with the JIT backend instead of the interpreter")
		syllables   = flag.Bool("syllables", false, "Print the syllable count of the input instead of running it")
		lint        = flag.Bool("lint", false, "Print lint issues for the classified poem instead of running it")
		listMode    = flag.Bool("list", false, "Print the classified instruction listing instead of running it")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode")
		tuiMode     = flag.Bool("tui", false, "Use the TUI debugger")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiAddr     = flag.String("addr", ":8080", "API server listen address (used with -api-server)")
		maxSteps    = flag.Int("max-steps", 0, "Maximum instructions to dispatch before aborting (0 = unbounded)")
		trace       = flag.Bool("trace", false, "Record an execution trace and print it after running")
		stats       = flag.Bool("stats", false, "Record per-instruction statistics and print them after running")
		text        = flag.String("text", "", "Poem text, read directly instead of from a file")
		verbose     = flag.Bool("verbose", false, "Verbose output")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("ashpaper %s\n", Version)
		os.Exit(0)
	}
	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		runAPIServer(*apiAddr)
		return
	}

	source, err := readSource(*text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ashpaper: %v\n", err)
		os.Exit(1)
	}

	if *syllables {
		fmt.Println(classify.CountSyllables(source))
		return
	}

	prog := classify.Parse(source)
	if *verbose {
		fmt.Fprintf(os.Stderr, "ashpaper: classified %d instructions\n", len(prog))
	}

	if *lint {
		for _, issue := range poemtools.Lint(prog) {
			fmt.Println(issue.String())
		}
		return
	}
	if *listMode {
		fmt.Print(poemtools.Format(prog))
		return
	}

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(prog)
		if *tuiMode {
			if err := debugger.NewTUI(dbg).Run(); err != nil {
				fmt.Fprintf(os.Stderr, "ashpaper: tui: %v\n", err)
				os.Exit(1)
			}
		} else {
			runCLIDebugger(dbg)
		}
		return
	}

	opts := loader.Options{MaxSteps: *maxSteps}
	if *jitMode {
		opts.Backend = loader.JIT
	}
	if *trace {
		opts.Trace = &vm.ExecutionTrace{}
	}
	if *stats {
		opts.Stats = vm.NewStatistics()
	}

	res, err := loader.Run(source, opts)
	fmt.Print(res.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ashpaper: %v\n", err)
		os.Exit(1)
	}

	if opts.Trace != nil {
		for _, entry := range opts.Trace.Entries {
			fmt.Fprintln(os.Stderr, entry.String())
		}
	}
	if opts.Stats != nil {
		fmt.Fprintf(os.Stderr, "total instructions: %d, max stack depth: %d\n", opts.Stats.Total, opts.Stats.MaxDepth)
	}
}

func readSource(text string) (string, error) {
	if text != "" {
		return text, nil
	}
	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}
	path := flag.Arg(0)
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied poem path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func runCLIDebugger(dbg *debugger.Debugger) {
	fmt.Println("ashpaper debugger - type 'help' for commands, 'quit' to exit")
	var line string
	for {
		fmt.Print("> ")
		if _, err := fmt.Scanln(&line); err != nil {
			return
		}
		if line == "quit" || line == "q" {
			return
		}
		if err := dbg.ExecuteCommand(line); err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Print(dbg.GetOutput())
	}
}

func runAPIServer(addr string) {
	server := api.NewServer(addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nshutting down API server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "ashpaper: shutdown: %v\n", err)
				os.Exit(1)
			}
		})
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "ashpaper: api server: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	shutdown()
}

func printHelp() {
	cfgPath := config.GetConfigPath()
	fmt.Printf(`ashpaper %s

Usage: ashpaper [options] <poem-file>
       ashpaper -text "a poem, written directly"
       ashpaper -api-server [-addr :8080]

Options:
  -help           Show this help message
  -version        Show version information
  -text STRING    Poem text, read directly instead of from a file
  -jit            Run with the JIT backend instead of the interpreter
  -syllables      Print the syllable count of the input and exit
  -lint           Print lint issues for the classified poem and exit
  -list           Print the classified instruction listing and exit
  -debug          Start in debugger mode (CLI)
  -tui            Start in TUI debugger mode
  -max-steps N    Maximum instructions to dispatch before aborting (0 = unbounded)
  -trace          Record an execution trace and print it to stderr
  -stats          Record per-instruction statistics and print them to stderr
  -api-server     Start HTTP API server mode (no poem file required)
  -addr ADDR      API server listen address (default: :8080)
  -verbose        Verbose output

Config file: %s

Examples:
  ashpaper poems/hello.eso
  ashpaper -jit -trace poems/factorial.eso
  ashpaper -syllables -text "a lovely poem"
  ashpaper -tui poems/hello.eso
  ashpaper -api-server -addr :3000
`, Version, cfgPath)
}
