package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/output"
)

// Version is the current wordladder CLI version
var Version = "0.3.0"

// flags collects command-line overrides; zero values defer to the config.
type flags struct {
	configPath     string
	all            bool
	verbose        bool
	noColor        bool
	maxSolutions   int
	maxSteps       int
	recursionLimit int
	timeout        time.Duration
	query          string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "wordladder <dictionary> <start> <end> <output>",
		Short: "Find the shortest word ladder between two words",
		Long: `wordladder finds the shortest chain of dictionary words from <start> to <end>,
changing one letter per step, and writes it to <output> one word per line.`,
		Example:      "  wordladder words-english.txt spin spot resultfile.txt",
		Version:      Version,
		Args:         ladderArgs,
		SilenceUsage: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "config file (default: $WORDLADDER_CONFIG, ./wordladder.yaml, ~/.config/wordladder/config.yaml)")
	fl.BoolVar(&f.all, "all", false, "print every shortest ladder")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log solve stages to stderr")
	fl.BoolVar(&f.noColor, "no-color", false, "disable styled output")
	fl.IntVar(&f.maxSolutions, "max-solutions", 0, "stop after this many ladders (0 = all)")
	fl.IntVar(&f.maxSteps, "max-steps", 0, "ignore ladders longer than this many steps (0 = no limit)")
	fl.IntVar(&f.recursionLimit, "recursion-limit", 0, "ladder length above which the search uses an explicit stack")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	fl.StringVar(&f.query, "query", "", "SQL query selecting words from a SQLite dictionary")

	cmd.SetUsageTemplate(argsHelp + cmd.UsageTemplate())
	return cmd
}

// argsHelp heads the usage text printed on a bad argument list.
const argsHelp = `Arguments:
  <dictionary>  word list, one word per line (.txt, .gz, .zst, .db/.sqlite)
                or a glob such as "dicts/**/*.txt"; must exist
  <start>       word to start from; must be in the dictionary
  <end>         word to end at; must be in the dictionary
  <output>      result file; overwritten without prompting, removed when
                there is no solution

<dictionary> and <output> may be omitted when the config file sets them.

`

// ladderArgs accepts the full four-argument form or <start> <end> alone.
func ladderArgs(_ *cobra.Command, args []string) error {
	if n := len(args); n != 2 && n != 4 {
		return fmt.Errorf("requires 4 arguments (dictionary, start, end, output), got %d", n)
	}
	return nil
}

// loadConfig reads the explicit --config path or searches the defaults,
// then applies flag overrides.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, _, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("all") {
		cfg.All = f.all
	}
	if fl.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fl.Changed("no-color") {
		on := !f.noColor
		cfg.Color = &on
	}
	if fl.Changed("max-solutions") {
		cfg.MaxSolutions = f.maxSolutions
	}
	if fl.Changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if fl.Changed("recursion-limit") {
		cfg.RecursionLimit = f.recursionLimit
	}
	if fl.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fl.Changed("query") {
		cfg.Query = f.query
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveArgs maps positional arguments onto dictionary, start, end and
// output, taking dictionary and output from cfg when only two are given.
func resolveArgs(cfg *config.Config, args []string) (dict, start, end, out string, err error) {
	switch len(args) {
	case 4:
		return args[0], args[1], args[2], args[3], nil
	case 2:
		if cfg.Dictionary == "" || cfg.Output == "" {
			return "", "", "", "", errors.New("dictionary and output must be given as arguments or set in the config file")
		}
		return cfg.Dictionary, args[0], args[1], cfg.Output, nil
	default:
		return "", "", "", "", fmt.Errorf("requires 4 arguments (dictionary, start, end, output), got %d", len(args))
	}
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	// past argument validation only a bad argument list shows usage
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	dict, start, end, out, err := resolveArgs(cfg, args)
	if err != nil {
		cmd.SilenceUsage = false
		return err
	}

	logger := log.New(io.Discard, "wordladder: ", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := []ladder.Option{
		ladder.WithContext(ctx),
		ladder.WithMaxSolutions(cfg.MaxSolutions),
		ladder.WithMaxSteps(cfg.MaxSteps),
	}
	if cfg.RecursionLimit > 0 {
		opts = append(opts, ladder.WithRecursionLimit(cfg.RecursionLimit))
	}
	if cfg.Query != "" {
		opts = append(opts, ladder.WithLoadOptions(dictionary.WithQuery(cfg.Query), dictionary.WithContext(ctx)))
	}

	logger.Printf("solving %s → %s with %s", start, end, dict)
	began := time.Now()
	sol, err := ladder.SolveFile(dict, start, end, opts...)
	if err != nil {
		return err
	}
	st := sol.Stats()
	logger.Printf("%d valid words, fingerprint %s", st.ValidWords, sol.Fingerprint())
	logger.Printf("distance build visited %d words; enumeration expanded %d, pruned %d",
		st.Visited, st.Expanded, st.Pruned)
	logger.Printf("ladder length %d, %d shortest ladders in %s",
		sol.LadderLength(), len(sol.Solutions()), time.Since(began).Round(time.Microsecond))

	return report(cmd.OutOrStdout(), cfg, sol, out)
}

// report writes the solution file and prints the outcome.
func report(w io.Writer, cfg *config.Config, sol *ladder.Solution, out string) error {
	if !sol.Found() {
		if err := output.WriteFile(out, nil); err != nil {
			return err
		}
		fmt.Fprintln(w, "No solution found.")
		return nil
	}

	r := output.NewRenderer(w, cfg.ColorEnabled())
	if cfg.All {
		fmt.Fprint(w, r.All(sol.Solutions()))
		if sol.Truncated() {
			fmt.Fprintf(w, "(stopped after %d ladders)\n", len(sol.Solutions()))
		}
	} else {
		fmt.Fprintln(w, r.Ladder(sol.Shortest()))
	}

	if err := output.WriteFile(out, sol.Shortest()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(w, "Solution saved to %s\n", out)
	fmt.Fprintf(w, "%d steps\n", sol.Steps())
	return nil
}
