// The graphcolor command is the CLI front-end of spec.md §6, rebuilt on
// cobra/pflag the way nektos-act/cmd/root.go builds its command tree. The
// teacher's own positional-plus-flag CLI shape (<graph_file> [num_threads])
// is preserved as this command's Args validator and flag defaults.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"graphcolor/coloring"
	"graphcolor/graph"
	"graphcolor/internal/statlog"
	"graphcolor/loader"
	"graphcolor/verify"
)

var (
	seqFlag        bool
	filePath       string
	outPath        string
	threads        int
	maxRetries     int
	repairRounds   int
	statsJSONPath  string
	colorHistogram bool
)

var rootCmd = &cobra.Command{
	Use:          "graphcolor <graph_file> [num_threads]",
	Short:        "Parallel speculative graph vertex coloring",
	Args:         cobra.MaximumNArgs(2),
	RunE:         runColor,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&seqFlag, "seq", false, "use the sequential greedy oracle instead of the speculative parallel colorer")
	rootCmd.Flags().StringVar(&filePath, "f", "", "alternate way to pass the input file")
	rootCmd.Flags().StringVar(&outPath, "out", "", "write the resulting coloring to this path")
	rootCmd.Flags().IntVar(&threads, "threads", 0, "worker count (0 = all available cores)")
	rootCmd.Flags().IntVar(&maxRetries, "max-retries", coloring.DefaultMaxRetries, "per-vertex commit retry cap before falling back to the serialized owner path")
	rootCmd.Flags().IntVar(&repairRounds, "repair-rounds", coloring.DefaultRepairRounds, "bounded repair-loop round count")
	rootCmd.Flags().StringVar(&statsJSONPath, "stats-json", "", "write phase statistics as JSON to this path")
	rootCmd.Flags().BoolVar(&colorHistogram, "color-histogram", false, "log the final color histogram")
}

// Execute runs the root command; its error is only used by main to decide
// the process exit code, matching spec.md §6's "exit 0 on success, 1 on
// bad arguments / unreadable input / verification failure."
//
// Long flags are accepted with a single dash (-seq, -f <path>) as well as
// pflag's double-dash form: "-name" is rewritten to "--name" before
// parsing. "-h" and everything after a "--" terminator are left as given.
func Execute() error {
	args := append([]string(nil), os.Args[1:]...)
	for i, a := range args {
		if a == "--" {
			break
		}
		if len(a) > 1 && a[0] == '-' && a[1] != '-' && a != "-h" {
			args[i] = "-" + a
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func runColor(cmd *cobra.Command, args []string) error {
	inputPath := filePath
	var positionalThreads int
	hadPositionalThreads := false

	if len(args) > 0 && inputPath == "" {
		inputPath = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("graphcolor: invalid num_threads argument %q: %w", args[0], err)
		}
		positionalThreads = n
		hadPositionalThreads = true
	}
	if inputPath == "" {
		return errors.New("graphcolor: no input file given (positional graph_file or -f)")
	}
	if hadPositionalThreads && !cmd.Flags().Changed("threads") {
		threads = positionalThreads
	}

	logger := statlog.Logger()

	f, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
		return err
	}
	defer f.Close()

	loaded, err := loader.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
		return err
	}
	for _, w := range loaded.Warnings {
		logger.WithField("line", w.Line).Warn(w.Message)
	}

	g := loaded.Graph
	g.Optimize()

	if seqFlag {
		colors := coloring.Oracle(g)
		return finish(g, colors, coloring.Stats{Vertices: g.N(), Edges: g.M(), Threads: 1}, logger)
	}

	opts := []coloring.Option{coloring.WithThreads(threads)}
	if cmd.Flags().Changed("max-retries") {
		opts = append(opts, coloring.WithMaxRetries(maxRetries))
	}
	if cmd.Flags().Changed("repair-rounds") {
		opts = append(opts, coloring.WithRepairRounds(repairRounds))
	}

	result, err := coloring.Color(g, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
		return err
	}
	return finish(g, result.Colors, result.Stats, logger)
}

// finish verifies the produced coloring, reports phase statistics, and
// optionally persists both a JSON stats dump and the resulting coloring
// itself, matching spec.md §6's output contract.
func finish(g *graph.Graph, colors []int32, stats coloring.Stats, logger *logrus.Logger) error {
	fields := statlog.ReportPhases(logger, stats)

	var k int32
	for _, c := range colors {
		if c+1 > k {
			k = c + 1
		}
	}
	fields["colors"] = k
	logger.WithField("colors", k).Info("final color count")

	if colorHistogram && len(stats.ColorHistogram) > 0 {
		logger.WithField("histogram", stats.ColorHistogram).Info("color histogram")
	}

	if err := verify.Check(g, colors); err != nil {
		fmt.Fprintf(os.Stderr, "graphcolor: INVALID: %v\n", err)
		return err
	}
	logger.Info("valid")

	if statsJSONPath != "" {
		jf, err := os.Create(statsJSONPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
			return err
		}
		defer jf.Close()
		statlog.JSONLogger(jf).WithFields(fields).Info("stats")
	}

	if outPath != "" {
		of, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
			return err
		}
		defer of.Close()
		comment := fmt.Sprintf("elapsed=%s commits=%d aborts=%d", stats.Elapsed, stats.Commits, stats.Aborts)
		if err := loader.SaveColors(of, colors, comment); err != nil {
			fmt.Fprintf(os.Stderr, "graphcolor: %v\n", err)
			return err
		}
	}

	return nil
}
