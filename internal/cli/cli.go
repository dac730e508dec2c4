package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/concussgo/concuss/config"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/execdata"
	"github.com/concussgo/concuss/format"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/internal/progress"
	"github.com/concussgo/concuss/pattern"
	"github.com/concussgo/concuss/pipeline"
)

// options holds every flag concuss's root command accepts.
type options struct {
	output            string
	coloringFile      string
	skipColoringCheck bool
	multiPatternFile  string
	verbose           bool
	showProgress      bool
	execData          string
}

// NewRootCommand builds the concuss root command (spec.md §6's "concuss
// <graph-file> <pattern> [<config>] [-o OUT] [-c COLOR_FILE] [-C]
// [-m MULTI_PAT_FILE] [-v] [-p] [-e EXECDATA.zip]").
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "concuss <graph-file> <pattern> [<config>]",
		Short: "Count copies of a pattern graph inside a host graph by color-coding",
		Long: `concuss counts embeddings of a small pattern graph inside a larger host
graph. <pattern> is either a graph filename or one of clique{n}, path{n},
star{n}, wheel{n}, cycle{n}, biclique{m},{n}.`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the count to this file instead of stdout")
	flags.StringVarP(&opts.coloringFile, "coloring", "c", "", "supply a precomputed coloring instead of building one")
	flags.BoolVarP(&opts.skipColoringCheck, "skip-coloring-check", "C", false, "trust -c's coloring without verifying it")
	flags.StringVarP(&opts.multiPatternFile, "multi-pattern", "m", "", "run against every pattern named in this file, one count per line")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVarP(&opts.showProgress, "progress", "p", false, "print stage/percentage progress to stderr")
	flags.StringVarP(&opts.execData, "execdata", "e", "", "capture an execution-data archive to this path (InclusionExclusion only)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := newLogger(opts.verbose)

	graphFile, patternArg := args[0], args[1]
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if opts.execData != "" {
		if err := execdata.CheckCompatible(opts.multiPatternFile != "", cfg.Combine); err != nil {
			return fmt.Errorf("concuss: -e requires the InclusionExclusion combiner and no -m: %w", err)
		}
	}

	g, err := format.ReadGraph(graphFile)
	if err != nil {
		return fmt.Errorf("concuss: reading graph %q: %w", graphFile, err)
	}
	g.RemoveSelfLoops()

	runOpts, err := buildRunOptions(opts, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("concuss: opening -o %q: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}

	if opts.multiPatternFile != "" {
		return runMultiPattern(g, opts.multiPatternFile, cfg, runOpts, out, logger)
	}
	return runSinglePattern(g, graphFile, patternArg, cfg, runOpts, out, opts.execData, logger)
}

// loadConfig reads args[2] as an INI config when supplied, else falls back
// to the conservative default.
func loadConfig(args []string) (*config.Config, error) {
	if len(args) < 3 {
		return config.Default(), nil
	}
	cfg, err := config.Load(args[2])
	if err != nil {
		return nil, fmt.Errorf("concuss: loading config %q: %w", args[2], err)
	}
	return cfg, nil
}

// buildRunOptions resolves -c/-C/-p into a pipeline.Options.
func buildRunOptions(opts *options, logger *slog.Logger) (pipeline.Options, error) {
	runOpts := pipeline.Options{SkipVerification: opts.skipColoringCheck}
	if opts.coloringFile != "" {
		chi, err := format.ReadColoring(opts.coloringFile)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("concuss: reading coloring %q: %w", opts.coloringFile, err)
		}
		runOpts.Coloring = chi
	}
	if opts.showProgress {
		runOpts.Progress = progress.New(func(stage string, percent float64) {
			fmt.Fprintf(os.Stderr, "%s: %.1f%%\n", stage, percent)
			logger.Info("progress", "stage", stage, "percent", percent)
		})
	}
	return runOpts, nil
}

func runSinglePattern(g *graphmodel.Graph, graphFile, patternArg string, cfg *config.Config, runOpts pipeline.Options, out io.Writer, execDataPath string, logger *slog.Logger) error {
	h, err := resolvePattern(patternArg)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(g, h, cfg, runOpts)
	if err != nil {
		return fmt.Errorf("concuss: %w", err)
	}
	logger.Debug("run complete", "count", res.Count, "treedepth_lower_bound", res.TreeDepthLowerBound)

	if _, err := fmt.Fprintf(out, "%d\n", res.Count); err != nil {
		return fmt.Errorf("concuss: writing result: %w", err)
	}

	if execDataPath != "" {
		return writeExecData(execDataPath, graphFile, patternArg, cfg, h, res)
	}
	return nil
}

func runMultiPattern(g *graphmodel.Graph, multiPatternFile string, cfg *config.Config, runOpts pipeline.Options, out io.Writer, logger *slog.Logger) error {
	named, err := format.ReadMultiPatternFile(multiPatternFile)
	if err != nil {
		return fmt.Errorf("concuss: reading multi-pattern file %q: %w", multiPatternFile, err)
	}
	if len(named) == 0 {
		return fmt.Errorf("concuss: %q names no patterns", multiPatternFile)
	}

	for _, np := range named {
		res, err := pipeline.Run(g, np.Graph, cfg, runOpts)
		if err != nil {
			return fmt.Errorf("concuss: pattern %q: %w", np.Name, err)
		}
		logger.Debug("run complete", "pattern", np.Name, "count", res.Count)
		if _, err := fmt.Fprintf(out, "%s: %d\n", np.Name, res.Count); err != nil {
			return fmt.Errorf("concuss: writing result: %w", err)
		}
	}
	return nil
}

// resolvePattern interprets patternArg per spec.md §6: the clique{n}/
// path{n}/... mini-language first, falling back to reading it as a graph
// file.
func resolvePattern(patternArg string) (*pattern.Graph, error) {
	builder, nameErr := pattern.ParseName(patternArg)
	if nameErr == nil {
		h, err := pattern.Build(builder)
		if err != nil {
			return nil, fmt.Errorf("concuss: building pattern %q: %w", patternArg, err)
		}
		return h, nil
	}

	h, fileErr := format.ReadGraph(patternArg)
	if fileErr != nil {
		return nil, fmt.Errorf("concuss: pattern %q is neither a known name nor a readable graph file: %w", patternArg, nameErr)
	}
	return h, nil
}

// writeExecData builds the diagnostic archive spec.md §6 describes: the
// source files, a visinfo.cfg summary, and a decomposition/DP-table dump
// for the host graph's largest connected component (the representative
// decomposition the archive's visualiser inspects, independent of which
// color sets the run itself swept).
func writeExecData(path, graphFile, patternArg string, cfg *config.Config, h *pattern.Graph, res *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("concuss: opening -e %q: %w", path, err)
	}
	defer f.Close()

	k := len(h.Vertices())
	comp := execdata.LargestComponent(res.Normalized)
	colorOf := make(map[int]int, len(comp))
	for _, v := range comp {
		col, _ := res.Coloring.Get(v)
		colorOf[v] = col
	}
	tdd, err := decompose.BuildTDD(comp, colorOf, res.Normalized.Neighbors)
	if err != nil {
		return fmt.Errorf("concuss: building execdata TDD: %w", err)
	}

	var table dp.Table
	if cfg.Forward {
		table = dp.NewForwardTable(res.Normalized, tdd, h, k)
	} else {
		table = dp.NewScalarTable(res.Normalized, tdd)
	}
	dp.NewEvaluator(table).Run(tdd, h, k)

	w := execdata.New(f)
	if err := w.CopyFile("graph"+filepath.Ext(graphFile), graphFile); err != nil {
		return err
	}
	if _, statErr := os.Stat(patternArg); statErr == nil {
		if err := w.CopyFile("pattern"+filepath.Ext(patternArg), patternArg); err != nil {
			return err
		}
	}
	if err := w.WriteVisInfo(execdata.VisInfo{
		GraphFile:    graphFile,
		PatternName:  patternArg,
		PatternSize:  k,
		NumColors:    res.Coloring.NumColors(),
		TreeDepthLow: res.TreeDepthLowerBound,
		Combiner:     cfg.Combine,
		Count:        res.Count,
	}); err != nil {
		return err
	}
	if err := w.WriteLargestComponent(res.Normalized, "largest_component.txt"); err != nil {
		return err
	}
	if err := w.WriteTDD(tdd, "tdd.txt"); err != nil {
		return err
	}
	if err := w.WriteDPTable(table, "dp_table.txt"); err != nil {
		return err
	}
	if err := w.WriteColorSetCounts(res.ColorSetCounts, "counts_per_colorset.txt"); err != nil {
		return err
	}
	return w.Close()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
