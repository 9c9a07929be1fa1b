// Command decimate reads a JSON point series, reduces it with one of the
// decimation methods and writes the reduced series as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/uyouii/plot-decimation/config"
	"github.com/uyouii/plot-decimation/decimation"
	"github.com/uyouii/plot-decimation/model"
	"github.com/uyouii/plot-decimation/utils"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	configPath  string
	input       string
	output      string
	method      string
	count       int
	step        int
	strategy    string
	logarithmic bool
	endpoint    bool
	logLevel    string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "decimate",
		Short: "Reduce a dense plotted line to a bounded number of points",
		Long: `decimate reads {"labels":{...},"points":[{"x":..,"y":..},...]} from stdin
or --input and writes the reduced series in the same format.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.input, "input", "i", "", "input file (default stdin)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVarP(&opts.method, "method", "m", def.Decimation.Method, "none, group, stride or count")
	flags.IntVarP(&opts.count, "count", "n", def.Decimation.Count, "target point count for the count method")
	flags.IntVar(&opts.step, "step", def.Decimation.Step, "points skipped between kept ones for the stride method")
	flags.StringVarP(&opts.strategy, "strategy", "s", def.Decimation.Strategy, "None, Linear or MinMaxSpikeDetection")
	flags.BoolVar(&opts.logarithmic, "log", def.Decimation.Logarithmic, "logarithmic index distribution")
	flags.BoolVar(&opts.endpoint, "endpoint", def.Decimation.Endpoint, "include the series end in the index distribution")
	flags.StringVar(&opts.logLevel, "log-level", def.Log.Level, "debug, info, warn or error")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cmd.Flags(), opts, cfg)

	if _, err := decimation.ParseMethod(cfg.Decimation.Method); err != nil {
		return err
	}
	if _, err := decimation.ParseStrategy(cfg.Decimation.Strategy); err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	ctx := utils.WithLogger(cmd.Context(), logger)

	in := cmd.InOrStdin()
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	series, err := readSeries(in)
	if err != nil {
		return err
	}

	reduced := &model.Series{
		Labels: series.Labels,
		Points: decimation.Reduce(ctx, nil, series, cfg.Decimation),
	}
	logger.Info("decimate finished", zap.Int("inCnt", len(series.Points)), zap.Int("outCnt", len(reduced.Points)))

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return writeSeries(out, reduced)
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(flags *pflag.FlagSet, opts *options, cfg *config.Config) {
	if flags.Changed("method") {
		cfg.Decimation.Method = opts.method
	}
	if flags.Changed("count") {
		cfg.Decimation.Count = opts.count
	}
	if flags.Changed("step") {
		cfg.Decimation.Step = opts.step
	}
	if flags.Changed("strategy") {
		cfg.Decimation.Strategy = opts.strategy
	}
	if flags.Changed("log") {
		cfg.Decimation.Logarithmic = opts.logarithmic
	}
	if flags.Changed("endpoint") {
		cfg.Decimation.Endpoint = opts.endpoint
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}

func readSeries(r io.Reader) (*model.Series, error) {
	series := &model.Series{}
	if err := json.NewDecoder(r).Decode(series); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}
	return series, nil
}

func writeSeries(w io.Writer, series *model.Series) error {
	if series.Points == nil {
		series.Points = []model.Point{}
	}
	if err := json.NewEncoder(w).Encode(series); err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}
	return nil
}
