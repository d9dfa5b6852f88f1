package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/noise_ive_go/internal/config"
	"github.com/on-the-ground/noise_ive_go/internal/logger"
	"github.com/on-the-ground/noise_ive_go/internal/sampler"
)

type flags struct {
	cfgFile     string
	width       int
	height      int
	depth       int
	dimensions  int
	step        float64
	origin      []float64
	seed        uint64
	consumers   int
	cached      bool
	logLevel    string
	development bool
}

// NewRootCmd builds the noisecache command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "noisecache",
		Short: "Sample a noise pipeline with and without a single-slot cache.",
		Long: `noisecache walks a grid through a pipeline in which several consumers read
one shared white noise source at the same point. Putting a single-slot cache
in front of that source turns N evaluations per point into one, without
changing a single bit of output.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.cfgFile, "config-file", "", "JSON config file; flags given explicitly override it")
	pf.IntVar(&f.width, "width", 0, "samples along x")
	pf.IntVar(&f.height, "height", 0, "samples along y")
	pf.IntVar(&f.depth, "depth", 0, "samples along z (3 dimensions only)")
	pf.IntVar(&f.dimensions, "dimensions", 0, "2 or 3")
	pf.Float64Var(&f.step, "step", 0, "distance between neighbouring samples")
	pf.Float64SliceVar(&f.origin, "origin", nil, "coordinate of the first sample, e.g. 0,0,0")
	pf.Uint64Var(&f.seed, "seed", 0, "white noise seed")
	pf.IntVar(&f.consumers, "consumers", 0, "consumers reading the shared source at each point")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&f.development, "dev", false, "human readable logs")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample the grid once and print the report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(cmd, f)
			if err != nil {
				return err
			}
			return withLogger(cfg, func(log *zap.Logger) error {
				report, err := sampler.Sample(cmd.Context(), cfg, log)
				if err != nil {
					return err
				}
				_, err = report.WriteTo(cmd.OutOrStdout())
				return err
			})
		},
	}
	sampleCmd.Flags().BoolVar(&f.cached, "cached", true, "put a single-slot cache in front of the shared source")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Sample cached and uncached, and fail if the outputs differ.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(cmd, f)
			if err != nil {
				return err
			}
			return withLogger(cfg, func(log *zap.Logger) error {
				cached, uncached, err := sampler.Compare(cmd.Context(), cfg, log)
				if err != nil {
					return err
				}
				return writeComparison(cmd.OutOrStdout(), cached, uncached)
			})
		},
	}

	rootCmd.AddCommand(sampleCmd, compareCmd)
	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// initConfig starts from the config file when given, or the defaults, and
// applies every flag the user set explicitly.
func initConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	builder := config.WithDefault()
	if f.cfgFile != "" {
		cfg, err := config.WithConfigFile(f.cfgFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("error initializing config from file: %w", err)
		}
		builder = &cfg
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		builder = builder.WithWidth(f.width)
	}
	if changed("height") {
		builder = builder.WithHeight(f.height)
	}
	if changed("depth") {
		builder = builder.WithDepth(f.depth)
	}
	if changed("dimensions") {
		builder = builder.WithDimensions(f.dimensions)
	}
	if changed("step") {
		builder = builder.WithStep(f.step)
	}
	if changed("origin") {
		if len(f.origin) > 3 {
			return config.Config{}, fmt.Errorf("%w: origin takes at most 3 coordinates, got %d", config.ErrInvalidConfig, len(f.origin))
		}
		var origin [3]float64
		copy(origin[:], f.origin)
		builder = builder.WithOrigin(origin)
	}
	if changed("seed") {
		builder = builder.WithSeed(f.seed)
	}
	if changed("consumers") {
		builder = builder.WithConsumers(f.consumers)
	}
	if changed("cached") {
		builder = builder.WithCached(f.cached)
	}
	if changed("log-level") {
		builder = builder.WithLogLevel(f.logLevel)
	}
	if changed("dev") {
		builder = builder.WithDevelopment(f.development)
	}
	return builder.Build()
}

func withLogger(cfg config.Config, fn func(*zap.Logger) error) error {
	log, err := logger.New(cfg.LogLevel(), cfg.Development())
	if err != nil {
		return err
	}
	defer logger.Sync(log)
	return fn(log)
}

func writeComparison(w io.Writer, cached, uncached sampler.Report) error {
	if _, err := fmt.Fprintln(w, "== cached"); err != nil {
		return err
	}
	if _, err := cached.WriteTo(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "== uncached"); err != nil {
		return err
	}
	if _, err := uncached.WriteTo(w); err != nil {
		return err
	}
	saved := uncached.SourceCalls - cached.SourceCalls
	_, err := fmt.Fprintf(w, "== identical output, %d source calls saved\n", saved)
	return err
}
