// Package sampler walks a grid through a fan-out pipeline over white noise,
// with or without a single-slot cache in front of the shared source.
package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/noise_ive_go/internal/config"
	"github.com/on-the-ground/noise_ive_go/internal/field"
	"github.com/on-the-ground/noise_ive_go/noisefn"
)

// Sample evaluates every grid point of cfg and reports what it cost.
// ctx is checked between rows; a cancelled run returns ctx.Err().
func Sample(ctx context.Context, cfg config.Config, log *zap.Logger) (Report, error) {
	switch cfg.Dimensions() {
	case 2:
		return run(ctx, cfg, log, func(x, y, _ float64) [2]float64 { return [2]float64{x, y} })
	case 3:
		return run(ctx, cfg, log, func(x, y, z float64) [3]float64 { return [3]float64{x, y, z} })
	default:
		return Report{}, fmt.Errorf("%w: dimensions must be 2 or 3, got %d", config.ErrInvalidConfig, cfg.Dimensions())
	}
}

// Compare samples cfg once cached and once uncached and checks that the
// cache did not change a single bit of output.
func Compare(ctx context.Context, cfg config.Config, log *zap.Logger) (cached, uncached Report, err error) {
	cachedCfg, err := (&cfg).WithCached(true).Build()
	if err != nil {
		return Report{}, Report{}, err
	}
	uncachedCfg, err := (&cfg).WithCached(false).Build()
	if err != nil {
		return Report{}, Report{}, err
	}

	if cached, err = Sample(ctx, cachedCfg, log); err != nil {
		return Report{}, Report{}, err
	}
	if uncached, err = Sample(ctx, uncachedCfg, log); err != nil {
		return Report{}, Report{}, err
	}
	if cached.Digest != uncached.Digest {
		return cached, uncached, fmt.Errorf("%w: %016x != %016x", ErrDigestMismatch, cached.Digest, uncached.Digest)
	}
	return cached, uncached, nil
}

func run[P noisefn.Point](
	ctx context.Context,
	cfg config.Config,
	log *zap.Logger,
	makePoint func(x, y, z float64) P,
) (Report, error) {
	report := Report{
		RunID:      uuid.New(),
		Cached:     cfg.Cached(),
		Dimensions: cfg.Dimensions(),
		Consumers:  cfg.Consumers(),
	}
	log = log.With(zap.Stringer("run_id", report.RunID))

	source := field.NewCounting[P](field.White[P]{Seed: cfg.Seed()})
	var shared noisefn.NoiseFn[P] = source
	var cache *noisefn.Cache[P]
	if cfg.Cached() {
		cache = noisefn.NewCache[P](source)
		shared = cache
	}
	pipeline := field.NewFanout(shared, cfg.Consumers())

	log.Info("sampling started",
		zap.Bool("cached", cfg.Cached()),
		zap.Int("dimensions", cfg.Dimensions()),
		zap.Int("consumers", cfg.Consumers()),
		zap.Int("samples", cfg.Samples()),
	)

	digest := field.NewDigest()
	origin := cfg.Origin()
	step := cfg.Step()
	start := time.Now()
	for z := 0; z < cfg.Depth(); z++ {
		for y := 0; y < cfg.Height(); y++ {
			if err := ctx.Err(); err != nil {
				log.Warn("sampling cancelled", zap.Uint64("samples", digest.Count()), zap.Error(err))
				return Report{}, err
			}
			for x := 0; x < cfg.Width(); x++ {
				p := makePoint(
					origin[0]+float64(x)*step,
					origin[1]+float64(y)*step,
					origin[2]+float64(z)*step,
				)
				digest.Add(pipeline.Get(p))
			}
		}
	}
	report.Span = timespan.BetweenTimes(start, time.Now())

	report.Samples = digest.Count()
	report.Digest = digest.Sum64()
	report.SourceCalls = source.Calls()
	if cache != nil {
		stats := cache.Stats()
		report.Hits = stats.Hits
		report.Misses = stats.Misses
	}

	log.Info("sampling finished",
		zap.Uint64("samples", report.Samples),
		zap.Uint64("source_calls", report.SourceCalls),
		zap.Uint64("hits", report.Hits),
		zap.Uint64("misses", report.Misses),
		zap.Duration("elapsed", report.Span.Duration()),
		zap.String("digest", fmt.Sprintf("%016x", report.Digest)),
	)
	return report, nil
}
