package sampler_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/on-the-ground/noise_ive_go/internal/config"
	"github.com/on-the-ground/noise_ive_go/internal/logger"
	"github.com/on-the-ground/noise_ive_go/internal/sampler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildConfig(t *testing.T, c *config.Config) config.Config {
	t.Helper()
	cfg, err := c.Build()
	require.NoError(t, err)
	return cfg
}

func TestSample_Cached2D(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithWidth(8).WithHeight(5).WithConsumers(3))

	report, err := sampler.Sample(context.Background(), cfg, logger.NewTest())
	require.NoError(t, err)

	assert.True(t, report.Cached)
	assert.Equal(t, 2, report.Dimensions)
	assert.Equal(t, uint64(40), report.Samples)
	assert.Equal(t, uint64(40), report.SourceCalls)
	assert.Equal(t, uint64(40), report.Misses)
	assert.Equal(t, uint64(80), report.Hits)
	assert.Equal(t, 1.0, report.CallsPerSample())
	assert.NotEqual(t, [16]byte{}, [16]byte(report.RunID))
}

func TestSample_Uncached3D(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().
		WithDimensions(3).WithWidth(4).WithHeight(3).WithDepth(2).
		WithConsumers(5).WithCached(false))

	report, err := sampler.Sample(context.Background(), cfg, logger.NewTest())
	require.NoError(t, err)

	assert.False(t, report.Cached)
	assert.Equal(t, uint64(24), report.Samples)
	assert.Equal(t, uint64(24*5), report.SourceCalls)
	assert.Zero(t, report.Hits)
	assert.Zero(t, report.Misses)
}

func TestSample_Deterministic(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithWidth(6).WithHeight(6).WithSeed(1234))

	a, err := sampler.Sample(context.Background(), cfg, logger.NewTest())
	require.NoError(t, err)
	b, err := sampler.Sample(context.Background(), cfg, logger.NewTest())
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest)
	assert.NotEqual(t, a.RunID, b.RunID)

	other := buildConfig(t, config.WithDefault().WithWidth(6).WithHeight(6).WithSeed(4321))
	c, err := sampler.Sample(context.Background(), other, logger.NewTest())
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, c.Digest)
}

func TestSample_Cancelled(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sampler.Sample(ctx, cfg, logger.NewTest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare_CacheIsTransparent(t *testing.T) {
	for _, dims := range []int{2, 3} {
		cfg := buildConfig(t, config.WithDefault().
			WithDimensions(dims).WithWidth(5).WithHeight(4).WithDepth(3).
			WithOrigin([3]float64{-1.25, 0.5, 10}))

		cached, uncached, err := sampler.Compare(context.Background(), cfg, logger.NewTest())
		require.NoError(t, err, "dims %d", dims)

		assert.Equal(t, cached.Digest, uncached.Digest)
		assert.Equal(t, cached.Samples, uncached.Samples)
		assert.Less(t, cached.SourceCalls, uncached.SourceCalls)
	}
}

func TestReport_WriteTo(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithWidth(2).WithHeight(2))
	report, err := sampler.Sample(context.Background(), cfg, logger.NewTest())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = report.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, report.RunID.String())
	assert.Contains(t, out, "samples:          4\n")
	assert.Contains(t, out, "cache hits:       12\n")
}
