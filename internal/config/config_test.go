package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/noise_ive_go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefault(t *testing.T) {
	cfg, err := config.WithDefault().Build()
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Width())
	assert.Equal(t, 64, cfg.Height())
	assert.Equal(t, 1, cfg.Depth())
	assert.Equal(t, 2, cfg.Dimensions())
	assert.Equal(t, 0.5, cfg.Step())
	assert.Equal(t, [3]float64{}, cfg.Origin())
	assert.Equal(t, uint64(1), cfg.Seed())
	assert.Equal(t, 4, cfg.Consumers())
	assert.True(t, cfg.Cached())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.False(t, cfg.Development())
	assert.Equal(t, 64*64, cfg.Samples())
}

func TestBuild_DepthIgnoredIn2D(t *testing.T) {
	cfg, err := config.WithDefault().WithDepth(0).WithWidth(3).WithHeight(2).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Depth())
	assert.Equal(t, 6, cfg.Samples())
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"zero width", config.WithDefault().WithWidth(0)},
		{"negative height", config.WithDefault().WithHeight(-1)},
		{"four dimensions", config.WithDefault().WithDimensions(4)},
		{"3d without depth", config.WithDefault().WithDimensions(3).WithDepth(0)},
		{"zero step", config.WithDefault().WithStep(0)},
		{"no consumers", config.WithDefault().WithConsumers(0)},
		{"bad log level", config.WithDefault().WithLogLevel("trace")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWithConfigFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"width": 8,
		"dimensions": 3,
		"depth": 4,
		"origin": [1, 2, 3],
		"seed": 99,
		"cached": false,
		"logLevel": "debug",
		"development": true
	}`)

	cfg, err := config.WithConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Width())
	assert.Equal(t, 64, cfg.Height()) // default
	assert.Equal(t, 4, cfg.Depth())
	assert.Equal(t, 3, cfg.Dimensions())
	assert.Equal(t, [3]float64{1, 2, 3}, cfg.Origin())
	assert.Equal(t, uint64(99), cfg.Seed())
	assert.Equal(t, 4, cfg.Consumers()) // default
	assert.False(t, cfg.Cached())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.True(t, cfg.Development())
}

func TestWithConfigFile_Errors(t *testing.T) {
	_, err := config.WithConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, config.ErrFileDoesNotExist)

	_, err = config.WithConfigFile(writeConfigFile(t, `{not json`))
	assert.ErrorIs(t, err, config.ErrConfigParsingFail)

	_, err = config.WithConfigFile(writeConfigFile(t, `{"dimensions": 5}`))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
