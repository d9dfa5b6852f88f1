package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	//===============
	// Grid
	//===============
	// Number of samples along x
	width int
	// Number of samples along y
	height int
	// Number of samples along z. Only used when dimensions is 3
	depth int
	// 2 or 3
	dimensions int
	// Distance between neighbouring samples
	step float64
	// Coordinate of the first sample
	origin [3]float64

	//===============
	// Pipeline
	//===============
	// Seed of the white noise source
	seed uint64
	// Number of consumers reading the shared source at each point
	consumers int
	// Whether the shared source sits behind a single-slot cache
	cached bool

	//===============
	// Logging
	//===============
	// One of debug, info, warn, error
	logLevel string
	// Console encoder instead of JSON
	development bool
}

type configDTO struct {
	Width       int        `json:"width,omitempty"`
	Height      int        `json:"height,omitempty"`
	Depth       int        `json:"depth,omitempty"`
	Dimensions  int        `json:"dimensions,omitempty"`
	Step        float64    `json:"step,omitempty"`
	Origin      [3]float64 `json:"origin,omitempty"`
	Seed        uint64     `json:"seed,omitempty"`
	Consumers   int        `json:"consumers,omitempty"`
	Cached      *bool      `json:"cached,omitempty"`
	LogLevel    string     `json:"logLevel,omitempty"`
	Development bool       `json:"development,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg := *WithDefault()

	// zero means "keep the default" for everything but origin and development
	if dto.Width != 0 {
		cfg.width = dto.Width
	}
	if dto.Height != 0 {
		cfg.height = dto.Height
	}
	if dto.Depth != 0 {
		cfg.depth = dto.Depth
	}
	if dto.Dimensions != 0 {
		cfg.dimensions = dto.Dimensions
	}
	if dto.Step != 0 {
		cfg.step = dto.Step
	}
	cfg.origin = dto.Origin
	if dto.Seed != 0 {
		cfg.seed = dto.Seed
	}
	if dto.Consumers != 0 {
		cfg.consumers = dto.Consumers
	}
	if dto.Cached != nil {
		cfg.cached = *dto.Cached
	}
	if dto.LogLevel != "" {
		cfg.logLevel = dto.LogLevel
	}
	cfg.development = dto.Development

	return cfg.Build()
}

// WithConfigFile reads a JSON config file. Absent keys keep their defaults.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	cfgDTO := configDTO{}
	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault returns a Config holding default values for every field.
func WithDefault() *Config {
	return &Config{
		width:      64,
		height:     64,
		depth:      1,
		dimensions: 2,
		step:       0.5,
		seed:       1,
		consumers:  4,
		cached:     true,
		logLevel:   "info",
	}
}

func (c *Config) WithWidth(width int) *Config {
	c.width = width
	return c
}

func (c *Config) WithHeight(height int) *Config {
	c.height = height
	return c
}

func (c *Config) WithDepth(depth int) *Config {
	c.depth = depth
	return c
}

func (c *Config) WithDimensions(dimensions int) *Config {
	c.dimensions = dimensions
	return c
}

func (c *Config) WithStep(step float64) *Config {
	c.step = step
	return c
}

func (c *Config) WithOrigin(origin [3]float64) *Config {
	c.origin = origin
	return c
}

func (c *Config) WithSeed(seed uint64) *Config {
	c.seed = seed
	return c
}

func (c *Config) WithConsumers(consumers int) *Config {
	c.consumers = consumers
	return c
}

func (c *Config) WithCached(cached bool) *Config {
	c.cached = cached
	return c
}

func (c *Config) WithLogLevel(level string) *Config {
	c.logLevel = level
	return c
}

func (c *Config) WithDevelopment(development bool) *Config {
	c.development = development
	return c
}

// Build validates the config and returns a copy of it.
func (c *Config) Build() (Config, error) {
	if c.width < 1 || c.height < 1 {
		return Config{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.width, c.height)
	}
	switch c.dimensions {
	case 2:
	case 3:
		if c.depth < 1 {
			return Config{}, fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, c.depth)
		}
	default:
		return Config{}, fmt.Errorf("%w: dimensions must be 2 or 3, got %d", ErrInvalidConfig, c.dimensions)
	}
	if c.step <= 0 {
		return Config{}, fmt.Errorf("%w: step must be positive, got %v", ErrInvalidConfig, c.step)
	}
	if c.consumers < 1 {
		return Config{}, fmt.Errorf("%w: consumers must be positive, got %d", ErrInvalidConfig, c.consumers)
	}
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.logLevel)
	}
	return *c, nil
}

func (c Config) Width() int {
	return c.width
}

func (c Config) Height() int {
	return c.height
}

// Depth is 1 for a 2D grid.
func (c Config) Depth() int {
	if c.dimensions == 2 {
		return 1
	}
	return c.depth
}

func (c Config) Dimensions() int {
	return c.dimensions
}

func (c Config) Step() float64 {
	return c.step
}

func (c Config) Origin() [3]float64 {
	return c.origin
}

func (c Config) Seed() uint64 {
	return c.seed
}

func (c Config) Consumers() int {
	return c.consumers
}

func (c Config) Cached() bool {
	return c.cached
}

func (c Config) LogLevel() string {
	return c.logLevel
}

func (c Config) Development() bool {
	return c.development
}

// Samples is the number of grid points.
func (c Config) Samples() int {
	return c.Width() * c.Height() * c.Depth()
}
