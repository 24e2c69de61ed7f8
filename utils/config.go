package utils

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	PatternEmpty    = "empty"
	PatternRandom   = "random"
	PatternPatterns = "patterns"
)

// Config holds the configuration for the game
type Config struct {
	Width          int      `mapstructure:"width"`
	Height         int      `mapstructure:"height"`
	CellSize       int      `mapstructure:"cell_size"`
	Left           int      `mapstructure:"left"`
	Top            int      `mapstructure:"top"`
	TPS            int      `mapstructure:"tps"`
	TPSStep        int      `mapstructure:"tps_step"`
	MinTPS         int      `mapstructure:"min_tps"`
	MaxTPS         int      `mapstructure:"max_tps"`
	Parallel       bool     `mapstructure:"parallel"`
	Workers        int      `mapstructure:"workers"`
	UseMemoryPool  bool     `mapstructure:"use_memory_pool"`
	UseBoundedGrid bool     `mapstructure:"use_bounded_grid"`
	MaxGenerations int      `mapstructure:"max_generations"`
	AutoRestart    bool     `mapstructure:"auto_restart"`
	Seed           int64    `mapstructure:"seed"`
	RandomDensity  float64  `mapstructure:"random_density"`
	Pattern        string   `mapstructure:"pattern"`
	Cells          [][2]int `mapstructure:"cells"`
	// StartDelay is how long the terminal driver shows the seeded board
	StartDelay time.Duration `mapstructure:"start_delay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          30,
		Height:         30,
		CellSize:       15,
		TPS:            10,
		TPSStep:        3,
		MinTPS:         1,
		MaxTPS:         120,
		Parallel:       false,
		UseMemoryPool:  true,
		UseBoundedGrid: false,
		MaxGenerations: 1000,
		AutoRestart:    false,
		Seed:           42,
		RandomDensity:  0.15,
		Pattern:        PatternPatterns,
		StartDelay:     2 * time.Second,
	}
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("width", c.Width)
	v.SetDefault("height", c.Height)
	v.SetDefault("cell_size", c.CellSize)
	v.SetDefault("left", c.Left)
	v.SetDefault("top", c.Top)
	v.SetDefault("tps", c.TPS)
	v.SetDefault("tps_step", c.TPSStep)
	v.SetDefault("min_tps", c.MinTPS)
	v.SetDefault("max_tps", c.MaxTPS)
	v.SetDefault("parallel", c.Parallel)
	v.SetDefault("workers", c.Workers)
	v.SetDefault("use_memory_pool", c.UseMemoryPool)
	v.SetDefault("use_bounded_grid", c.UseBoundedGrid)
	v.SetDefault("max_generations", c.MaxGenerations)
	v.SetDefault("auto_restart", c.AutoRestart)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("random_density", c.RandomDensity)
	v.SetDefault("pattern", c.Pattern)
	v.SetDefault("start_delay", c.StartDelay)
}

// LoadConfig loads configuration from a json, yaml or toml file on top of the
// defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	v := viper.New()
	setDefaults(v, config)
	v.SetConfigFile(filename)

	if err := v.ReadInConfig(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the drivers cannot run
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize < 3:
		return errors.Errorf("cell_size must be at least 3, got %d", c.CellSize)
	case c.MinTPS <= 0 || c.MaxTPS < c.MinTPS:
		return errors.Errorf("tick range [%d, %d] is empty", c.MinTPS, c.MaxTPS)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	switch c.Pattern {
	case PatternEmpty, PatternRandom, PatternPatterns:
	default:
		return errors.Errorf("unknown pattern %q", c.Pattern)
	}
	return nil
}
