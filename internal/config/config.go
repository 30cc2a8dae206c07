package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"UTTT_LOG_LEVEL" env-default:"info"`
	// 0 means a time based seed
	Seed             int64      `yaml:"seed" env:"UTTT_SEED" env-default:"0"`
	ExplorationParam float64    `yaml:"exploration-param" env:"UTTT_EXPLORATION_PARAM" env-default:"2"`
	NoColor          bool       `yaml:"no-color" env:"NO_COLOR" env-default:"false"`
	Play             Play       `yaml:"play"`
	Experiment       Experiment `yaml:"experiment"`
	Arena            Arena      `yaml:"arena"`
}

type Play struct {
	// Iterations per engine move
	Budget int `yaml:"budget" env:"UTTT_BUDGET" env-default:"2000"`
	// Side of the human player: x, o or none (engine vs engine)
	Human string `yaml:"human" env:"UTTT_HUMAN" env-default:"x"`
	// Starting position in the game notation
	Position string `yaml:"position" env:"UTTT_POSITION" env-default:"startpos"`
}

type Experiment struct {
	Games     int    `yaml:"games" env:"UTTT_GAMES" env-default:"10000"`
	Workers   int    `yaml:"workers" env:"UTTT_WORKERS" env-default:"4"`
	ChartPath string `yaml:"chart-path" env:"UTTT_CHART_PATH" env-default:""`
}

type Arena struct {
	// Budget <= 0 is a random player
	Player1Budget int    `yaml:"player1-budget" env:"UTTT_ARENA_P1_BUDGET" env-default:"500"`
	Player2Budget int    `yaml:"player2-budget" env:"UTTT_ARENA_P2_BUDGET" env-default:"0"`
	Games         int    `yaml:"games" env:"UTTT_ARENA_GAMES" env-default:"20"`
	Workers       int    `yaml:"workers" env:"UTTT_ARENA_WORKERS" env-default:"2"`
	ChartPath     string `yaml:"chart-path" env:"UTTT_ARENA_CHART_PATH" env-default:""`
}

// Load the configuration from a yaml file, environment variables override it.
// With an empty path only the environment (and the defaults) are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - same as Load, panics on error
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", ErrInvalidConfig, err)
	}
	if c.ExplorationParam < 0 {
		return fmt.Errorf("%w: exploration-param must not be negative, got %v", ErrInvalidConfig, c.ExplorationParam)
	}

	switch c.Play.Human {
	case "x", "o", "none":
	default:
		return fmt.Errorf("%w: play.human must be one of x, o, none, got %q", ErrInvalidConfig, c.Play.Human)
	}
	if c.Play.Budget <= 0 {
		return fmt.Errorf("%w: play.budget must be positive, got %d", ErrInvalidConfig, c.Play.Budget)
	}

	if c.Experiment.Games <= 0 || c.Experiment.Workers <= 0 {
		return fmt.Errorf("%w: experiment games and workers must be positive", ErrInvalidConfig)
	}
	if c.Arena.Games <= 0 || c.Arena.Workers <= 0 {
		return fmt.Errorf("%w: arena games and workers must be positive", ErrInvalidConfig)
	}
	return nil
}
