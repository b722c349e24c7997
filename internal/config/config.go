package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Search   Search   `yaml:"search"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type Search struct {
	Parallel bool `yaml:"parallel" env:"SEARCH_PARALLEL" env-default:"false"`
}

type SelfPlay struct {
	Games int `yaml:"games" env:"SELF_PLAY_GAMES" env-default:"1"`
	// Opening is played from the initial board before the bots take over.
	Opening [][2]int `yaml:"opening"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// Default - configuration with every env-default applied and no file.
func Default() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read default config: %w", err))
	}

	return config
}
