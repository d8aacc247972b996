package config

import (
	"errors"
	"fmt"

	log "github.com/golang/glog"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings shared by the command line tools.
// Flags given on the command line take precedence.
type Config struct {
	TopN      int    `env:"GOTOPIC_TOP_N" env-default:"10"`
	VocabFile string `env:"GOTOPIC_VOCAB_FILE" env-default:""`
	Topics    int    `env:"GOTOPIC_TOPICS" env-default:"0"` // 0 = number of phi columns
}

// New loads an optional .env file and reads the configuration from the
// environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.V(1).Infof("no .env file loaded: %v", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("top n %d: %w", c.TopN, ErrInvalidConfig)
	}
	if c.Topics < 0 {
		return fmt.Errorf("topics %d: %w", c.Topics, ErrInvalidConfig)
	}
	return nil
}
