package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

// Read loads the configuration from the process environment. Missing
// env-required values (the Mongo URI and the JWT signing key) surface
// here and fail the process at startup.
func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}

	return cfg, nil
}
