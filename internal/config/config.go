package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var errMissingToken = errors.New("discord token is empty")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Discord  Discord `yaml:"discord"`
	Redis    Redis   `yaml:"redis"`
}

type Discord struct {
	Token string `yaml:"token" env:"DISCORD_TOKEN" env-required:"true"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	FenceTTL time.Duration `yaml:"fence-ttl" env:"REDIS_FENCE_TTL" env-default:"24h"`
}

// Load - reads path, or only the environment when path does not exist.
// Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	// cleanenv accepts a required variable that is set but empty
	if strings.TrimSpace(config.Discord.Token) == "" {
		return nil, errMissingToken
	}

	return config, nil
}

// MustLoad - like Load, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
