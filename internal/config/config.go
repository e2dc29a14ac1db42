package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"PORT" env-default:"8884"`
	Engine     string `yaml:"engine" env:"ENGINE" env-default:"random"`
	StrictSize bool   `yaml:"strict-size" env:"STRICT_SIZE" env-default:"false"`
	Redis      Redis  `yaml:"redis"`
}

// Redis configures the optional move cache.
type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"10m"`
}

// Load - reads the yml file at path, then applies environment overrides.
// A missing file leaves the environment as the only source.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
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
