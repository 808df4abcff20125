package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultPath is where commands look for project configuration. Which
// commands the process registers depends on whether this file exists.
const DefaultPath = "crowdtask.yaml"

type Config struct {
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	Localhost   string `mapstructure:"localhost"`
	Sandbox     bool   `mapstructure:"sandbox"`
	DatabaseURL string `mapstructure:"database_url"`
}

var errNotPresent = errors.New("config file not present")

// IsNotPresent reports whether err means no project configuration exists,
// as opposed to a malformed or unreadable one.
func IsNotPresent(err error) bool {
	return errors.Is(err, errNotPresent)
}

// Load reads project configuration from path, with CROWDTASK_* environment
// overrides for every key.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("crowdtask")
	v.AutomaticEnv()

	v.SetDefault("sandbox", true)
	v.SetDefault("localhost", "http://localhost:8080")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, errNotPresent)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
