package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pyramid-solitaire-server/internal/util"
)

// Config provides configuration for the pyramid solitaire server
type Config struct {
	loaded bool
	// nested fields key as PREFIX_STRUCTFIELD_TAG, e.g. PYRAMID_LOG_LEVEL
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		DefaultRows  int `yaml:"defaultRows" envconfig:"default_rows"`
		DefaultDraws int `yaml:"defaultDraws" envconfig:"default_draws"`
	}
	SessionTTLMinutes int `yaml:"sessionTtlMinutes" envconfig:"session_ttl_minutes"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; the defaults and environment take over
func Load() error {
	config = Config{}
	config.Game.DefaultRows = 7
	config.Game.DefaultDraws = 3
	config.SessionTTLMinutes = 60

	configFile := util.Getenv("PYRAMID_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pyramid", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
