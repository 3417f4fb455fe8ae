package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".ostree"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for ostree settings.
const envPrefix = "OSTREE"

// Color modes.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config holds the settings of a single ostree run.
type Config struct {
	Duplicates bool     `mapstructure:"duplicates"`
	Strings    bool     `mapstructure:"strings"`
	Queries    []string `mapstructure:"queries"`
	Color      string   `mapstructure:"color"`
}

// Validate checks the configuration for unsupported values.
func (cfg *Config) Validate() error {
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
		return nil
	}
	return fmt.Errorf("unsupported color mode %q", cfg.Color)
}

// LoadConfig loads configuration from file, env vars, flags and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()

	viperCfg.SetDefault("duplicates", false)
	viperCfg.SetDefault("strings", false)
	viperCfg.SetDefault("queries", []string{})
	viperCfg.SetDefault("color", colorAuto)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if cmd != nil {
		for key, flag := range map[string]string{
			"duplicates": "dups",
			"strings":    "strings",
			"queries":    "query",
			"color":      "color",
		} {
			if f := lookupFlag(cmd, flag); f != nil {
				if err := viperCfg.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
