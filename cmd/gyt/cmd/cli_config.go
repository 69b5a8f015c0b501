package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// CLIConfig describes the CLI configuration: the few settings that do
// not change across runs. This is distinct from the per-repository
// config document managed by "gyt config".
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Log level for the CLI
	Root     string `json:"root" yaml:"root"`         // Default repository root directory
}

func newLocalConfig() (*CLIConfig, error) {
	var config CLIConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// setGytParams fills flag values left at their defaults from the CLI
// config file.
func (c *CLIConfig) setGytParams(flags *flagsT) {
	if flags.root.logLevel == "none" && c.LogLevel != "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.dir == "." && c.Root != "" {
		flags.root.dir = c.Root
	}
}

// MarshalConfig serializes the CLI config as a yaml document.
func (c *CLIConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}

// configFileLocation yields the CLI config file location, honoring the
// GYT_CONFIG environment variable.
func configFileLocation(expandEnv bool) string {
	if location := os.Getenv(envConfigLocation); location != "" {
		return location
	}
	home := "$HOME"
	if expandEnv {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	return filepath.Join(home, ".gyt", "gyt.yaml")
}
