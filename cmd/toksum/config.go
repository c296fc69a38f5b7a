package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the toksum configuration file
// (~/.config/toksum/config.yaml). Fields left empty in the file never
// override flags.
type Config struct {
	Model    string `yaml:"model"`
	Encoding string `yaml:"encoding"`

	// Output
	JSON  *bool `yaml:"json"`
	Quiet *bool `yaml:"quiet"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "toksum", "config.yaml")
}

// loadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or cannot be parsed.
func loadConfig() Config {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyConfig applies config file defaults to the shared flag variables when
// the corresponding CLI flag was not explicitly set.
func applyConfig(c *cli.Command, cfg Config) {
	// A model or encoding given on the command line replaces the configured
	// pair entirely, so a configured model never conflicts with -e and vice
	// versa.
	if !c.IsSet("model") && !c.IsSet("encoding") {
		if cfg.Model != "" {
			modelName = cfg.Model
		}
		if cfg.Encoding != "" {
			encodingName = cfg.Encoding
		}
	}
	if cfg.JSON != nil && !c.IsSet("json") {
		jsonOut = *cfg.JSON
	}
	if cfg.Quiet != nil && !c.IsSet("quiet") {
		quiet = *cfg.Quiet
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
