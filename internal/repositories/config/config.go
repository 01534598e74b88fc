/*
Package config loads the settings of the wasabi program: the prompt, colors,
logging and the history file. None of them change how commands are interpreted.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	configDir      = ".wasabi"
	configFilename = "config.yaml"

	// DefaultPrompt is the prompt shown when nothing else is configured.
	DefaultPrompt = "> "
)

// Config holds the program settings.
type Config struct {
	Prompt      string `yaml:"prompt" env:"WASABI_PROMPT"`
	Color       bool   `yaml:"color" env:"WASABI_COLOR"`
	Debug       bool   `yaml:"debug" env:"WASABI_DEBUG"`
	HistoryFile string `yaml:"history_file" env:"WASABI_HISTORY_FILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt: DefaultPrompt,
		Color:  true,
	}
}

// DefaultPath returns $HOME/.wasabi/config.yaml.
func DefaultPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, configDir, configFilename), nil
}

/*
Load builds the configuration from the defaults, then the YAML file at path,
then WASABI_* environment variables. A missing or empty file is not an error;
unknown keys in the file are.
*/
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// A file with only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	return nil
}
