// Package config loads runtime settings from defaults, an optional YAML file
// and CONNOISSEUR_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CONNOISSEUR_"

// Config holds runtime settings for the CLI app.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
	Rating  RatingConfig  `koanf:"rating"`
	Sort    SortConfig    `koanf:"sort"`
	Display DisplayConfig `koanf:"display"`
	Prompt  PromptConfig  `koanf:"prompt"`
}

type StorageConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
	File  string `koanf:"file"`
}

type RatingConfig struct {
	Max int `koanf:"max" validate:"min=1,max=10"`
}

type SortConfig struct {
	Default string `koanf:"default" validate:"required,oneof=date title category rating rating-asc"`
}

type DisplayConfig struct {
	Default string `koanf:"default" validate:"required,oneof=stars asterisks"`
}

type PromptConfig struct {
	Mode string `koanf:"mode" validate:"required,oneof=auto form plain"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func defaults(dataDir string) map[string]any {
	return map[string]any{
		"storage.path":    filepath.Join(dataDir, "connoisseur.db"),
		"log.level":       "info",
		"log.file":        filepath.Join(dataDir, "connoisseur.log"),
		"rating.max":      5,
		"sort.default":    "date",
		"display.default": "stars",
		"prompt.mode":     "auto",
	}
}

// Load builds the configuration. A missing config file is not an error.
func Load(path, dataDir string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(dataDir), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	parts := strings.Split(e.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	field := strings.ToLower(strings.Join(parts, "."))

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// DefaultConfigPath returns the config file location under XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "connoisseur", "config.yaml")
}

// DefaultDataDir returns the data directory under XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "connoisseur")
}
