package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the tool configuration. Precedence, lowest to highest:
// defaults, YAML file, environment variables, CLI flags (applied by the
// caller).
type Config struct {
	Verbose bool `yaml:"verbose"`
	Ignore  struct {
		// Files are base names skipped during traversal.
		Files []string `yaml:"files" validate:"dive,required"`
		// Names are function names whose findings are suppressed.
		Names []string `yaml:"names" validate:"dive,required"`
		// Dirs are directory names skipped wholesale.
		Dirs []string `yaml:"dirs" validate:"dive,required"`
	} `yaml:"ignore"`
	Count struct {
		// Extensions filter the count subcommand, without the leading dot.
		Extensions []string `yaml:"extensions" validate:"dive,alphanum"`
	} `yaml:"count"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Count.Extensions = []string{"py"}
	return cfg
}

// Load reads the configuration. A missing file is not an error; the
// defaults apply and environment overrides are still honored.
func Load(path string) (*Config, error) {
	// Load .env if exists
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides config values with PYDOCCHECK_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PYDOCCHECK_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("PYDOCCHECK_IGNORE_FILES"); v != "" {
		cfg.Ignore.Files = strings.Fields(v)
	}
	if v := os.Getenv("PYDOCCHECK_IGNORE_NAMES"); v != "" {
		cfg.Ignore.Names = strings.Fields(v)
	}
	if v := os.Getenv("PYDOCCHECK_IGNORE_DIRS"); v != "" {
		cfg.Ignore.Dirs = strings.Fields(v)
	}
}
