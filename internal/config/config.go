package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/abhisek/aceguide/internal/guide"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: ACEGUIDE_FEATURES__PROGRESS_TRACKER=false.
const EnvPrefix = "ACEGUIDE_"

// ErrInvalidConfig lists every problem found by Validate.
type ErrInvalidConfig struct {
	Problems []string
}

func (e *ErrInvalidConfig) Error() string {
	return "invalid config:\n  " + strings.Join(e.Problems, "\n  ")
}

// DefaultPath returns the config file path: ACEGUIDE_CONFIG if set,
// otherwise $XDG_CONFIG_HOME/aceguide/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("ACEGUIDE_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "aceguide", "config.yaml"), nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ACEGUIDE_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps ACEGUIDE_FEATURES__TAKEAWAYS to features.takeaways.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path, creating the
// parent directory if needed.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// Returns *ErrInvalidConfig listing all problems.
func (c *Config) Validate() error {
	var problems []string

	if _, err := guide.ParseTheme(c.Theme); err != nil {
		problems = append(problems, err.Error())
	}

	if c.VisibilityThreshold <= 0 || c.VisibilityThreshold > 1 {
		problems = append(problems, fmt.Sprintf("visibility_threshold must be in (0, 1], got %g", c.VisibilityThreshold))
	}

	if c.LoadingDelay < 0 || c.LoadingDelay > MaxLoadingDelay {
		problems = append(problems, fmt.Sprintf("loading_delay must be between 0 and %s, got %s", MaxLoadingDelay, c.LoadingDelay))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return &ErrInvalidConfig{Problems: problems}
	}
	return nil
}
