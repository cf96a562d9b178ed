package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ledgewood/daybook/internal/output"
)

// Config is the persisted daybook configuration.
type Config struct {
	// JournalDir is the directory holding the journal repository.
	JournalDir string `yaml:"journal_dir"`
}

// Path returns the location of the config file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file. A missing file is not an error: it
// returns an empty Config so callers can fall through to defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func (c *Config) Save() error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolveJournalDir determines the journal directory for a command.
//
// Precedence:
//   - the --dir flag if set
//   - $DAYBOOK_DIR if set
//   - journal_dir from the config file
//
// When none of these is set it returns a user error directing the
// caller to daybook init.
func ResolveJournalDir(flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if dir := os.Getenv("DAYBOOK_DIR"); dir != "" {
		return dir, nil
	}

	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.JournalDir != "" {
		return cfg.JournalDir, nil
	}

	return "", output.NewUserError("no journal directory configured (run 'daybook init' or pass --dir)")
}
