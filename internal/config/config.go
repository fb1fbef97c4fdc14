package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Colors   ColorScheme    `yaml:"colors"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
	// SeedDefaults creates "To Do", "In Progress" and "Done" on an empty board.
	// A pointer so an explicit false in the file survives applyDefaults.
	SeedDefaults *bool `yaml:"seed_defaults"`
}

// LogConfig holds the logging settings. An empty File logs to stderr only.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Defaults
const (
	DefaultAddr       = "127.0.0.1:5000"
	DefaultLogLevel   = "info"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Environment overrides
const (
	EnvAddr     = "KANBAN_ADDR"
	EnvDBPath   = "KANBAN_DB_PATH"
	EnvLogLevel = "KANBAN_LOG_LEVEL"
	EnvLogFile  = "KANBAN_LOG_FILE"
	EnvSeed     = "KANBAN_SEED_DEFAULTS"
)

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Fall back to defaults if we can't determine config path
		configPath = ""
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A .env file in the working directory is
// loaded first, then environment variables override the file values.
// An empty or missing path yields the defaults.
func LoadFile(path string) (*Config, error) {
	// .env is optional; variables already set in the environment win
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Use defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the default config file location
func Path() (string, error) {
	return getConfigPath()
}

// ShouldSeed reports whether default columns are created on an empty board
func (c *Config) ShouldSeed() bool {
	return c.Database.SeedDefaults == nil || *c.Database.SeedDefaults
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// dataDir returns ~/.kanban, or a relative .kanban when the home directory is unknown
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(homeDir, ".kanban")
}

func (c *Config) overrideFromEnv() {
	if val := os.Getenv(EnvAddr); val != "" {
		c.Server.Addr = val
	}
	if val := os.Getenv(EnvDBPath); val != "" {
		c.Database.Path = val
	}
	if val := os.Getenv(EnvSeed); val != "" {
		if seed, err := strconv.ParseBool(val); err == nil {
			c.Database.SeedDefaults = &seed
		}
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.Log.Level = val
	}
	if val, ok := os.LookupEnv(EnvLogFile); ok {
		// An explicitly empty value disables the log file
		if val == "" {
			val = "-"
		}
		c.Log.File = val
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir(), "kanban.db")
	}
	if c.Database.SeedDefaults == nil {
		seed := true
		c.Database.SeedDefaults = &seed
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	switch c.Log.File {
	case "":
		c.Log.File = filepath.Join(dataDir(), "logs", "kanban.log")
	case "-":
		c.Log.File = ""
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultMaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = DefaultMaxAgeDays
	}

	c.Colors.ApplyDefaults()
}
