package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfigExists is returned by Init when a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// Config represents the application configuration
type Config struct {
	BaseSource      string    `toml:"base_source"`
	ExpansionSource string    `toml:"expansion_source"`
	SQLOutput       string    `toml:"sql_output"`
	PacksOutput     string    `toml:"packs_output"`
	SQLiteOutput    string    `toml:"sqlite_output"`
	Database        string    `toml:"database"`
	PackVariable    string    `toml:"pack_variable"`
	Log             LogConfig `toml:"log"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseSource:      "basecards.csv",
		ExpansionSource: "expansions.csv",
		SQLOutput:       "generated.sql",
		PacksOutput:     "packs.js",
		Database:        "cah-online",
		PackVariable:    "Packs",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardseed", "config.toml")
}

// LoadConfig loads the config file at path, or the default config file
// when path is empty. Settings missing from the file keep their defaults,
// and a missing default config file yields the built-in configuration.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = GetConfigFilePath()
	}

	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return config, nil
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key in %s: %s", path, undecoded[0])
	}

	return config, nil
}

// Init writes the default configuration to path, or to the default config
// file location when path is empty. It returns the path written.
func Init(path string) (string, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return path, fmt.Errorf("error encoding config: %v", err)
	}

	return path, nil
}
