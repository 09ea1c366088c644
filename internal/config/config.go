package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvSeed     = "WAR_SEED"
	EnvLogLevel = "WAR_LOG_LEVEL"
	EnvNoColor  = "WAR_NO_COLOR"
)

// DefaultLogLevel is used when the config file leaves log_level empty
const DefaultLogLevel = "warn"

// Config represents the application configuration
type Config struct {
	// Seed fixes the shuffle; 0 picks a new seed each run
	Seed int64 `toml:"seed"`
	// DefaultDeck names a saved deck order to play instead of a shuffled deck
	DefaultDeck string `toml:"default_deck"`
	LogLevel    string `toml:"log_level"`
	NoColor     bool   `toml:"no_color"`
	Quiet       bool   `toml:"quiet"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
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

// GetDeckLibraryPath returns the directory holding saved deck orders
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "war", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "war", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use,
// then applies .env and environment overrides.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	// A missing .env is fine
	_ = godotenv.Load()
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		switch strings.ToLower(v) {
		case "0", "false", "no":
			c.NoColor = false
		default:
			c.NoColor = true
		}
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{LogLevel: DefaultLogLevel}
	if err := save(config); err != nil {
		return nil, err
	}
	return config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck order, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	libraryPath := GetDeckLibraryPath()
	for _, candidate := range []string{deckName, deckName + ".toml"} {
		deckPath := filepath.Join(libraryPath, candidate)
		if _, err := os.Stat(deckPath); err == nil {
			return deckPath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// SetDefaultDeck sets the default deck in the config; an empty name clears it
func SetDefaultDeck(deckName string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return save(config)
}
