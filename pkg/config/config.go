package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Log     LogConfig     `yaml:"log"`
	DB      DBConfig      `yaml:"db"`
	Results ResultsConfig `yaml:"results"`
}

// GameConfig holds the physics and display settings shared across games.
// It outlives individual sessions and is only mutated between games.
type GameConfig struct {
	Gravity       float64 `yaml:"gravity"`         // m/s² magnitude, positive
	EngineForce   float64 `yaml:"engine_force"`    // Thrust acceleration (m/s²)
	InitialFuel   int     `yaml:"initial_fuel"`    // Burns available at game start
	DisplayDeltaV bool    `yaml:"display_delta_v"` // Show velocity change instead of velocity
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// ResultsConfig holds settings for the append-only results file.
type ResultsConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Gravity:     1.6, // Moon
			EngineForce: 3.0,
			InitialFuel: 50,
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/moonlander.log",
				Level: "INFO",
			},
		},
		DB: DBConfig{
			Path: "./data/moonlander.db",
		},
		Results: ResultsConfig{
			Path: "./lander_results.txt",
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Read existing file if it exists
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		applyEnvOverrides(cfg)

		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// If file does not exist, save defaults
	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment (optionally via a .env file loaded
// by the caller) redirect the writable paths without touching the config file.
func applyEnvOverrides(cfg *Config) {
	if p := os.Getenv("MOONLANDER_DB"); p != "" {
		cfg.DB.Path = p
	}
	if p := os.Getenv("MOONLANDER_RESULTS"); p != "" {
		cfg.Results.Path = p
	}
}

// Validate checks the physics settings for values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Game.Gravity <= 0 {
		return fmt.Errorf("invalid gravity %.2f: must be positive", c.Game.Gravity)
	}
	if c.Game.EngineForce < 0 {
		return fmt.Errorf("invalid engine_force %.2f: must not be negative", c.Game.EngineForce)
	}
	if c.Game.InitialFuel < 0 {
		return fmt.Errorf("invalid initial_fuel %d: must not be negative", c.Game.InitialFuel)
	}
	return nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Moon Lander Configuration
# -------------------------
# game.gravity:      gravity magnitude in m/s² (1.6 = Moon, 9.8 = Earth)
# game.engine_force: thrust acceleration in m/s²
# game.initial_fuel: number of burns available per game

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return nil // File exists, do nothing
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
