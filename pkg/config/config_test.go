package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "moonlander.yaml")

	tests := []struct {
		name          string
		setup         func()
		validate      func(*testing.T, *Config)
		checkFile     func(*testing.T)
		expectedError bool
	}{
		{
			name:  "NewFile_Defaults",
			setup: func() {}, // No file
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Game.Gravity != 1.6 {
					t.Errorf("expected default gravity 1.6, got %v", cfg.Game.Gravity)
				}
				if cfg.Game.InitialFuel != 50 {
					t.Errorf("expected default initial fuel 50, got %d", cfg.Game.InitialFuel)
				}
				if cfg.Game.DisplayDeltaV {
					t.Error("expected delta-v display off by default")
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "gravity: 1.6") {
					t.Error("config file missing default gravity")
				}
				if !strings.Contains(string(content), "initial_fuel: 50") {
					t.Error("config file missing default initial_fuel")
				}
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func() {
				// Pre-create file with custom values
				err := os.WriteFile(configPath, []byte("game:\n  gravity: 9.8\n  initial_fuel: 20\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Game.Gravity != 9.8 {
					t.Errorf("expected gravity 9.8, got %v", cfg.Game.Gravity)
				}
				if cfg.Game.InitialFuel != 20 {
					t.Errorf("expected initial fuel 20, got %d", cfg.Game.InitialFuel)
				}
				// Unset fields keep defaults
				if cfg.Game.EngineForce != 3.0 {
					t.Errorf("expected default engine force 3.0, got %v", cfg.Game.EngineForce)
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "gravity: 9.8") {
					t.Error("config file should persist custom value")
				}
			},
		},
		{
			name: "InvalidGravity_Rejected",
			setup: func() {
				err := os.WriteFile(configPath, []byte("game:\n  gravity: -1.0\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(configPath)
			tt.setup()

			cfg, err := Load(configPath)
			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
			if tt.checkFile != nil {
				tt.checkFile(t)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "moonlander.yaml")

	t.Setenv("MOONLANDER_DB", "/tmp/override.db")
	t.Setenv("MOONLANDER_RESULTS", "/tmp/override_results.txt")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DB.Path != "/tmp/override.db" {
		t.Errorf("expected db path override, got %q", cfg.DB.Path)
	}
	if cfg.Results.Path != "/tmp/override_results.txt" {
		t.Errorf("expected results path override, got %q", cfg.Results.Path)
	}
}

func TestGenerateDefault(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "moonlander.yaml")

	if err := GenerateDefault(configPath); err != nil {
		t.Fatalf("GenerateDefault() failed: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Second call is a no-op
	if err := GenerateDefault(configPath); err != nil {
		t.Fatalf("GenerateDefault() on existing file failed: %v", err)
	}
}
