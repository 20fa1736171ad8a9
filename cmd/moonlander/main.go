package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"moonlander/pkg/config"
	"moonlander/pkg/db"
	"moonlander/pkg/logging"
	"moonlander/pkg/results"
	"moonlander/pkg/session"
	"moonlander/pkg/store"
	"moonlander/pkg/version"
)

var (
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
	configPath = flag.String("config", "configs/moonlander.yaml", "Path to config file")
	deltaV     = flag.Bool("delta-v", false, "Display velocity changes as Delta V")
)

func init() {
	flag.BoolVar(deltaV, "d", false, "Display velocity changes as Delta V (shorthand)")
}

func main() {
	// Optional .env for path overrides; absence is fine.
	_ = godotenv.Load()

	flag.Parse()

	// Handle --init-config flag
	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config file generated: %s\n", *configPath)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The flag wins over the config file for this run.
	if *deltaV {
		cfg.Game.DisplayDeltaV = true
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("Moon Lander started", "version", version.Version, "delta_v", cfg.Game.DisplayDeltaV)

	dbConn, err := db.Init(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	st := store.NewSQLiteStore(dbConn)
	defer st.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := newGame(cfg, session.NewController(rng), st, results.New(cfg.Results.Path), os.Stdin, os.Stdout)
	return g.loop()
}
