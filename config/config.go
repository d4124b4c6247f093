package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	envLogLevel = "BATTLESHIP_LOG_LEVEL"
	envLogFile  = "BATTLESHIP_LOG_FILE"
	envSeed     = "BATTLESHIP_SEED"
	envDeploy   = "BATTLESHIP_DEPLOY"
)

// Deploy selects how the human fleet is placed.
type Deploy string

const (
	DeployAsk    Deploy = "ask"
	DeployAuto   Deploy = "auto"
	DeployManual Deploy = "manual"
)

type Config struct {
	LogLevel log.Level
	LogFile  string
	// Seed for the game's randomness; zero means time based.
	Seed   int64
	Deploy Deploy
}

// Load reads the optional .env file at path and then the environment.
func Load(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	cfg := Config{
		LogLevel: log.InfoLevel,
		LogFile:  "battleships.log",
		Deploy:   DeployAsk,
	}

	if v := os.Getenv(envLogLevel); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v := os.Getenv(envLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(envDeploy); v != "" {
		switch d := Deploy(v); d {
		case DeployAsk, DeployAuto, DeployManual:
			cfg.Deploy = d
		default:
			return Config{}, fmt.Errorf("%s: unknown mode %q", envDeploy, v)
		}
	}
	return cfg, nil
}
