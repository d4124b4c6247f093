package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/wojtekolesinski/battleships/app"
	"github.com/wojtekolesinski/battleships/config"
)

const envFile = ".env"

func main() {
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the GUI, so logs go to a file.
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetLevel(cfg.LogLevel)
	log.SetReportTimestamp(true)

	a := app.New(cfg)
	if err := a.Run(context.Background()); err != nil {
		log.Error("main", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
