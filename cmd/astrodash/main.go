package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/astrodash/internal/app"
)

const envLogPath = "ASTRODASH_LOG"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/astrodash/config.toml)")
	envPath := flag.String("env", "", "load environment from this .env file (optional, defaults to ./.env)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	logPath := flag.String("log", os.Getenv(envLogPath), "write diagnostics to this file (optional)")
	flag.Parse()

	// The terminal belongs to the UI; diagnostics go to a file or nowhere.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "astrodash")
		if err != nil {
			fmt.Fprintf(os.Stderr, "astrodash: open log: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
		PrefsPath:  *prefsPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "astrodash: %v\n", err)
		return 1
	}
	return 0
}
