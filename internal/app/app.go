package app

import (
	"context"
	"fmt"
	"log"

	"github.com/five82/astrodash/internal/config"
	"github.com/five82/astrodash/internal/prefs"
	"github.com/five82/astrodash/internal/state"
	"github.com/five82/astrodash/internal/ui"
	"github.com/five82/astrodash/internal/weatherbit"
)

// Options configure the AstroDash application.
type Options struct {
	ConfigPath string
	EnvPath    string // empty loads ./.env when present
	PrefsPath  string // empty uses default ~/.config/astrodash/prefs.toml
}

// Run boots the dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	var envFiles []string
	if opts.EnvPath != "" {
		envFiles = append(envFiles, opts.EnvPath)
	}
	if err := config.LoadDotenv(envFiles...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.APIKey == "" {
		log.Printf("no API key configured; set %s or api_key", config.EnvAPIKey)
	}

	client, err := weatherbit.NewClient(weatherbit.Settings{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Units:     cfg.Units,
		Days:      cfg.Days,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init weatherbit client: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	// The fetch lives exactly as long as the UI.
	loadCtx, cancel := context.WithCancel(ctx)
	store := &state.Store{}
	done := StartLoader(loadCtx, store, client)
	defer func() {
		cancel()
		store.Close()
		<-done
	}()

	return ui.Run(ui.Options{
		Context:   loadCtx,
		Store:     store,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
