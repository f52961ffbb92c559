package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the forecast endpoint AstroDash reads from.
type Config struct {
	APIKey    string
	BaseURL   string
	Latitude  float64
	Longitude float64
	Units     string
	Days      int
	Timeout   time.Duration
}

const (
	defaultConfigPath = "~/.config/astrodash/config.toml"
	defaultBaseURL    = "https://api.weatherbit.io/v2.0"
	defaultLatitude   = 35.7796
	defaultLongitude  = -78.6382
	defaultUnits      = "I"
	defaultTimeout    = 10 * time.Second
)

// Environment variables consulted for the API key, in priority order.
const (
	EnvAPIKey       = "WEATHERBIT_API_KEY"
	EnvLegacyAPIKey = "VITE_API_KEY"
)

// Default returns the built-in configuration without an API key.
func Default() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		Latitude:  defaultLatitude,
		Longitude: defaultLongitude,
		Units:     defaultUnits,
		Timeout:   defaultTimeout,
	}
}

// LoadDotenv loads KEY=value pairs from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		resolved, err := expandPath(path)
		if err != nil {
			return err
		}
		if err := godotenv.Load(resolved); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

// Load locates and parses the config file, falling back to defaults when it is
// missing. The API key from the environment overrides the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.APIKey = envAPIKey()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey    string   `toml:"api_key"`
		BaseURL   string   `toml:"base_url"`
		Latitude  *float64 `toml:"lat"`
		Longitude *float64 `toml:"lon"`
		Units     string   `toml:"units"`
		Days      int      `toml:"days"`
		Timeout   string   `toml:"timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw.Latitude != nil {
		if *raw.Latitude < -90 || *raw.Latitude > 90 {
			return Config{}, fmt.Errorf("parse config: lat %v out of range", *raw.Latitude)
		}
		cfg.Latitude = *raw.Latitude
	}
	if raw.Longitude != nil {
		if *raw.Longitude < -180 || *raw.Longitude > 180 {
			return Config{}, fmt.Errorf("parse config: lon %v out of range", *raw.Longitude)
		}
		cfg.Longitude = *raw.Longitude
	}
	if units := strings.ToUpper(strings.TrimSpace(raw.Units)); units != "" {
		switch units {
		case "I", "M", "S":
			cfg.Units = units
		default:
			return Config{}, fmt.Errorf("parse config: unknown units %q", raw.Units)
		}
	}
	if raw.Days < 0 {
		return Config{}, fmt.Errorf("parse config: days must not be negative")
	}
	cfg.Days = raw.Days
	if timeout := strings.TrimSpace(raw.Timeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: timeout: %w", err)
		}
		if d > 0 {
			cfg.Timeout = d
		}
	}

	if key := envAPIKey(); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// TemperatureUnit returns the degree suffix matching the configured units.
func (c Config) TemperatureUnit() string {
	switch strings.ToUpper(strings.TrimSpace(c.Units)) {
	case "M":
		return "°C"
	case "S":
		return "K"
	default:
		return "°F"
	}
}

// Location formats the configured coordinates for display.
func (c Config) Location() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

func envAPIKey() string {
	for _, name := range []string{EnvAPIKey, EnvLegacyAPIKey} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
