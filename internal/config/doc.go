// Package config loads the forecast endpoint settings for AstroDash.
//
// # Overview
//
// AstroDash talks to a single endpoint: the Weatherbit daily forecast. The
// endpoint, coordinates, units and API key are process-wide settings that are
// loaded once at startup and handed to the weatherbit client as an explicit
// value. Nothing in this package holds global state.
//
// # Resolution Order
//
//  1. .env files are loaded into the environment (LoadDotenv). Variables
//     already present in the environment are never overwritten.
//  2. The TOML file is read from the explicit path, or
//     ~/.config/astrodash/config.toml when none is given.
//  3. A missing file is not an error; built-in defaults are used.
//  4. WEATHERBIT_API_KEY (or the legacy VITE_API_KEY) overrides api_key.
//
// # TOML Format
//
//	api_key  = "..."
//	base_url = "https://api.weatherbit.io/v2.0"
//	lat      = 35.7796
//	lon      = -78.6382
//	units    = "I"     # I = Fahrenheit, M = Celsius, S = Kelvin
//	days     = 0       # 0 lets the API choose (16 days)
//	timeout  = "10s"
//
// Every field is optional.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors and values out
// of range (coordinates, unknown units, negative days, bad durations). An
// empty API key is deliberately not rejected: the request is still made and
// the API's own error is shown to the user.
package config
