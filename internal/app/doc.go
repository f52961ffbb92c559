// Package app is the composition root for AstroDash.
//
// # Startup
//
//  1. Load .env files into the environment (API key)
//  2. Load ~/.config/astrodash/config.toml, falling back to defaults
//  3. Build the weatherbit client from the loaded settings
//  4. Load user prefs (theme)
//  5. Start the loader goroutine: one fetch, enrich, store.Update
//  6. Run the Bubble Tea UI until the user quits
//
// # Lifecycle
//
// The loader runs under a child context of the caller's. When the UI returns
// the context is cancelled, which aborts an in-flight request, and the store
// is closed so a response that still arrives is dropped. Run waits for the
// loader goroutine before returning.
//
// # Error Handling
//
// Fatal (returned from Run): unreadable .env, invalid config, invalid base
// URL, UI startup failure.
//
// Recoverable (logged and shown in the UI): every fetch failure. The
// dashboard stays up with an empty table and an alert.
package app
