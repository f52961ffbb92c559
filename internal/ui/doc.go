// Package ui provides the Bubble Tea dashboard for AstroDash.
//
// # Layout
//
// The screen is built top to bottom:
//
//   - Header: logo, location, load status (spinner, LIVE or ERROR) and fetch time
//   - Cards: Low Temp, Moon Rise and Moon Phase from the summary of the full list
//   - Controls: the date search input and the moon phase selector
//   - Table: Date, Temperature, Moon Rise, Moon Set and Moon Phase columns
//   - Footer: short key help from bubbles/help
//
// # Data Flow
//
// The Model never fetches. It polls state.Store snapshots on a short tick until
// the single load has completed, then stops polling. Visible rows are derived
// from the snapshot on demand with almanac.Filter, so every keystroke in the
// search input re-filters without touching the stored list. The cards always
// use the stored summary and are unaffected by filtering.
//
// # Overlays
//
// A failed load opens an alert modal once, carrying the API's error text or
// the fallback message. It swallows input until dismissed with enter or esc.
// The help overlay (h/?) closes on any key.
//
// # Themes
//
// Dracula (default), Nightfox and Slate. T cycles them and the choice is
// saved through the prefs package.
package ui
