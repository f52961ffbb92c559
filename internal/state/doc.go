// Package state holds the dashboard's in-memory data between the loader
// goroutine and the UI.
//
// # Overview
//
// The loader performs one forecast fetch, enriches the days and writes the
// result with Store.Update. The UI reads copies through Store.Snapshot on its
// own tick until the snapshot reports Loaded.
//
//	Loader goroutine:               UI (Bubble Tea):
//	┌──────────────────┐            ┌──────────────────┐
//	│ FetchDaily()     │            │ tick             │
//	│ almanac.Enrich() │            │   ↓              │
//	│ store.Update()   │───────────→│ store.Snapshot() │
//	└──────────────────┘  (mutex)   └──────────────────┘
//
// # Teardown
//
// Close marks the owning UI as gone. Any Update arriving afterwards is dropped
// and reports false, so a response that lands after the dashboard quit cannot
// change state.
//
// # Update Semantics
//
//	store.Update(&forecast, nil) // replace days, summary and city
//	store.Update(nil, err)       // keep previous data, record err
//
// Both paths set Loaded and FetchedAt. Days are cloned on the way in and on
// the way out, and snapshot errors wrap the stored error rather than share it.
package state
