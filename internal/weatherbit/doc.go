// Package weatherbit provides the HTTP client for the Weatherbit daily
// forecast API.
//
// # Overview
//
// AstroDash performs exactly one forecast request per run. The client is
// built from an explicit Settings value; the API key, coordinates, units and
// day count are baked into the request URL at construction time.
//
//	client, err := weatherbit.NewClient(weatherbit.Settings{
//		APIKey:    cfg.APIKey,
//		Latitude:  cfg.Latitude,
//		Longitude: cfg.Longitude,
//		Units:     "I",
//	})
//	if err != nil {
//		return err
//	}
//	forecast, err := client.FetchDaily(ctx)
//	if err != nil {
//		alert(weatherbit.AlertText(err))
//	}
//
// # Response Handling
//
// The only success criterion is the presence of the top-level "data" field.
// An empty list is a valid forecast. When "data" is missing or null the client
// returns *APIError with the server's "error" text, regardless of the HTTP
// status. Weatherbit reports bad keys and quota exhaustion that way.
//
// Failures that never produced a usable body are returned as wrapped errors:
//
//   - "execute request: ..." for network errors and cancellation
//   - "read response: ..." when the body cannot be read
//   - "decode response: ..." for malformed JSON on a 2xx response
//
// AlertText maps any of these to the text shown to the user: the server
// message when present, FallbackMessage otherwise.
//
// # Cancellation
//
// FetchDaily honours its context. The caller ties it to the UI lifecycle so
// quitting the dashboard aborts an in-flight request. There is no retry.
//
// # Diagnostics
//
// Each response is traced through the standard log package (status, body
// size, day count, error field). The binary routes log output to a file since
// the terminal belongs to the UI.
package weatherbit
