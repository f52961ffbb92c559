package app

import (
	"context"
	"log"

	"github.com/five82/astrodash/internal/almanac"
	"github.com/five82/astrodash/internal/state"
	"github.com/five82/astrodash/internal/weatherbit"
)

// StartLoader launches the single forecast fetch in the background and
// returns a channel closed once it has finished.
func StartLoader(ctx context.Context, store *state.Store, fetcher weatherbit.Fetcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		LoadOnce(ctx, store, fetcher)
	}()
	return done
}

// LoadOnce fetches the forecast, enriches it and records the result. Results
// arriving after ctx is done are discarded.
func LoadOnce(ctx context.Context, store *state.Store, fetcher weatherbit.Fetcher) {
	forecast, err := fetcher.FetchDaily(ctx)
	if ctx.Err() != nil {
		log.Printf("forecast fetch abandoned: %v", ctx.Err())
		return
	}
	if err != nil {
		log.Printf("forecast fetch failed: %v", err)
		if !store.Update(nil, err) {
			log.Printf("forecast result dropped: store closed")
		}
		return
	}

	days := almanac.Enrich(forecast.Days)
	result := &state.Forecast{
		Days:     days,
		Summary:  almanac.Summarize(days),
		CityName: forecast.CityName,
	}
	if !store.Update(result, nil) {
		log.Printf("forecast result dropped: store closed")
		return
	}
	log.Printf("forecast loaded: %d days", len(days))
}
