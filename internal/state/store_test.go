package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/astrodash/internal/almanac"
	"github.com/five82/astrodash/internal/weatherbit"
)

func sampleForecast() *Forecast {
	days := almanac.Enrich([]weatherbit.ForecastDay{
		{Datetime: "2024-01-01", Temp: 40},
		{Datetime: "2024-01-02", Temp: 35},
	})
	return &Forecast{Days: days, Summary: almanac.Summarize(days), CityName: "Raleigh"}
}

func TestStore_ZeroSnapshotIsNotLoaded(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Loaded || snap.Failed() || len(snap.Days) != 0 {
		t.Fatalf("zero snapshot = %+v, want empty and not loaded", snap)
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	if !s.Update(sampleForecast(), nil) {
		t.Fatal("Update returned false on open store")
	}

	snap := s.Snapshot()
	if !snap.Loaded || snap.Failed() {
		t.Fatalf("snapshot Loaded=%v Failed=%v, want loaded ok", snap.Loaded, snap.Failed())
	}
	if len(snap.Days) != 2 || snap.Days[0].MoonPhase != "🌑" {
		t.Fatalf("snapshot days = %+v", snap.Days)
	}
	if !snap.Summary.HasLowTemp || snap.Summary.LowTemp != 35 || snap.CityName != "Raleigh" {
		t.Fatalf("snapshot summary = %+v city=%q", snap.Summary, snap.CityName)
	}
	if snap.FetchedAt.Before(before) {
		t.Fatalf("FetchedAt = %v, want >= %v", snap.FetchedAt, before)
	}

	snap.Days[0].Datetime = "mutated"
	if s.Snapshot().Days[0].Datetime != "2024-01-01" {
		t.Fatal("Snapshot should clone days")
	}
}

func TestStore_UpdateClonesInput(t *testing.T) {
	var s Store
	f := sampleForecast()
	s.Update(f, nil)
	f.Days[1].Temp = -100
	if s.Snapshot().Days[1].Temp != 35 {
		t.Fatal("Update should clone the incoming days")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	origErr := errors.New("rate limited")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !snap.Failed() {
		t.Fatalf("Failed() = false, want true")
	}
	if len(snap.Days) != 0 {
		t.Fatalf("days = %+v, want none after failed fetch", snap.Days)
	}
	if snap.LastError == nil || snap.LastError.Error() != "rate limited" {
		t.Fatalf("LastError = %v, want rate limited", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatal("snapshot error should wrap the original")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("Snapshot should not hand out the stored error instance")
	}

	s.Update(sampleForecast(), nil)
	s.Update(nil, errors.New("later"))
	if got := s.Snapshot(); len(got.Days) != 2 {
		t.Fatalf("days = %d after error, want previous 2 kept", len(got.Days))
	}
}

func TestStore_UpdateAfterCloseIsDropped(t *testing.T) {
	var s Store
	s.Close()
	s.Close() // idempotent
	if s.Update(sampleForecast(), nil) {
		t.Fatal("Update returned true after Close")
	}
	if snap := s.Snapshot(); snap.Loaded || len(snap.Days) != 0 {
		t.Fatalf("snapshot changed after Close: %+v", snap)
	}
}
