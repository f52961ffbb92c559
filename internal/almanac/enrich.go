// Package almanac annotates forecast days with placeholder lunar data and
// derives the filtered views the dashboard shows.
//
// The lunar fields are not astronomy. Phase, moonrise and moonset are fixed
// functions of a day's position in the forecast list and exist only to fill
// the dashboard until a real lunar data source is wired in.
package almanac

import (
	"fmt"

	"github.com/five82/astrodash/internal/weatherbit"
)

// Phases is the cycle of phase markers assigned by list position.
var Phases = [8]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

var phaseNames = map[string]string{
	"🌑": "New Moon",
	"🌒": "Waxing Crescent",
	"🌓": "First Quarter",
	"🌔": "Waxing Gibbous",
	"🌕": "Full Moon",
	"🌖": "Waning Gibbous",
	"🌗": "Last Quarter",
	"🌘": "Waning Crescent",
}

const (
	moonriseBaseHour = 6
	moonsetBaseHour  = 19
)

// EnrichedDay is a forecast day plus its placeholder lunar fields.
type EnrichedDay struct {
	weatherbit.ForecastDay
	MoonPhase string
	Moonrise  string
	Moonset   string
}

// Summary holds the card values computed from the full enriched list.
type Summary struct {
	LowTemp    float64
	HasLowTemp bool
	Moonrise   string
	MoonPhase  string
}

// Phase returns the phase marker for list position i.
func Phase(i int) string {
	n := len(Phases)
	return Phases[((i%n)+n)%n]
}

// PhaseName returns the display name of a phase marker, or "" if unknown.
func PhaseName(symbol string) string {
	return phaseNames[symbol]
}

// Moonrise returns the placeholder moonrise for list position i.
func Moonrise(i int) string {
	return SyntheticTime(moonriseBaseHour + i)
}

// Moonset returns the placeholder moonset for list position i.
func Moonset(i int) string {
	return SyntheticTime(moonsetBaseHour + i)
}

// SyntheticTime formats a deterministic HH:MM:SS derived from hour:
// hour mod 24, hour*3 mod 60 and hour*7 mod 60.
func SyntheticTime(hour int) string {
	return fmt.Sprintf("%02d:%02d:%02d", mod(hour, 24), mod(hour*3, 60), mod(hour*7, 60))
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

// Enrich maps each day to an EnrichedDay. The result has the same length and
// order as days; days itself is not modified.
func Enrich(days []weatherbit.ForecastDay) []EnrichedDay {
	out := make([]EnrichedDay, len(days))
	for i, day := range days {
		out[i] = EnrichedDay{
			ForecastDay: day,
			MoonPhase:   Phase(i),
			Moonrise:    Moonrise(i),
			Moonset:     Moonset(i),
		}
	}
	return out
}

// Summarize computes the card values. An empty list has no low temperature
// and empty lunar fields.
func Summarize(days []EnrichedDay) Summary {
	var s Summary
	if len(days) == 0 {
		return s
	}
	s.Moonrise = days[0].Moonrise
	s.MoonPhase = days[0].MoonPhase
	s.LowTemp, s.HasLowTemp = LowTemp(days)
	return s
}

// LowTemp returns the minimum Temp across days and false when days is empty.
func LowTemp(days []EnrichedDay) (float64, bool) {
	if len(days) == 0 {
		return 0, false
	}
	low := days[0].Temp
	for _, d := range days[1:] {
		low = min(low, d.Temp)
	}
	return low, true
}
