package almanac

import (
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"testing"

	"github.com/five82/astrodash/internal/weatherbit"
)

func sampleDays(n int) []weatherbit.ForecastDay {
	days := make([]weatherbit.ForecastDay, n)
	for i := range days {
		days[i] = weatherbit.ForecastDay{
			Datetime: "2024-01-" + pad2(i+1),
			Temp:     float64(50 - i),
		}
	}
	return days
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func TestEnrich_TwoDayScenario(t *testing.T) {
	raw := []weatherbit.ForecastDay{
		{Datetime: "2024-01-01", Temp: 40},
		{Datetime: "2024-01-02", Temp: 35},
	}

	days := Enrich(raw)
	if len(days) != 2 {
		t.Fatalf("len(Enrich) = %d, want 2", len(days))
	}
	first := days[0]
	if first.MoonPhase != "🌑" || first.Moonrise != "06:18:42" || first.Moonset != "19:57:13" {
		t.Fatalf("day 0 = %+v, want 🌑 06:18:42 19:57:13", first)
	}
	if first.Datetime != "2024-01-01" || first.Temp != 40 {
		t.Fatalf("day 0 lost forecast fields: %+v", first.ForecastDay)
	}
	if days[1].MoonPhase != "🌒" || days[1].Moonrise != "07:21:49" || days[1].Moonset != "20:00:20" {
		t.Fatalf("day 1 = %+v", days[1])
	}

	s := Summarize(days)
	if !s.HasLowTemp || s.LowTemp != 35 {
		t.Fatalf("LowTemp = %v (has=%v), want 35", s.LowTemp, s.HasLowTemp)
	}
	if s.Moonrise != "06:18:42" || s.MoonPhase != "🌑" {
		t.Fatalf("Summary = %+v", s)
	}
}

func TestEnrich_PreservesLengthAndIsDeterministic(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 16, 40} {
		raw := sampleDays(n)
		before := slices.Clone(raw)

		a := Enrich(raw)
		b := Enrich(raw)
		if len(a) != n {
			t.Fatalf("len(Enrich(%d)) = %d", n, len(a))
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Enrich is not deterministic for n=%d", n)
		}
		if !slices.Equal(raw, before) {
			t.Fatalf("Enrich modified its input for n=%d", n)
		}
		for i, d := range a {
			if d.ForecastDay != raw[i] {
				t.Fatalf("day %d forecast = %+v, want %+v", i, d.ForecastDay, raw[i])
			}
			if d.MoonPhase != Phase(i) || d.Moonrise != Moonrise(i) || d.Moonset != Moonset(i) {
				t.Fatalf("day %d derived fields depend on more than the index: %+v", i, d)
			}
		}
	}
}

func TestPhase_CyclesEveryEight(t *testing.T) {
	for i := 0; i < 64; i++ {
		if Phase(i) != Phase(i+8) {
			t.Fatalf("Phase(%d) = %q, Phase(%d) = %q", i, Phase(i), i+8, Phase(i+8))
		}
	}
	for i, want := range Phases {
		if got := Phase(i); got != want {
			t.Fatalf("Phase(%d) = %q, want %q", i, got, want)
		}
	}
	if got := Phase(-1); got != "🌘" {
		t.Fatalf("Phase(-1) = %q, want 🌘", got)
	}
}

func TestSyntheticTime_FormatAndRanges(t *testing.T) {
	layout := regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
	for h := -30; h < 500; h++ {
		got := SyntheticTime(h)
		m := layout.FindStringSubmatch(got)
		if m == nil {
			t.Fatalf("SyntheticTime(%d) = %q, want HH:MM:SS", h, got)
		}
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		ss, _ := strconv.Atoi(m[3])
		if hh > 23 || mm > 59 || ss > 59 {
			t.Fatalf("SyntheticTime(%d) = %q out of range", h, got)
		}
	}
}

func TestSyntheticTime_KnownValues(t *testing.T) {
	cases := map[int]string{
		0:  "00:00:00",
		6:  "06:18:42",
		19: "19:57:13",
		24: "00:12:48",
		25: "01:15:55",
	}
	for h, want := range cases {
		if got := SyntheticTime(h); got != want {
			t.Fatalf("SyntheticTime(%d) = %q, want %q", h, got, want)
		}
	}
}

func TestSummarize_EmptyHasNoLowTemp(t *testing.T) {
	s := Summarize(nil)
	if s.HasLowTemp {
		t.Fatalf("HasLowTemp = true for empty list")
	}
	if s.Moonrise != "" || s.MoonPhase != "" {
		t.Fatalf("Summary = %+v, want zero", s)
	}
	if _, ok := LowTemp(Enrich(nil)); ok {
		t.Fatalf("LowTemp ok = true for empty list")
	}
}

func TestLowTemp_HandlesNegativesAndFractions(t *testing.T) {
	days := Enrich([]weatherbit.ForecastDay{
		{Datetime: "a", Temp: 3.5},
		{Datetime: "b", Temp: -2.25},
		{Datetime: "c", Temp: 0},
	})
	got, ok := LowTemp(days)
	if !ok || got != -2.25 {
		t.Fatalf("LowTemp = %v,%v, want -2.25,true", got, ok)
	}
}

func TestPhaseName(t *testing.T) {
	if got := PhaseName("🌕"); got != "Full Moon" {
		t.Fatalf("PhaseName(🌕) = %q", got)
	}
	if got := PhaseName("x"); got != "" {
		t.Fatalf("PhaseName(x) = %q, want empty", got)
	}
	for _, p := range Phases {
		if PhaseName(p) == "" {
			t.Fatalf("PhaseName(%q) missing", p)
		}
	}
}
