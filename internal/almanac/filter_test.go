package almanac

import (
	"reflect"
	"testing"
)

func TestFilter_SearchMatchesSecondDay(t *testing.T) {
	days := Enrich(sampleDays(2))

	got := Filter(days, Criteria{Search: "2024-01-02"})
	if len(got) != 1 || got[0].Datetime != "2024-01-02" {
		t.Fatalf("Filter = %+v, want only 2024-01-02", got)
	}
}

func TestFilter_Rules(t *testing.T) {
	days := Enrich(sampleDays(16))

	cases := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"empty matches all", Criteria{}, datesOf(days)},
		{"substring", Criteria{Search: "-1"}, []string{"2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13", "2024-01-14", "2024-01-15", "2024-01-16"}},
		{"case sensitive", Criteria{Search: "JAN"}, nil},
		{"literal not regex", Criteria{Search: "2024-01-0."}, nil},
		{"phase only", Criteria{Phase: "🌓"}, []string{"2024-01-03", "2024-01-11"}},
		{"search and phase", Criteria{Search: "-11", Phase: "🌓"}, []string{"2024-01-11"}},
		{"search and wrong phase", Criteria{Search: "-11", Phase: "🌑"}, nil},
		{"unknown phase", Criteria{Phase: "🌞"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := datesOf(Filter(days, tc.criteria))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter(%+v) = %v, want %v", tc.criteria, got, tc.want)
			}
		})
	}
}

func TestFilter_IsIdempotentAndOrderPreserving(t *testing.T) {
	days := Enrich(sampleDays(20))
	for _, c := range []Criteria{{}, {Search: "1"}, {Phase: "🌕"}, {Search: "0", Phase: "🌘"}} {
		once := Filter(days, c)
		twice := Filter(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("Filter not idempotent for %+v", c)
		}
		last := -1
		for _, d := range once {
			idx := indexOf(days, d.Datetime)
			if idx <= last {
				t.Fatalf("Filter reordered days for %+v", c)
			}
			last = idx
		}
	}
}

func TestFilter_ReturnsNewSlice(t *testing.T) {
	days := Enrich(sampleDays(3))
	got := Filter(days, Criteria{})
	got[0].MoonPhase = "changed"
	if days[0].MoonPhase == "changed" {
		t.Fatal("Filter result aliases its input")
	}
}

func TestPhaseOptions_FirstOccurrenceOrder(t *testing.T) {
	if got := PhaseOptions(nil); len(got) != 0 {
		t.Fatalf("PhaseOptions(nil) = %v, want empty", got)
	}

	got := PhaseOptions(Enrich(sampleDays(3)))
	if want := []string{"🌑", "🌒", "🌓"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("PhaseOptions = %v, want %v", got, want)
	}

	got = PhaseOptions(Enrich(sampleDays(20)))
	if !reflect.DeepEqual(got, Phases[:]) {
		t.Fatalf("PhaseOptions = %v, want %v", got, Phases)
	}

	shuffled := []EnrichedDay{{MoonPhase: "🌕"}, {MoonPhase: "🌑"}, {MoonPhase: "🌕"}}
	if got := PhaseOptions(shuffled); !reflect.DeepEqual(got, []string{"🌕", "🌑"}) {
		t.Fatalf("PhaseOptions = %v, want [🌕 🌑]", got)
	}
}

func TestCriteria_IsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatal("zero Criteria should report IsZero")
	}
	if (Criteria{Phase: "🌑"}).IsZero() || (Criteria{Search: "x"}).IsZero() {
		t.Fatal("non-empty Criteria should not report IsZero")
	}
}

func datesOf(days []EnrichedDay) []string {
	var out []string
	for _, d := range days {
		out = append(out, d.Datetime)
	}
	return out
}

func indexOf(days []EnrichedDay, date string) int {
	for i, d := range days {
		if d.Datetime == date {
			return i
		}
	}
	return -1
}
