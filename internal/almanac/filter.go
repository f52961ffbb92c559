package almanac

import "strings"

// Criteria selects which enriched days are visible.
type Criteria struct {
	// Search is matched as a case-sensitive literal substring of Datetime.
	Search string
	// Phase, when set, must equal the day's MoonPhase exactly.
	Phase string
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Phase == ""
}

// Matches reports whether day passes the criteria.
func (c Criteria) Matches(day EnrichedDay) bool {
	if !strings.Contains(day.Datetime, c.Search) {
		return false
	}
	return c.Phase == "" || day.MoonPhase == c.Phase
}

// Filter returns the days matching c in their original order. The result is
// a new slice even when every day matches.
func Filter(days []EnrichedDay, c Criteria) []EnrichedDay {
	out := make([]EnrichedDay, 0, len(days))
	for _, day := range days {
		if c.Matches(day) {
			out = append(out, day)
		}
	}
	return out
}

// PhaseOptions returns the distinct phases present in days in first-seen order.
func PhaseOptions(days []EnrichedDay) []string {
	seen := make(map[string]struct{}, len(Phases))
	var out []string
	for _, day := range days {
		if _, ok := seen[day.MoonPhase]; ok {
			continue
		}
		seen[day.MoonPhase] = struct{}{}
		out = append(out, day.MoonPhase)
	}
	return out
}
