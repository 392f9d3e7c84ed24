package domain

import "sort"

// Trend classifies a startup by its cracked ratio.
type Trend string

const (
	TrendCracked Trend = "CRACKED"
	TrendCooked  Trend = "COOKED"
	TrendNone    Trend = "NONE"
)

const (
	trendCrackedThreshold = 0.60
	trendCookedThreshold  = 0.40
)

// Ratio returns cracked_count / (cracked_count + cooked_count). Startups
// with no votes have no meaningful ratio; Ratio reports ok=false instead of
// letting a zero division reach the comparator.
func Ratio(s *Startup) (ratio float64, ok bool) {
	total := s.TotalVotes()
	if total == 0 {
		return 0, false
	}
	return float64(s.CrackedCount) / float64(total), true
}

// TrendOf classifies a startup: ratio >= 0.60 is trending cracked,
// ratio <= 0.40 trending cooked, anything else (including zero votes)
// is neutral.
func TrendOf(s *Startup) Trend {
	ratio, ok := Ratio(s)
	if !ok {
		return TrendNone
	}
	switch {
	case ratio >= trendCrackedThreshold:
		return TrendCracked
	case ratio <= trendCookedThreshold:
		return TrendCooked
	}
	return TrendNone
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Position int      `json:"position"`
	Startup  *Startup `json:"startup"`
	Ratio    float64  `json:"ratio"`
	Trend    Trend    `json:"trend"`
}

// Rank orders startups by cracked ratio, highest first. Startups with zero
// votes sort strictly last, after any voted startup regardless of its ratio;
// ties on ratio (and the zero-vote tail) break by name ascending. The input
// slice is not modified.
func Rank(startups []*Startup) []Entry {
	sorted := make([]*Startup, len(startups))
	copy(sorted, startups)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iVoted := Ratio(sorted[i])
		rj, jVoted := Ratio(sorted[j])
		if iVoted != jVoted {
			return iVoted
		}
		if iVoted && ri != rj {
			return ri > rj
		}
		return sorted[i].Name < sorted[j].Name
	})

	entries := make([]Entry, len(sorted))
	for i, s := range sorted {
		ratio, _ := Ratio(s)
		entries[i] = Entry{
			Position: i + 1,
			Startup:  s,
			Ratio:    ratio,
			Trend:    TrendOf(s),
		}
	}
	return entries
}
