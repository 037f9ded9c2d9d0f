package professional

import (
	"sort"
	"time"
)

const DefaultTopStates = 5

const unknownState = "N/A"

type StateCount struct {
	State string
	Count int
}

type RunStats struct {
	Total           int
	CitiesAttempted int
	CitiesSucceeded int
	TopStates       []StateCount
}

func BuildStats(records []Record, attempted, succeeded, topN int) RunStats {
	return RunStats{
		Total:           len(records),
		CitiesAttempted: attempted,
		CitiesSucceeded: succeeded,
		TopStates:       TopStates(records, topN),
	}
}

// AveragePerCity is zero when no city yielded records.
func (s RunStats) AveragePerCity() float64 {
	if s.CitiesSucceeded == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.CitiesSucceeded)
}

// TopStates counts records per state, most frequent first, ties alphabetical.
// n <= 0 returns every state.
func TopStates(records []Record, n int) []StateCount {
	counts := make(map[string]int)
	for _, r := range records {
		state := r.State
		if state == "" {
			state = unknownState
		}
		counts[state]++
	}

	out := make([]StateCount, 0, len(counts))
	for s, c := range counts {
		out = append(out, StateCount{State: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].State < out[j].State
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summary is what gets announced after a successful delivery.
type Summary struct {
	Date    time.Time
	Total   int
	Cities  int
	Average float64
}

func (s RunStats) Summary(at time.Time) Summary {
	return Summary{
		Date:    at,
		Total:   s.Total,
		Cities:  s.CitiesSucceeded,
		Average: s.AveragePerCity(),
	}
}
