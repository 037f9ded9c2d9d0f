package city

import (
	"fmt"
	"strings"
	"time"
)

const (
	CatalogSize = 100

	WeeklyGroups   = 5
	WeeklyPageSize = CatalogSize / WeeklyGroups

	DailyGroups   = 20
	DailyPageSize = CatalogSize / DailyGroups
)

type Mode string

const (
	Weekly Mode = "weekly"
	Daily  Mode = "daily"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Weekly:
		return Weekly, nil
	case Daily:
		return Daily, nil
	default:
		return "", fmt.Errorf("unknown city mode %q", s)
	}
}

// Target is a city slug as used in listing URLs plus its lowercase state code.
type Target struct {
	Slug  string
	State string
}

// DisplayName turns "sao-jose-dos-campos" into "Sao Jose Dos Campos".
func (t Target) DisplayName() string {
	words := strings.Split(t.Slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (t Target) UF() string {
	return strings.ToUpper(t.State)
}

func (t Target) String() string {
	return t.DisplayName() + "/" + t.UF()
}

func Catalog() []Target {
	out := make([]Target, CatalogSize)
	copy(out, catalog[:])
	return out
}

// WeeklyCities returns the 20 cities of the group selected by an ISO week number.
// Groups repeat every five weeks; any integer is accepted.
func WeeklyCities(week int) []Target {
	return window(week, WeeklyGroups, WeeklyPageSize)
}

// DailyCities returns the 5 cities of the group selected by a day of year.
// Groups repeat every twenty days; any integer is accepted.
func DailyCities(day int) []Target {
	return window(day, DailyGroups, DailyPageSize)
}

// GroupIndex is the zero-based group for a 1-based calendar signal.
func GroupIndex(signal, groups int) int {
	g := (signal - 1) % groups
	if g < 0 {
		g += groups
	}
	return g
}

func window(signal, groups, size int) []Target {
	start := GroupIndex(signal, groups) * size
	out := make([]Target, size)
	copy(out, catalog[start:start+size])
	return out
}

// ForDate picks the window for t: ISO week in weekly mode, day of year in daily mode.
func ForDate(t time.Time, mode Mode) []Target {
	if mode == Daily {
		return DailyCities(t.YearDay())
	}
	_, week := t.ISOWeek()
	return WeeklyCities(week)
}

// Filter keeps the targets whose slug is in slugs, preserving order.
// An empty slug list returns targets unchanged.
func Filter(targets []Target, slugs []string) []Target {
	if len(slugs) == 0 {
		return targets
	}
	want := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			want[s] = struct{}{}
		}
	}
	if len(want) == 0 {
		return targets
	}

	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if _, ok := want[t.Slug]; ok {
			out = append(out, t)
		}
	}
	return out
}
