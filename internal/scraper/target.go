package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
)

const (
	GetNinjas    = "getninjas"
	GoogleMaps   = "googlemaps"
	GoogleSearch = "googlesearch"
)

// Target describes one listing source. Selectors are configuration and change often,
// so every field can be overridden from a targets file.
type Target struct {
	Name string `yaml:"name"`

	// URL may hold {city}, {state} and {query} placeholders.
	URL string `yaml:"url"`

	// SearchBox set means the query is typed into the page after navigation.
	SearchBox string `yaml:"search_box"`
	Query     string `yaml:"query"`

	WaitFor         string `yaml:"wait_for"`
	ScrollContainer string `yaml:"scroll_container"`
	ScrollAttempts  int    `yaml:"scroll_attempts"`
	ScrollDelayMS   int    `yaml:"scroll_delay_ms"`
	MaxPerCity      int    `yaml:"max_per_city"`

	Probes []Probe `yaml:"probes"`
}

func (t Target) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidTarget)
	case t.URL == "":
		return fmt.Errorf("%w: %s has no url", ErrInvalidTarget, t.Name)
	case len(t.Probes) == 0:
		return fmt.Errorf("%w: %s has no probes", ErrInvalidTarget, t.Name)
	case t.MaxPerCity < 1:
		return fmt.Errorf("%w: %s max_per_city must be positive", ErrInvalidTarget, t.Name)
	}
	for i, p := range t.Probes {
		if p.Item == "" {
			return fmt.Errorf("%w: %s probe %d has no item selector", ErrInvalidTarget, t.Name, i)
		}
	}
	return nil
}

func (t Target) UsesSearch() bool {
	return t.SearchBox != ""
}

// SearchQuery renders the query for c, e.g. "guincho Campinas SP".
func (t Target) SearchQuery(c city.Target) string {
	q := t.Query
	if q == "" {
		q = "guincho {city} {state}"
	}
	return strings.NewReplacer("{city}", c.DisplayName(), "{state}", c.UF()).Replace(q)
}

// PageURL renders the navigation URL for c.
func (t Target) PageURL(c city.Target) string {
	return strings.NewReplacer(
		"{city}", c.Slug,
		"{state}", c.State,
		"{query}", url.QueryEscape(t.SearchQuery(c)),
	).Replace(t.URL)
}

func (t Target) Scroll() ScrollPlan {
	return ScrollPlan{
		WaitFor:   t.WaitFor,
		Container: t.ScrollContainer,
		Attempts:  t.ScrollAttempts,
		Delay:     time.Duration(t.ScrollDelayMS) * time.Millisecond,
	}
}

var mapsPhoneSelectors = []string{
	`button[data-tooltip*="Copiar"]`,
	`button[data-item-id*="phone"]`,
	`a[href^="tel:"]`,
}

// BuiltinTargets returns fresh copies of the bundled targets.
func BuiltinTargets() map[string]Target {
	return map[string]Target{
		GoogleMaps: {
			Name:            GoogleMaps,
			URL:             "https://www.google.com/maps?hl=pt-BR",
			SearchBox:       "input#searchboxinput",
			Query:           "guincho {city} {state}",
			WaitFor:         `div[role="feed"]`,
			ScrollContainer: `div[role="feed"]`,
			ScrollAttempts:  15,
			ScrollDelayMS:   3000,
			MaxPerCity:      20,
			Probes: []Probe{
				{
					Name:     "places",
					Item:     "div.Nv2PK",
					Heading:  "div.qBF1Pd",
					Phone:    mapsPhoneSelectors,
					Category: `button[jsaction*="category"]`,
					Rating:   "span.MW4etd",
					Reviews:  "span.UY7F9",
					Link:     "a.hfpxzc",
				},
				{
					Name:    "feed-articles",
					Item:    `div[role="feed"] div[role="article"]`,
					Heading: `[role="heading"]`,
					Phone:   mapsPhoneSelectors,
					Rating:  `span[role="img"]`,
					Link:    "a[href]",
				},
			},
		},
		GoogleSearch: {
			Name:           GoogleSearch,
			URL:            "https://www.google.com/search?hl=pt-BR&q={query}",
			Query:          "guincho {city} {state}",
			WaitFor:        "div#search",
			ScrollAttempts: 15,
			ScrollDelayMS:  3000,
			MaxPerCity:     20,
			Probes: []Probe{
				{
					Name:    "local-pack",
					Item:    "div.VkpGBb",
					Heading: `div[role="heading"], span.OSrXXb`,
					Phone:   []string{`a[href^="tel:"]`, `[data-phone-number]`},
					Rating:  "span.yi40Hd",
					Reviews: "span.RDApEe",
					Link:    "a[href]",
				},
				{
					Name:    "organic",
					Item:    "div#search div.g",
					Heading: "h3",
					Link:    "a[href]",
				},
			},
		},
		GetNinjas: {
			Name:           GetNinjas,
			URL:            "https://www.getninjas.com.br/automoveis/guincho/{state}/{city}",
			WaitFor:        "body",
			ScrollAttempts: 3,
			ScrollDelayMS:  2000,
			MaxPerCity:     5,
			Probes: []Probe{
				{
					Name:     "professional-cards",
					Item:     `[data-testid="professional-card"]`,
					Heading:  "h2, h3",
					Phone:    []string{`a[href^="tel:"]`},
					Category: `[data-testid="professional-category"]`,
					Rating:   `[data-testid="rating"]`,
					Reviews:  `[data-testid="reviews-count"]`,
					Link:     "a[href]",
					Services: `[data-testid="hired-services"]`,
					Tenure:   `[data-testid="time-on-platform"]`,
				},
				{
					Name:    "cards",
					Item:    "div.professional-card, article.card",
					Heading: "h2, h3",
					Link:    "a[href]",
				},
			},
		},
	}
}

// ResolveTarget picks name from the built-ins merged with overrides.
// An override with a built-in name replaces it entirely.
func ResolveTarget(name string, overrides []Target) (Target, error) {
	targets := BuiltinTargets()
	for _, o := range overrides {
		targets[o.Name] = o
	}

	t, ok := targets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	if err := t.Validate(); err != nil {
		return Target{}, err
	}
	return t, nil
}
