package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Snapshot is the rendered page as seen after scrolling.
type Snapshot struct {
	HTML string
	URL  string
}

type Extraction struct {
	Probe     string
	Found     int
	Records   []professional.Record
	Discarded int
}

// Extractor turns a page snapshot into records, pacing candidates with a rate limiter.
type Extractor struct {
	limiter  *rate.Limiter
	required []string
	logger   Logger
}

func NewExtractor(required []string, delay time.Duration, logger Logger) *Extractor {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Extractor{
		limiter:  rate.NewLimiter(limit, 1),
		required: professional.RequiredFields(required),
		logger:   logger,
	}
}

// Extract runs the probes over snap and builds at most limit candidates into records.
// On cancellation the records built so far are returned with the context error.
func (e *Extractor) Extract(ctx context.Context, snap Snapshot, probes []Probe, c city.Target, limit int, collectedOn time.Time) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return Extraction{}, fmt.Errorf("parse snapshot: %w", err)
	}

	probe, candidates := FirstMatch(doc, probes)
	out := Extraction{Probe: probe.Name, Found: len(candidates)}
	if len(candidates) == 0 {
		e.logger.Debug("no candidates found", "city", c.String())
		return out, nil
	}

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	e.logger.Debug("candidates found", "city", c.String(), "probe", probe.Name, "found", out.Found, "processing", len(candidates))

	date := collectedOn.Format(professional.DateLayout)
	for i, cand := range candidates {
		if err := e.limiter.Wait(ctx); err != nil {
			return out, err
		}

		r := BuildRecord(cand, snap.URL, c, date)
		if err := professional.CheckRequired(r, e.required); err != nil {
			out.Discarded++
			e.logger.Debug("candidate discarded", "city", c.String(), "index", i+1, "reason", err)
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out, nil
}

// BuildRecord applies every field strategy to c.
func BuildRecord(c Candidate, pageURL string, target city.Target, collectedOn string) professional.Record {
	name := NameOf(c)
	if name == "" {
		name = professional.DefaultName
	}
	return professional.Record{
		Name:        name,
		Phone:       PhoneOf(c),
		City:        target.DisplayName(),
		State:       target.UF(),
		Category:    CategoryOf(c),
		Rating:      RatingOf(c),
		Reviews:     ReviewsOf(c),
		Services:    ServicesOf(c),
		Tenure:      TenureOf(c),
		ProfileURL:  ProfileURLOf(c, pageURL),
		CollectedOn: collectedOn,
	}
}
