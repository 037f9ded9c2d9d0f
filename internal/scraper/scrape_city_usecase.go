package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

type State int

const (
	StateInit State = iota
	StateNavigated
	StateSearched
	StateScrolled
	StateExtracted
	StateClosed
)

var stateNames = [...]string{"init", "navigated", "searched", "scrolled", "extracted", "closed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type CityResult struct {
	City      city.Target
	Records   []professional.Record
	Found     int
	Discarded int
	Proxied   bool
	// Reached is the last state the session got to before closing.
	Reached State
}

// ScrapeCityUseCase runs one browser session for one city:
// init, navigate, optional search, scroll, extract, close.
type ScrapeCityUseCase struct {
	browser   Browser
	proxies   ProxySource
	extractor *Extractor
	target    Target
	logger    Logger
}

func NewScrapeCityUseCase(browser Browser, proxies ProxySource, extractor *Extractor, target Target, logger Logger) *ScrapeCityUseCase {
	return &ScrapeCityUseCase{
		browser:   browser,
		proxies:   proxies,
		extractor: extractor,
		target:    target,
		logger:    logger,
	}
}

// Execute always leaves the session closed, including on panics and cancellation.
// Stage failures come back as typed errors together with a zero-record result.
func (uc *ScrapeCityUseCase) Execute(ctx context.Context, c city.Target, collectedOn time.Time) (res CityResult, err error) {
	res = CityResult{City: c, Reached: StateInit}
	name := c.String()

	defer func() {
		if r := recover(); r != nil {
			res.Records = nil
			err = &ExtractionError{City: name, Err: fmt.Errorf("panic in %s state: %v", res.Reached, r)}
		}
	}()

	var opts SessionOptions
	if cfg, ok := uc.proxies.NextSession(uc.logger); ok {
		opts.Proxy = &cfg
		res.Proxied = true
	}

	session, err := uc.browser.Open(ctx, opts)
	if err != nil {
		return res, &SessionError{City: name, Err: err}
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			uc.logger.Warn("failed to close session", "city", name, "error", cerr)
		}
		uc.logger.Debug("session closed", "city", name, "reached", res.Reached)
	}()

	uc.logger.Debug("session opened", "city", name, "proxied", res.Proxied)

	pageURL := uc.target.PageURL(c)
	if err := session.Navigate(ctx, pageURL); err != nil {
		return res, &NavigationError{City: name, URL: pageURL, Err: err}
	}
	res.Reached = StateNavigated

	if uc.target.UsesSearch() {
		query := uc.target.SearchQuery(c)
		uc.logger.Debug("searching", "city", name, "query", query)
		if err := session.Search(ctx, uc.target.SearchBox, query); err != nil {
			return res, &SearchError{City: name, Query: query, Err: err}
		}
		res.Reached = StateSearched
	}

	if err := session.Scroll(ctx, uc.target.Scroll()); err != nil {
		if ctx.Err() != nil {
			return res, &ExtractionError{City: name, Err: ctx.Err()}
		}
		// partially loaded lists are still worth extracting
		uc.logger.Warn("scroll failed", "city", name, "error", err)
	}
	res.Reached = StateScrolled

	snap, err := session.Snapshot(ctx)
	if err != nil {
		return res, &ExtractionError{City: name, Err: fmt.Errorf("snapshot: %w", err)}
	}

	ext, err := uc.extractor.Extract(ctx, snap, uc.target.Probes, c, uc.target.MaxPerCity, collectedOn)
	res.Records = ext.Records
	res.Found = ext.Found
	res.Discarded = ext.Discarded
	if err != nil {
		return res, &ExtractionError{City: name, Err: err}
	}
	res.Reached = StateExtracted

	return res, nil
}
