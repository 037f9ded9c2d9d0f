package scraper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs/mocks"
	"github.com/JulianoL13/guincho-scraper/internal/proxy"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	scrapermocks "github.com/JulianoL13/guincho-scraper/internal/scraper/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubProxies struct {
	cfg *proxy.ConnectionConfig
}

func (s stubProxies) NextSession(proxy.Logger) (proxy.ConnectionConfig, bool) {
	if s.cfg == nil {
		return proxy.ConnectionConfig{}, false
	}
	return *s.cfg, true
}

const threeCandidates = `<ul>
<li class="r"><h3>Guincho Um</h3><p>(19) 99111-2222</p></li>
<li class="r"><h3>Guincho Dois</h3><p>sem contato</p></li>
<li class="r"><h3>Guincho Três</h3><a href="tel:1933334444">ligar</a></li>
</ul>`

func testTarget(search bool) scraper.Target {
	t := scraper.Target{
		Name:           "test",
		URL:            "https://listings.example.com/{state}/{city}",
		WaitFor:        "ul",
		ScrollAttempts: 2,
		MaxPerCity:     10,
		Probes: []scraper.Probe{{
			Name:    "rows",
			Item:    "li.r",
			Heading: "h3",
			Phone:   []string{`a[href^="tel:"]`},
		}},
	}
	if search {
		t.SearchBox = "input#q"
		t.Query = "guincho {city} {state}"
	}
	return t
}

func newScrapeCity(browser scraper.Browser, proxies scraper.ProxySource, target scraper.Target) *scraper.ScrapeCityUseCase {
	ex := scraper.NewExtractor(nil, 0, mocks.LoggerMock{})
	return scraper.NewScrapeCityUseCase(browser, proxies, ex, target, mocks.LoggerMock{})
}

func TestScrapeCityUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)

	t.Run("three candidates two valid phones", func(t *testing.T) {
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, scraper.SessionOptions{}).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, "https://listings.example.com/sp/campinas").Return(nil).Once()
		session.On("Scroll", mock.Anything, mock.MatchedBy(func(p scraper.ScrollPlan) bool { return p.Attempts == 2 })).Return(nil).Once()
		session.On("Snapshot", mock.Anything).Return(scraper.Snapshot{HTML: threeCandidates, URL: "https://listings.example.com/sp/campinas"}, nil).Once()
		session.On("Close").Return(nil).Once()

		res, err := newScrapeCity(browser, stubProxies{}, testTarget(false)).Execute(ctx, campinas, day)
		require.NoError(t, err)

		require.Len(t, res.Records, 2)
		assert.Equal(t, 3, res.Found)
		assert.Equal(t, 1, res.Discarded)
		assert.Equal(t, scraper.StateExtracted, res.Reached)
		assert.False(t, res.Proxied)
		for _, r := range res.Records {
			assert.Equal(t, "Campinas", r.City)
			assert.Equal(t, "SP", r.State)
			assert.Equal(t, "2024-05-20", r.CollectedOn)
		}
		assert.Equal(t, "19991112222", res.Records[0].Phone)
		assert.Equal(t, "1933334444", res.Records[1].Phone)
	})

	t.Run("search target routes through proxy", func(t *testing.T) {
		cfg := proxy.ConnectionConfig{Server: "http://1.2.3.4:8080", Username: "u", Password: "p"}
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, scraper.SessionOptions{Proxy: &cfg}).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Search", mock.Anything, "input#q", "guincho Campinas SP").Return(nil).Once()
		session.On("Scroll", mock.Anything, mock.Anything).Return(errors.New("feed not found")).Once()
		session.On("Snapshot", mock.Anything).Return(scraper.Snapshot{HTML: "<html></html>"}, nil).Once()
		session.On("Close").Return(nil).Once()

		res, err := newScrapeCity(browser, stubProxies{cfg: &cfg}, testTarget(true)).Execute(ctx, campinas, day)
		require.NoError(t, err, "scroll failures are not fatal")
		assert.True(t, res.Proxied)
		assert.Empty(t, res.Records)
	})

	t.Run("open failure", func(t *testing.T) {
		browser := scrapermocks.NewBrowser(t)
		browser.On("Open", mock.Anything, mock.Anything).Return(nil, errors.New("chrome not found")).Once()

		res, err := newScrapeCity(browser, stubProxies{}, testTarget(false)).Execute(ctx, campinas, day)

		var sessionErr *scraper.SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, "Campinas/SP", sessionErr.City)
		assert.Empty(t, res.Records)
	})

	t.Run("navigation failure still closes", func(t *testing.T) {
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, mock.Anything).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, mock.Anything).Return(context.DeadlineExceeded).Once()
		session.On("Close").Return(nil).Once()

		res, err := newScrapeCity(browser, stubProxies{}, testTarget(false)).Execute(ctx, campinas, day)

		var navErr *scraper.NavigationError
		require.ErrorAs(t, err, &navErr)
		assert.Equal(t, "navigation", scraper.Kind(err))
		assert.Equal(t, scraper.StateInit, res.Reached)
		assert.Empty(t, res.Records)
	})

	t.Run("search failure", func(t *testing.T) {
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, mock.Anything).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("search box not visible")).Once()
		session.On("Close").Return(nil).Once()

		_, err := newScrapeCity(browser, stubProxies{}, testTarget(true)).Execute(ctx, campinas, day)

		var searchErr *scraper.SearchError
		require.ErrorAs(t, err, &searchErr)
		assert.Equal(t, "guincho Campinas SP", searchErr.Query)
	})

	t.Run("panic during extraction reaches close", func(t *testing.T) {
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, mock.Anything).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Scroll", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Snapshot", mock.Anything).Return(func(context.Context) (scraper.Snapshot, error) {
			panic("renderer crashed")
		}).Once()
		session.On("Close").Return(nil).Once()

		res, err := newScrapeCity(browser, stubProxies{}, testTarget(false)).Execute(ctx, campinas, day)

		var extErr *scraper.ExtractionError
		require.ErrorAs(t, err, &extErr)
		assert.Contains(t, err.Error(), "renderer crashed")
		assert.Equal(t, scraper.StateScrolled, res.Reached)
		assert.Empty(t, res.Records)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		session := scrapermocks.NewSession(t)
		browser := scrapermocks.NewBrowser(t)

		browser.On("Open", mock.Anything, mock.Anything).Return(session, nil).Once()
		session.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Scroll", mock.Anything, mock.Anything).Return(nil).Once()
		session.On("Snapshot", mock.Anything).Return(scraper.Snapshot{}, errors.New("target closed")).Once()
		session.On("Close").Return(errors.New("already closed")).Once()

		_, err := newScrapeCity(browser, stubProxies{}, testTarget(false)).Execute(ctx, campinas, day)
		assert.Equal(t, "extraction", scraper.Kind(err))
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "init", scraper.StateInit.String())
	assert.Equal(t, "closed", scraper.StateClosed.String())
	assert.Equal(t, "state(42)", scraper.State(42).String())
}
