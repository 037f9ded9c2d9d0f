package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs/mocks"
	"github.com/JulianoL13/guincho-scraper/internal/proxy"
)

func TestScrollScript(t *testing.T) {
	assert.Contains(t, scrollScript("", 0), "window.scrollTo(0, document.body.scrollHeight)")
	assert.Contains(t, scrollScript("", -200), "window.scrollBy(0, -200)")

	feed := scrollScript(`div[role="feed"]`, 0)
	assert.Contains(t, feed, `document.querySelector("div[role=\"feed\"]")`)
	assert.Contains(t, feed, "el.scrollTop = el.scrollHeight")

	assert.Contains(t, scrollScript("#list", -200), "el.scrollTop += -200")
}

func TestNewBrowser_Defaults(t *testing.T) {
	b := NewBrowser(Options{}, mocks.LoggerMock{})

	assert.Equal(t, defaultUserAgent, b.opts.UserAgent)
	assert.Positive(t, b.opts.NavigationTimeout)
	assert.Positive(t, b.opts.ElementTimeout)
}

func TestAllocatorOptions(t *testing.T) {
	b := NewBrowser(DefaultOptions(), mocks.LoggerMock{})

	direct := b.allocatorOptions(nil)
	proxied := b.allocatorOptions(&proxy.ConnectionConfig{Server: "http://1.2.3.4:8080"})

	assert.Len(t, proxied, len(direct)+1)
}
