package scraper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTargets(t *testing.T) {
	for name, target := range scraper.BuiltinTargets() {
		assert.Equal(t, name, target.Name)
		assert.NoError(t, target.Validate(), name)
	}
}

func TestTarget_URLs(t *testing.T) {
	c := city.Target{Slug: "sao-jose-dos-campos", State: "sp"}

	search, err := scraper.ResolveTarget("googlesearch", nil)
	require.NoError(t, err)
	assert.False(t, search.UsesSearch())
	assert.Equal(t, "guincho Sao Jose Dos Campos SP", search.SearchQuery(c))
	assert.Equal(t, "https://www.google.com/search?hl=pt-BR&q=guincho+Sao+Jose+Dos+Campos+SP", search.PageURL(c))

	ninjas, err := scraper.ResolveTarget(" GetNinjas ", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://www.getninjas.com.br/automoveis/guincho/sp/sao-jose-dos-campos", ninjas.PageURL(c))
	assert.Equal(t, 5, ninjas.MaxPerCity)

	maps, err := scraper.ResolveTarget("googlemaps", nil)
	require.NoError(t, err)
	assert.True(t, maps.UsesSearch())
	assert.Equal(t, 15, maps.Scroll().Attempts)
}

func TestResolveTarget_Unknown(t *testing.T) {
	_, err := scraper.ResolveTarget("bing", nil)
	assert.ErrorIs(t, err, scraper.ErrUnknownTarget)
}

const targetsYAML = `
targets:
  - name: googlemaps
    url: https://maps.example.com
    search_box: input#q
    max_per_city: 3
    scroll_attempts: 2
    scroll_delay_ms: 10
    probes:
      - name: cards
        item: li.card
        heading: h2
        phone: ['a[href^="tel:"]']
  - name: directory
    url: https://directory.example.com/{state}/{city}
    max_per_city: 10
    probes:
      - item: div.entry
`

func TestLoadTargetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(targetsYAML), 0o600))

	overrides, err := scraper.LoadTargetsFile(path)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	maps, err := scraper.ResolveTarget("googlemaps", overrides)
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example.com", maps.URL)
	assert.Equal(t, 3, maps.MaxPerCity)
	require.Len(t, maps.Probes, 1)
	assert.Equal(t, []string{`a[href^="tel:"]`}, maps.Probes[0].Phone)

	dir, err := scraper.ResolveTarget("directory", overrides)
	require.NoError(t, err)
	assert.Equal(t, "https://directory.example.com/pr/curitiba", dir.PageURL(city.Target{Slug: "curitiba", State: "pr"}))
}

func TestParseTargets_Invalid(t *testing.T) {
	_, err := scraper.ParseTargets([]byte("targets:\n  - name: x\n    url: http://x\n    max_per_city: 1\n"))
	assert.ErrorIs(t, err, scraper.ErrInvalidTarget)

	_, err = scraper.ParseTargets([]byte("targets:\n  - name: x\n    unknown_key: 1\n"))
	assert.Error(t, err)

	_, err = scraper.LoadTargetsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
