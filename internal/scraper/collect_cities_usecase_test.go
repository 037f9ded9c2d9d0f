package scraper_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/common/logs/mocks"
	"github.com/JulianoL13/guincho-scraper/internal/common/workerpool"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCityScraper returns one record per city unless the city is listed in failing.
type fakeCityScraper struct {
	mu      sync.Mutex
	calls   []string
	failing map[string]error
	onCall  func(c city.Target)
}

func (f *fakeCityScraper) Execute(_ context.Context, c city.Target, collectedOn time.Time) (scraper.CityResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c.Slug)
	f.mu.Unlock()

	if f.onCall != nil {
		f.onCall(c)
	}
	if err, ok := f.failing[c.Slug]; ok {
		return scraper.CityResult{City: c}, err
	}
	return scraper.CityResult{
		City: c,
		Records: []professional.Record{{
			Name:        "Guincho " + c.DisplayName(),
			Phone:       "1999999999",
			City:        c.DisplayName(),
			State:       c.UF(),
			CollectedOn: collectedOn.Format(professional.DateLayout),
		}},
	}, nil
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func TestCollectCitiesUseCase_Sequential(t *testing.T) {
	cities := city.DailyCities(1)
	fake := &fakeCityScraper{failing: map[string]error{
		cities[1].Slug: &scraper.NavigationError{City: cities[1].String(), Err: errors.New("timeout")},
	}}
	sleeper := &sleepRecorder{}

	uc := scraper.NewCollectCitiesUseCase(fake, scraper.DelayRange{Min: 30 * time.Second, Max: 60 * time.Second}, mocks.LoggerMock{}).
		WithSleep(sleeper.sleep)

	res := uc.Execute(context.Background(), cities, time.Now())

	slugs := make([]string, len(cities))
	for i, c := range cities {
		slugs[i] = c.Slug
	}
	assert.Equal(t, slugs, fake.calls, "cities run in provider order")

	assert.Equal(t, 5, res.Planned)
	assert.Equal(t, 5, res.Attempted)
	assert.Equal(t, 4, res.Succeeded)
	assert.Len(t, res.Records, 4)
	assert.False(t, res.Interrupted)

	require.Len(t, sleeper.delays, 4, "no delay after the last city")
	for _, d := range sleeper.delays {
		assert.GreaterOrEqual(t, d, 30*time.Second)
		assert.LessOrEqual(t, d, 60*time.Second)
	}
}

func TestCollectCitiesUseCase_SessionTimeoutIsCityFailure(t *testing.T) {
	cities := city.DailyCities(2)
	fake := &fakeCityScraper{failing: map[string]error{
		cities[0].Slug: &scraper.NavigationError{City: cities[0].String(), Err: context.DeadlineExceeded},
	}}
	logger := &mocks.RecorderMock{}

	uc := scraper.NewCollectCitiesUseCase(fake, scraper.DelayRange{}, logger)
	res := uc.Execute(context.Background(), cities, time.Now())

	assert.False(t, res.Interrupted)
	assert.Equal(t, 5, res.Attempted, "a timed out city does not stop the run")
	assert.Equal(t, 4, res.Succeeded)

	var failed, interrupted bool
	for _, line := range logger.Lines() {
		if strings.HasPrefix(line, "ERROR city failed") && strings.Contains(line, "kind navigation") {
			failed = true
		}
		if strings.Contains(line, "city interrupted") {
			interrupted = true
		}
	}
	assert.True(t, failed)
	assert.False(t, interrupted)
}

func TestCollectCitiesUseCase_Interrupted(t *testing.T) {
	cities := city.DailyCities(3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fake := &fakeCityScraper{onCall: func(c city.Target) {
		if c == cities[1] {
			cancel()
		}
	}}

	uc := scraper.NewCollectCitiesUseCase(fake, scraper.DelayRange{}, mocks.LoggerMock{})
	res := uc.Execute(ctx, cities, time.Now())

	assert.True(t, res.Interrupted)
	assert.Equal(t, 2, res.Attempted)
	assert.Len(t, fake.calls, 2, "no city starts after cancellation")
	assert.Len(t, res.Records, 2, "records gathered before the interrupt are kept")
}

func TestCollectCitiesUseCase_Concurrent(t *testing.T) {
	pool, err := workerpool.New(3)
	require.NoError(t, err)
	defer pool.Stop()

	cities := city.WeeklyCities(2)
	fake := &fakeCityScraper{failing: map[string]error{
		cities[0].Slug: &scraper.SessionError{City: cities[0].String(), Err: errors.New("no chrome")},
	}}
	sleeper := &sleepRecorder{}

	uc := scraper.NewCollectCitiesUseCase(fake, scraper.DelayRange{Min: time.Second, Max: time.Second}, mocks.LoggerMock{}).
		WithExecutor(pool).
		WithSleep(sleeper.sleep)

	res := uc.Execute(context.Background(), cities, time.Now())

	assert.Equal(t, 20, res.Attempted)
	assert.Equal(t, 19, res.Succeeded)
	require.Len(t, res.Cities, 20)
	for i, c := range res.Cities {
		assert.Equal(t, cities[i], c.City, "results keep catalog order")
	}
	assert.Equal(t, cities[1].DisplayName(), res.Records[0].City)
	assert.Len(t, sleeper.delays, 19)
}

func TestDelayRange_Pick(t *testing.T) {
	d := scraper.DelayRange{Min: 10 * time.Second, Max: 20 * time.Second}

	assert.Equal(t, 10*time.Second, d.Pick(func() float64 { return 0 }))
	assert.Equal(t, 15*time.Second, d.Pick(func() float64 { return 0.5 }))
	assert.Equal(t, 5*time.Second, scraper.DelayRange{Min: 5 * time.Second}.Pick(func() float64 { return 0.9 }))
}
