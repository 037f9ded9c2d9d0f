package scraper

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

type CityScraper interface {
	Execute(ctx context.Context, c city.Target, collectedOn time.Time) (CityResult, error)
}

// TaskExecutor runs a batch of jobs concurrently and returns once all of them finished.
type TaskExecutor interface {
	RunAll(ctx context.Context, jobs ...func(ctx context.Context)) error
}

type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Pick returns a uniform duration in [Min, Max].
func (d DelayRange) Pick(r func() float64) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(r()*float64(d.Max-d.Min))
}

type RunResult struct {
	Cities      []CityResult
	Records     []professional.Record
	Planned     int
	Attempted   int
	Succeeded   int
	Interrupted bool
}

// CollectCitiesUseCase scrapes cities in order, pausing between them.
// With an executor set, up to its size cities run at once and results keep catalog order.
type CollectCitiesUseCase struct {
	scraper  CityScraper
	executor TaskExecutor
	delay    DelayRange
	logger   Logger
	sleep    func(ctx context.Context, d time.Duration) error
	random   func() float64
}

func NewCollectCitiesUseCase(scraper CityScraper, delay DelayRange, logger Logger) *CollectCitiesUseCase {
	return &CollectCitiesUseCase{
		scraper: scraper,
		delay:   delay,
		logger:  logger,
		sleep:   sleepContext,
		random:  rand.Float64,
	}
}

func (uc *CollectCitiesUseCase) WithExecutor(executor TaskExecutor) *CollectCitiesUseCase {
	uc.executor = executor
	return uc
}

func (uc *CollectCitiesUseCase) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *CollectCitiesUseCase {
	uc.sleep = sleep
	return uc
}

func (uc *CollectCitiesUseCase) Execute(ctx context.Context, cities []city.Target, collectedOn time.Time) RunResult {
	uc.logger.Info("starting collection", "cities", len(cities))

	slots := make([]*CityResult, len(cities))
	if uc.executor != nil {
		uc.runConcurrent(ctx, cities, collectedOn, slots)
	} else {
		uc.runSequential(ctx, cities, collectedOn, slots)
	}

	out := RunResult{Planned: len(cities), Interrupted: ctx.Err() != nil}
	for _, res := range slots {
		if res == nil {
			continue
		}
		out.Attempted++
		if len(res.Records) > 0 {
			out.Succeeded++
		}
		out.Cities = append(out.Cities, *res)
		out.Records = append(out.Records, res.Records...)
	}

	uc.logger.Info("collection finished",
		"raw", len(out.Records),
		"attempted", out.Attempted,
		"succeeded", out.Succeeded,
		"interrupted", out.Interrupted,
	)
	return out
}

func (uc *CollectCitiesUseCase) runSequential(ctx context.Context, cities []city.Target, collectedOn time.Time, slots []*CityResult) {
	for i, c := range cities {
		if ctx.Err() != nil {
			uc.logger.Warn("collection interrupted", "remaining", len(cities)-i)
			return
		}

		slots[i] = uc.scrapeOne(ctx, i, len(cities), c, collectedOn)

		if i < len(cities)-1 && !uc.pause(ctx) {
			return
		}
	}
}

func (uc *CollectCitiesUseCase) runConcurrent(ctx context.Context, cities []city.Target, collectedOn time.Time, slots []*CityResult) {
	jobs := make([]func(ctx context.Context), len(cities))
	for i, c := range cities {
		jobs[i] = func(ctx context.Context) {
			slots[i] = uc.scrapeOne(ctx, i, len(cities), c, collectedOn)
			if i < len(cities)-1 {
				uc.pause(ctx)
			}
		}
	}

	if err := uc.executor.RunAll(ctx, jobs...); err != nil {
		uc.logger.Error("some cities were not scheduled", "error", err)
	}
}

func (uc *CollectCitiesUseCase) scrapeOne(ctx context.Context, i, total int, c city.Target, collectedOn time.Time) *CityResult {
	uc.logger.Info("processing city", "index", i+1, "total", total, "city", c.String())

	res, err := uc.scraper.Execute(ctx, c, collectedOn)
	if err != nil {
		if ctx.Err() != nil {
			uc.logger.Warn("city interrupted", "city", c.String(), "kept", len(res.Records))
		} else {
			uc.logger.Error("city failed", "city", c.String(), "kind", Kind(err), "error", err)
			res.Records = nil
		}
	} else {
		uc.logger.Info("city done",
			"city", c.String(),
			"records", len(res.Records),
			"found", res.Found,
			"discarded", res.Discarded,
		)
	}

	res.City = c
	return &res
}

// pause reports false when ctx ended during the wait.
func (uc *CollectCitiesUseCase) pause(ctx context.Context) bool {
	d := uc.delay.Pick(uc.random)
	if d <= 0 {
		return ctx.Err() == nil
	}
	uc.logger.Debug("waiting before next city", "delay", d)
	return uc.sleep(ctx, d) == nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
