package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
	"github.com/JulianoL13/guincho-scraper/internal/common/logs/slog"
	queueredis "github.com/JulianoL13/guincho-scraper/internal/common/queue/redis"
	"github.com/JulianoL13/guincho-scraper/internal/common/workerpool"
	"github.com/JulianoL13/guincho-scraper/internal/notify/telegram"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/JulianoL13/guincho-scraper/internal/professional/file"
	proredis "github.com/JulianoL13/guincho-scraper/internal/professional/redis"
	"github.com/JulianoL13/guincho-scraper/internal/proxy"
	httpproxy "github.com/JulianoL13/guincho-scraper/internal/proxy/http"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	"github.com/JulianoL13/guincho-scraper/internal/scraper/chrome"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func newLogger(cfg Config) logs.Logger {
	level := slog.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return slog.NewJSON(level)
	}
	return slog.New(level)
}

func run() int {
	cfg, cfgErr := loadConfig()

	runID := uuid.NewString()
	logger := newLogger(cfg).With("run_id", runID)

	if cfgErr != nil {
		logger.Error("invalid configuration", "error", cfgErr)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier, err := telegram.New(cfg.TelegramToken, cfg.TelegramChatID, logger)
	if err != nil {
		logger.Error("failed to create notifier", "error", err)
		return exitFailure
	}

	target, err := resolveTarget(cfg)
	if err != nil {
		logger.Error("failed to resolve target", "target", cfg.Target, "error", err)
		return exitFailure
	}

	pool := proxy.LoadPool(os.Getenv, cfg.ProxyMaxEntries, logger)
	if cfg.ProxyCheckURL != "" && pool.Len() > 0 {
		pool, err = verifyPool(ctx, cfg, pool, logger)
		if err != nil {
			logger.Error("failed to verify proxies", "error", err)
			return exitFailure
		}
	}

	startedAt := time.Now()
	cities := city.ForDate(startedAt, cfg.CityMode)
	if len(cfg.CityFilter) > 0 {
		cities = city.Filter(cities, cfg.CityFilter)
	}

	logger.Info("starting run",
		"target", target.Name,
		"mode", cfg.CityMode,
		"cities", len(cities),
		"proxies", pool.Len(),
		"concurrency", cfg.Concurrency,
	)

	browserOpts := chrome.DefaultOptions()
	browserOpts.Headless = cfg.Headless
	browserOpts.ExecPath = cfg.ChromePath
	browserOpts.NavigationTimeout = cfg.NavigationTimeout
	browserOpts.ElementTimeout = cfg.ElementTimeout
	browser := chrome.NewBrowser(browserOpts, logger)

	extractor := scraper.NewExtractor(cfg.RequiredFields, cfg.ExtractionDelay, logger)
	scrapeCity := scraper.NewScrapeCityUseCase(browser, pool, extractor, target, logger)
	collect := scraper.NewCollectCitiesUseCase(scrapeCity, scraper.DelayRange{Min: cfg.DelayMin, Max: cfg.DelayMax}, logger)

	if cfg.Concurrency > 1 {
		workers, err := workerpool.New(cfg.Concurrency)
		if err != nil {
			logger.Error("failed to create worker pool", "error", err)
			return exitFailure
		}
		defer workers.Stop()
		collect = collect.WithExecutor(workers)
	}

	result := collect.Execute(ctx, cities, startedAt)
	interrupted := result.Interrupted || ctx.Err() != nil

	finalize := professional.NewFinalizeRunUseCase(file.NewStore(cfg.OutputDir), notifier, cfg.RequiredFields, logger)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		finalize = finalize.WithPublisher(proredis.NewStreamPublisher(queueredis.NewStreamsClient(client), cfg.RedisStream, target.Name))
	}

	// the run ctx may already be cancelled, delivery gets its own budget
	finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Minute)
	defer cancel()

	out, err := finalize.Execute(finalizeCtx, professional.FinalizeInput{
		RunID:       runID,
		Records:     result.Records,
		Planned:     result.Planned,
		Attempted:   result.Attempted,
		Succeeded:   result.Succeeded,
		Interrupted: interrupted,
		At:          time.Now(),
	})

	switch {
	case interrupted:
		logger.Warn("run interrupted by operator", "records", len(out.Records), "artifact", out.ArtifactPath)
		return exitInterrupted
	case errors.Is(err, professional.ErrNoRecords):
		logger.Error("run finished without records", "cities_attempted", result.Attempted)
		return exitFailure
	case err != nil:
		logger.Error("run failed", "error", err, "artifact", out.ArtifactPath)
		return exitFailure
	}

	logger.Info("run finished",
		"records", out.Stats.Total,
		"cities_ok", out.Stats.CitiesSucceeded,
		"artifact", out.ArtifactPath,
		"duration", time.Since(startedAt).Round(time.Second),
	)
	return exitOK
}

func resolveTarget(cfg Config) (scraper.Target, error) {
	var overrides []scraper.Target
	if cfg.TargetsFile != "" {
		loaded, err := scraper.LoadTargetsFile(cfg.TargetsFile)
		if err != nil {
			return scraper.Target{}, err
		}
		overrides = loaded
	}

	t, err := scraper.ResolveTarget(cfg.Target, overrides)
	if err != nil {
		return scraper.Target{}, err
	}
	return cfg.applyTo(t), nil
}

func verifyPool(ctx context.Context, cfg Config, pool *proxy.Pool, logger logs.Logger) (*proxy.Pool, error) {
	workers, err := workerpool.New(pool.Len())
	if err != nil {
		return nil, err
	}
	defer workers.Stop()

	checker := httpproxy.NewChecker(cfg.ProxyCheckURL, cfg.ProxyCheckTimeout, logger)
	return proxy.NewVerifyPoolUseCase(checker, workers, logger).Execute(ctx, pool), nil
}
