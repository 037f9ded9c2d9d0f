package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs/slog"
	queueredis "github.com/JulianoL13/guincho-scraper/internal/common/queue/redis"
	"github.com/JulianoL13/guincho-scraper/internal/common/workerpool"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
	proredis "github.com/JulianoL13/guincho-scraper/internal/professional/redis"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "")
	redisDB := getEnvInt("REDIS_DB", 0)
	stream := getEnv("REDIS_STREAM", professional.DefaultTopicCollected)
	group := getEnv("CONSUMER_GROUP", professional.DefaultGroupIndexers)
	consumerName := getEnv("CONSUMER_NAME", mustHostname())
	workers := getEnvInt("WORKER_POOL_SIZE", 10)
	recordTTL := time.Duration(getEnvInt("RECORD_TTL_HOURS", 168)) * time.Hour
	cleanEvery := time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute

	logger := slog.NewJSON(slog.ParseLevel(getEnv("LOG_LEVEL", "info")))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       redisDB,
	})
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	pool, err := workerpool.New(workers)
	if err != nil {
		logger.Error("failed to create worker pool", "error", err)
		os.Exit(1)
	}
	defer pool.Stop()

	repo := proredis.NewRepository(redisClient, "").WithTTL(recordTTL)
	cleaner := proredis.NewCleaner(redisClient, "", recordTTL)
	go cleaner.Run(ctx, cleanEvery, logger)

	uc := professional.NewIndexRecordsUseCase(
		queueredis.NewStreamsClient(redisClient),
		proredis.EventCodec{},
		repo,
		pool,
		logger,
		consumerName,
		stream,
		group,
	)

	if err := uc.Execute(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("indexer error", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func mustHostname() string {
	h, _ := os.Hostname()
	return h
}
