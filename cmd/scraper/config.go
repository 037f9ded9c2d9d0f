package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/city"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/JulianoL13/guincho-scraper/internal/proxy"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string
	TelegramChatID string

	ProxyMaxEntries   int
	ProxyCheckURL     string
	ProxyCheckTimeout time.Duration

	Target      string
	TargetsFile string
	CityMode    city.Mode
	CityFilter  []string

	MaxPerCity        int
	ScrollAttempts    int
	ScrollDelay       time.Duration
	DelayMin          time.Duration
	DelayMax          time.Duration
	ExtractionDelay   time.Duration
	NavigationTimeout time.Duration
	ElementTimeout    time.Duration
	RequiredFields    []string
	OutputDir         string
	Headless          bool
	ChromePath        string
	Concurrency       int

	RedisAddr   string
	RedisPass   string
	RedisDB     int
	RedisStream string

	LogLevel  string
	LogFormat string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	mode, err := city.ParseMode(getEnv("CITY_MODE", ""))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),

		ProxyMaxEntries:   getEnvInt("PROXY_MAX_ENTRIES", proxy.DefaultMaxEntries),
		ProxyCheckURL:     getEnv("PROXY_CHECK_URL", ""),
		ProxyCheckTimeout: time.Duration(getEnvInt("PROXY_CHECK_TIMEOUT_SECONDS", 10)) * time.Second,

		Target:      getEnv("TARGET", scraper.GoogleMaps),
		TargetsFile: getEnv("TARGETS_FILE", ""),
		CityMode:    mode,
		CityFilter:  getEnvList("CITY_FILTER", nil),

		MaxPerCity:        getEnvInt("MAX_PROFESSIONALS_PER_CITY", 0),
		ScrollAttempts:    getEnvInt("SCROLL_ATTEMPTS", 0),
		ScrollDelay:       time.Duration(getEnvInt("DELAY_BETWEEN_SCROLLS_MS", 0)) * time.Millisecond,
		DelayMin:          time.Duration(getEnvInt("DELAY_MIN_SECONDS", 30)) * time.Second,
		DelayMax:          time.Duration(getEnvInt("DELAY_MAX_SECONDS", 60)) * time.Second,
		ExtractionDelay:   time.Duration(getEnvInt("DELAY_BETWEEN_EXTRACTIONS_MS", 1500)) * time.Millisecond,
		NavigationTimeout: time.Duration(getEnvInt("TIMEOUT_NAVIGATION_SECONDS", 90)) * time.Second,
		ElementTimeout:    time.Duration(getEnvInt("TIMEOUT_ELEMENT_SECONDS", 15)) * time.Second,
		RequiredFields:    getEnvList("REQUIRED_FIELDS", professional.DefaultRequiredFields),
		OutputDir:         getEnv("OUTPUT_DIR", "output/results"),
		Headless:          getEnvBool("HEADLESS", true),
		ChromePath:        getEnv("CHROME_PATH", ""),
		Concurrency:       getEnvInt("SCRAPE_CONCURRENCY", 1),

		RedisAddr:   getEnv("REDIS_ADDR", ""),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisStream: getEnv("REDIS_STREAM", professional.DefaultTopicCollected),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if cfg.TelegramToken == "" || cfg.TelegramChatID == "" {
		return cfg, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}
	if err := professional.CheckFieldNames(cfg.RequiredFields); err != nil {
		return cfg, fmt.Errorf("REQUIRED_FIELDS: %w", err)
	}
	cfg.RequiredFields = professional.RequiredFields(cfg.RequiredFields)
	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}
	return cfg, nil
}

// applyTo overrides target defaults with the values set in the environment.
func (c Config) applyTo(t scraper.Target) scraper.Target {
	if c.MaxPerCity > 0 {
		t.MaxPerCity = c.MaxPerCity
	}
	if c.ScrollAttempts > 0 {
		t.ScrollAttempts = c.ScrollAttempts
	}
	if c.ScrollDelay > 0 {
		t.ScrollDelayMS = int(c.ScrollDelay / time.Millisecond)
	}
	return t
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

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
