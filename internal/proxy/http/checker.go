package httpproxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/proxy"
)

type Logger interface {
	Debug(msg string, args ...any)
}

// Checker fetches TargetURL through the endpoint under test.
type Checker struct {
	TargetURL string
	Timeout   time.Duration
	UserAgent string
	logger    Logger
}

func NewChecker(target string, timeout time.Duration, logger Logger) *Checker {
	return &Checker{
		TargetURL: target,
		Timeout:   timeout,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		logger:    logger,
	}
}

func (c *Checker) Check(ctx context.Context, e proxy.Endpoint) proxy.CheckOutput {
	transport := &http.Transport{
		Proxy:             http.ProxyURL(e.URL()),
		DisableKeepAlives: true,
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		Timeout:   c.Timeout,
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.TargetURL, nil)
	if err != nil {
		return proxy.CheckOutput{Error: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)

	if err != nil {
		c.logger.Debug("proxy check failed", "server", e.Server(), "error", err)
		return proxy.CheckOutput{Latency: latency, Error: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	// Proxies answer 407 when the credentials are rejected.
	if resp.StatusCode >= http.StatusBadRequest {
		return proxy.CheckOutput{
			Latency: latency,
			Error:   fmt.Errorf("bad status code: %d", resp.StatusCode),
		}
	}

	return proxy.CheckOutput{Success: true, Latency: latency}
}
