package proxy

import (
	"fmt"
	"sync"
)

const DefaultMaxEntries = 11

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Pool hands out endpoints in strict round-robin order.
// The endpoint list never changes after construction.
type Pool struct {
	mu        sync.Mutex
	endpoints []Endpoint
	cursor    int
}

func NewPool(endpoints []Endpoint) *Pool {
	list := make([]Endpoint, len(endpoints))
	copy(list, endpoints)
	return &Pool{endpoints: list}
}

// LoadPool reads PROXY_1..PROXY_maxEntries through lookup and keeps the entries that parse.
// Rejected entries are dropped for the whole run.
func LoadPool(lookup func(string) string, maxEntries int, logger Logger) *Pool {
	if maxEntries < 1 {
		maxEntries = DefaultMaxEntries
	}

	var endpoints []Endpoint
	for i := 1; i <= maxEntries; i++ {
		key := fmt.Sprintf("PROXY_%d", i)
		raw := lookup(key)
		if raw == "" {
			logger.Debug("proxy not configured", "key", key)
			continue
		}

		e, err := ParseEndpoint(raw)
		if err != nil {
			logger.Warn("proxy rejected", "key", key, "error", err)
			continue
		}

		logger.Info("proxy loaded", "key", key, "server", e.Server(), "auth", e.HasCredentials())
		endpoints = append(endpoints, e)
	}

	if len(endpoints) == 0 {
		logger.Warn("no proxies configured, sessions will connect directly")
	} else {
		logger.Info("proxies loaded", "count", len(endpoints))
	}

	return NewPool(endpoints)
}

func (p *Pool) Next() (Endpoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.endpoints) == 0 {
		return Endpoint{}, false
	}

	e := p.endpoints[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.endpoints)
	return e, true
}

func (p *Pool) Len() int {
	return len(p.endpoints)
}

func (p *Pool) Endpoints() []Endpoint {
	out := make([]Endpoint, len(p.endpoints))
	copy(out, p.endpoints)
	return out
}

// NextSession returns the next endpoint with usable credentials.
// Endpoints with malformed credentials are skipped for at most one lap;
// false means the session should connect without a proxy.
func (p *Pool) NextSession(logger Logger) (ConnectionConfig, bool) {
	for range p.Len() {
		e, ok := p.Next()
		if !ok {
			break
		}

		cfg, err := SessionConfig(e)
		if err != nil {
			logger.Warn("skipping proxy", "server", e.Server(), "error", err)
			continue
		}
		return cfg, true
	}
	return ConnectionConfig{}, false
}
