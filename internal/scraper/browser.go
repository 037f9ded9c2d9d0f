package scraper

import (
	"context"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/proxy"
)

// ScrollPlan drives the lazy-loading phase of a session.
// An empty Container scrolls the window.
type ScrollPlan struct {
	WaitFor   string
	Container string
	Attempts  int
	Delay     time.Duration
}

type SessionOptions struct {
	Proxy *proxy.ConnectionConfig
}

// Browser opens isolated sessions; nothing is shared between two sessions.
type Browser interface {
	Open(ctx context.Context, opts SessionOptions) (Session, error)
}

type Session interface {
	Navigate(ctx context.Context, url string) error
	Search(ctx context.Context, box, query string) error
	Scroll(ctx context.Context, plan ScrollPlan) error
	Snapshot(ctx context.Context) (Snapshot, error)
	Close() error
}

type ProxySource interface {
	NextSession(logger proxy.Logger) (proxy.ConnectionConfig, bool)
}
