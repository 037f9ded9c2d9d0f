package chrome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/proxy"
	"github.com/JulianoL13/guincho-scraper/internal/scraper"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	scrollBackPixels = 200
	scrollBackPause  = 500 * time.Millisecond
)

type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type Options struct {
	Headless          bool
	ExecPath          string
	UserAgent         string
	Locale            string
	Timezone          string
	WindowWidth       int
	WindowHeight      int
	NavigationTimeout time.Duration
	ElementTimeout    time.Duration
}

func DefaultOptions() Options {
	return Options{
		Headless:          true,
		UserAgent:         defaultUserAgent,
		Locale:            "pt-BR",
		Timezone:          "America/Sao_Paulo",
		WindowWidth:       1920,
		WindowHeight:      1080,
		NavigationTimeout: 90 * time.Second,
		ElementTimeout:    15 * time.Second,
	}
}

// Browser starts a new Chrome process per session. Each process gets its own
// temporary profile, removed when the session closes.
type Browser struct {
	opts   Options
	logger Logger
}

func NewBrowser(opts Options, logger Logger) *Browser {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = 90 * time.Second
	}
	if opts.ElementTimeout <= 0 {
		opts.ElementTimeout = 15 * time.Second
	}
	return &Browser{opts: opts, logger: logger}
}

func (b *Browser) allocatorOptions(p *proxy.ConnectionConfig) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.UserAgent(b.opts.UserAgent),
	)
	if b.opts.Locale != "" {
		opts = append(opts, chromedp.Flag("lang", b.opts.Locale))
	}
	if b.opts.WindowWidth > 0 && b.opts.WindowHeight > 0 {
		opts = append(opts, chromedp.WindowSize(b.opts.WindowWidth, b.opts.WindowHeight))
	}
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}
	if p != nil {
		opts = append(opts, chromedp.ProxyServer(p.Server))
	}
	return opts
}

func (b *Browser) Open(ctx context.Context, so scraper.SessionOptions) (scraper.Session, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.allocatorOptions(so.Proxy)...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			b.logger.Debug("chrome", "detail", fmt.Sprintf(format, args...))
		}),
	)

	s := &session{
		ctx:    browserCtx,
		opts:   b.opts,
		logger: b.logger,
		cancel: func() {
			cancelBrowser()
			cancelAlloc()
		},
	}

	setup := []chromedp.Action{}
	if so.Proxy != nil && so.Proxy.HasAuth() {
		listenForAuth(browserCtx, *so.Proxy)
		setup = append(setup, fetch.Enable().WithHandleAuthRequests(true))
	}
	if b.opts.Locale != "" {
		setup = append(setup, network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": b.opts.Locale}))
	}
	if b.opts.Timezone != "" {
		setup = append(setup, emulation.SetTimezoneOverride(b.opts.Timezone))
	}

	// The first Run launches the browser process and ties it to the context it gets,
	// so it must not be a short-lived one.
	if err := chromedp.Run(browserCtx, setup...); err != nil {
		s.cancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}
	return s, nil
}

// listenForAuth answers proxy credential challenges and releases requests
// paused by the fetch domain.
func listenForAuth(ctx context.Context, p proxy.ConnectionConfig) {
	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev := ev.(type) {
		case *fetch.EventAuthRequired:
			go func() {
				_ = chromedp.Run(ctx, fetch.ContinueWithAuth(ev.RequestID, &fetch.AuthChallengeResponse{
					Response: fetch.AuthChallengeResponseResponseProvideCredentials,
					Username: p.Username,
					Password: p.Password,
				}))
			}()
		case *fetch.EventRequestPaused:
			go func() {
				_ = chromedp.Run(ctx, fetch.ContinueRequest(ev.RequestID))
			}()
		}
	})
}

type session struct {
	ctx       context.Context
	cancel    func()
	opts      Options
	logger    Logger
	closeOnce sync.Once
}

// run executes actions on the session's tab, bounded by timeout and by ctx.
func (s *session) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return errors.Join(ctx.Err(), err)
	}
	return err
}

func (s *session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, s.opts.NavigationTimeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (s *session) Search(ctx context.Context, box, query string) error {
	return s.run(ctx, s.opts.ElementTimeout,
		chromedp.WaitVisible(box, chromedp.ByQuery),
		chromedp.Click(box, chromedp.ByQuery),
		chromedp.SendKeys(box, query, chromedp.ByQuery),
		chromedp.SendKeys(box, kb.Enter, chromedp.ByQuery),
	)
}

func (s *session) Scroll(ctx context.Context, plan scraper.ScrollPlan) error {
	if plan.WaitFor != "" {
		if err := s.run(ctx, s.opts.ElementTimeout, chromedp.WaitVisible(plan.WaitFor, chromedp.ByQuery)); err != nil {
			return fmt.Errorf("wait for %s: %w", plan.WaitFor, err)
		}
	}

	down := scrollScript(plan.Container, 0)
	up := scrollScript(plan.Container, -scrollBackPixels)

	for i := 0; i < plan.Attempts; i++ {
		var found bool
		if err := s.run(ctx, s.opts.ElementTimeout, chromedp.Evaluate(down, &found)); err != nil {
			return fmt.Errorf("scroll %d: %w", i+1, err)
		}
		if !found {
			return fmt.Errorf("scroll container %q not found", plan.Container)
		}
		if err := sleep(ctx, plan.Delay); err != nil {
			return err
		}

		if err := s.run(ctx, s.opts.ElementTimeout, chromedp.Evaluate(up, &found)); err != nil {
			return fmt.Errorf("scroll back %d: %w", i+1, err)
		}
		if err := sleep(ctx, scrollBackPause); err != nil {
			return err
		}
	}

	s.logger.Debug("scrolled", "attempts", plan.Attempts, "container", plan.Container)
	return nil
}

func (s *session) Snapshot(ctx context.Context) (scraper.Snapshot, error) {
	var snap scraper.Snapshot
	err := s.run(ctx, s.opts.ElementTimeout,
		chromedp.OuterHTML("html", &snap.HTML, chromedp.ByQuery),
		chromedp.Location(&snap.URL),
	)
	return snap, err
}

// Close shuts the browser down and removes its profile. Safe to call twice.
func (s *session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = chromedp.Cancel(s.ctx)
		s.cancel()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	})
	return err
}

// scrollScript returns JS that moves the container (or the window) to the bottom when
// offset is zero, or by offset pixels otherwise. It evaluates to false if the container is missing.
func scrollScript(container string, offset int) string {
	if container == "" {
		if offset == 0 {
			return `(() => { window.scrollTo(0, document.body.scrollHeight); return true; })()`
		}
		return fmt.Sprintf(`(() => { window.scrollBy(0, %d); return true; })()`, offset)
	}

	sel, _ := json.Marshal(container)
	if offset == 0 {
		return fmt.Sprintf(`(() => { const el = document.querySelector(%s); if (!el) return false; el.scrollTop = el.scrollHeight; return true; })()`, sel)
	}
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); if (!el) return false; el.scrollTop += %d; return true; })()`, sel, offset)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
