// Package rod provides browser-automation fetching built on go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/cfscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultWaitTimeout bounds the wait for the marker element to
	// appear in the rendered document.
	DefaultWaitTimeout = 20 * time.Second

	// DefaultSettleDelay is the pause before session teardown that lets
	// asynchronous page activity finish.
	DefaultSettleDelay = 3 * time.Second
)

// Ensure Fetcher implements cfscrape.Fetcher at compile time.
var _ cfscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered problem pages using Chrome browser
// automation. Each Fetch call launches its own browser, so one call owns
// its session exclusively and tears it down before returning; no browser
// state is shared between calls.
type Fetcher struct {
	waitTimeout time.Duration
	settleDelay time.Duration
	headless    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithWaitTimeout sets how long Fetch waits for the marker element.
// Defaults to DefaultWaitTimeout.
func WithWaitTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.waitTimeout = d
	}
}

// WithSettleDelay sets the pause before session teardown.
// Defaults to DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithHeadless toggles headless mode. Headed mode is occasionally useful
// when debugging marker changes.
func WithHeadless(headless bool) Option {
	return func(f *Fetcher) {
		f.headless = headless
	}
}

// NewFetcher creates a new Fetcher. No browser is launched until Fetch
// is called.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		waitTimeout: DefaultWaitTimeout,
		settleDelay: DefaultSettleDelay,
		headless:    true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to url in a fresh browser session, waits for the
// waitFor marker to be present, and returns the rendered HTML. The
// session is released on every exit path; teardown pauses for the settle
// delay first so in-flight page activity can finish.
func (f *Fetcher) Fetch(ctx context.Context, url, waitFor string) (string, error) {
	// Check context before launching anything
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lnchr := launcher.New().
		Set("start-maximized").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(f.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer func() {
		time.Sleep(f.settleDelay)
		_ = browser.Close()
		lnchr.Kill()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", cfscrape.Errorf(cfscrape.EUNAVAILABLE, "cannot reach %s: %v", url, err)
	}

	// The page keeps rendering while we wait for the marker; the wait is
	// the only bounded suspension point in an extraction.
	if _, err := page.Timeout(f.waitTimeout).Element(waitFor); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", cfscrape.Errorf(cfscrape.ETIMEOUT, "marker %q did not appear within %s", waitFor, f.waitTimeout)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}
