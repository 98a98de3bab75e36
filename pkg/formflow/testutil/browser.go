// browser.go provides browser automation utilities for E2E testing.
// It wraps Rod to provide headless Chrome instances for driving the
// application form fixture.
package testutil

import (
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserClient wraps Rod with a test-friendly Chrome configuration.
type BrowserClient struct {
	browser *rod.Browser
	page    *rod.Page
	cfg     Config
}

// NewBrowserClient creates a headless Chrome. The browser is configured
// with no sandbox (for container compatibility) and GPU disabled.
func NewBrowserClient(cfg Config) (*BrowserClient, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if cfg.SlowMo > 0 {
		browser = browser.SlowMotion(cfg.SlowMo)
	}
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	return &BrowserClient{
		browser: browser,
		cfg:     cfg,
	}, nil
}

// NewPage opens a blank page for a driver to own. Each form session should
// get its own page so sessions share no rendered state.
func (c *BrowserClient) NewPage() (*rod.Page, error) {
	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	c.page = page
	return page, nil
}

// Page returns the most recently opened page, or nil if none open.
func (c *BrowserClient) Page() *rod.Page {
	return c.page
}

// WaitStable waits for the current page to be stable (no DOM changes).
func (c *BrowserClient) WaitStable() error {
	if c.page == nil {
		return errors.New("no page open")
	}
	return c.page.WaitStable(c.cfg.Timeout)
}

// Close cleans up browser resources.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (c *BrowserClient) Close() error {
	if c.browser != nil {
		return c.browser.Close()
	}
	return nil
}
