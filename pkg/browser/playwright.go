package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// LaunchOptions configures the browser process started by Launch.
type LaunchOptions struct {
	Engine         string        // chromium, firefox or webkit; empty means chromium
	Headless       bool          // run without a visible window
	SlowMo         time.Duration // delay inserted between browser operations
	Install        bool          // download the browser build before starting
	DefaultTimeout time.Duration // upper bound for a single browser operation (click, fill)
	Viewport       Viewport
}

// Viewport is the page size of new sessions.
type Viewport struct {
	Width  int
	Height int
}

// chromiumArgs keep a clean profile: no password manager, autofill or notification bubbles
// that would cover the login form.
var chromiumArgs = []string{
	"--disable-extensions",
	"--disable-plugins",
	"--disable-blink-features=AutomationControlled",
	"--password-store=basic",
	"--disable-save-password-bubble",
	"--disable-notifications",
	"--disable-popup-blocking",
	"--disable-infobars",
}

// Launcher owns the playwright driver process and one browser. Scenarios never share
// a session, they each get a fresh, isolated one from NewSession.
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    LaunchOptions
	engine  string
}

// Launch starts playwright and the configured browser engine.
func Launch(opts LaunchOptions) (*Launcher, error) {
	engine := strings.ToLower(strings.TrimSpace(opts.Engine))
	if engine == "" {
		engine = "chromium"
	}

	if opts.Install {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{engine}}); err != nil {
			return nil, fmt.Errorf("install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("run playwright: %w", err)
	}

	var bt playwright.BrowserType
	launch := playwright.BrowserTypeLaunchOptions{Headless: playwright.Bool(opts.Headless)}
	switch engine {
	case "chromium":
		bt = pw.Chromium
		launch.Args = chromiumArgs
	case "firefox":
		bt = pw.Firefox
	case "webkit":
		bt = pw.WebKit
	default:
		_ = pw.Stop()
		return nil, fmt.Errorf("unknown browser engine %q", opts.Engine)
	}
	if opts.SlowMo > 0 {
		launch.SlowMo = playwright.Float(float64(opts.SlowMo / time.Millisecond))
	}

	b, err := bt.Launch(launch)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", engine, err)
	}

	return &Launcher{pw: pw, browser: b, opts: opts, engine: engine}, nil
}

// Engine returns the name of the running browser engine.
func (l *Launcher) Engine() string { return l.engine }

// NewSession opens an isolated browser context (own cookies and storage) with one page.
func (l *Launcher) NewSession(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctxOpts := playwright.BrowserNewContextOptions{}
	if l.opts.Viewport.Width > 0 && l.opts.Viewport.Height > 0 {
		ctxOpts.Viewport = &playwright.Size{Width: l.opts.Viewport.Width, Height: l.opts.Viewport.Height}
	}

	bctx, err := l.browser.NewContext(ctxOpts)
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}
	if l.opts.DefaultTimeout > 0 {
		bctx.SetDefaultTimeout(float64(l.opts.DefaultTimeout / time.Millisecond))
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &Session{ctx: bctx, page: page}, nil
}

// Close shuts down the browser and the playwright driver.
func (l *Launcher) Close() error {
	var errs []error
	if l.browser != nil {
		if err := l.browser.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		l.browser = nil
	}
	if l.pw != nil {
		if err := l.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
		l.pw = nil
	}
	return errors.Join(errs...)
}

// Session is one scenario's page. It implements Driver.
type Session struct {
	ctx  playwright.BrowserContext
	page playwright.Page
}

// Navigate loads url and waits for the load event.
func (s *Session) Navigate(url string) error {
	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// Title returns the document title.
func (s *Session) Title() (string, error) {
	return s.page.Title()
}

// URL returns the current page url.
func (s *Session) URL() string {
	return s.page.URL()
}

// Screenshot captures the full page as png.
func (s *Session) Screenshot() ([]byte, error) {
	return s.page.Screenshot(playwright.PageScreenshotOptions{FullPage: playwright.Bool(true)})
}

// Find returns the first element matching loc, without waiting.
func (s *Session) Find(loc locator.Locator) (Element, error) {
	return first(loc)(s.FindAll(loc))
}

// FindAll returns all elements matching loc, without waiting.
func (s *Session) FindAll(loc locator.Locator) ([]Element, error) {
	return resolve(s.page.Locator(loc.Playwright()), loc)
}

// Close closes the page and its browser context. Safe to call more than once.
func (s *Session) Close() error {
	if s.ctx == nil {
		return nil
	}
	err := s.ctx.Close()
	s.ctx, s.page = nil, nil
	if err != nil && !isClosedErr(err) {
		return fmt.Errorf("close browser context: %w", err)
	}
	return nil
}

// handle adapts one match of a playwright locator to Element. The locator is bound to the
// match's position and re-resolved by playwright on every call.
type handle struct {
	l playwright.Locator
}

// resolve lists the current matches of l.
func resolve(l playwright.Locator, loc locator.Locator) ([]Element, error) {
	matches, err := l.All()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", loc, err)
	}
	res := make([]Element, 0, len(matches))
	for _, m := range matches {
		res = append(res, &handle{l: m})
	}
	return res, nil
}

func (e *handle) Find(loc locator.Locator) (Element, error) {
	return first(loc)(e.FindAll(loc))
}

func (e *handle) FindAll(loc locator.Locator) ([]Element, error) {
	return resolve(e.l.Locator(loc.Playwright()), loc)
}

// Text returns the rendered text of the node, trimmed.
func (e *handle) Text() (string, error) {
	txt, err := e.l.InnerText()
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return strings.TrimSpace(txt), nil
}

func (e *handle) Click() error {
	if err := e.l.Click(); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	return nil
}

// Type presses the keys of text one by one, appending to the current value.
func (e *handle) Type(text string) error {
	if err := e.l.PressSequentially(text); err != nil {
		return fmt.Errorf("type: %w", err)
	}
	return nil
}

func (e *handle) Clear() error {
	if err := e.l.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

func (e *handle) Visible() (bool, error) {
	return e.l.IsVisible()
}

func (e *handle) Enabled() (bool, error) {
	return e.l.IsEnabled()
}

// first turns a FindAll result for loc into a Find result.
func first(loc locator.Locator) func([]Element, error) (Element, error) {
	return func(els []Element, err error) (Element, error) {
		if err != nil {
			return nil, err
		}
		if len(els) == 0 {
			return nil, &NotFoundError{Locator: loc}
		}
		return els[0], nil
	}
}

// isClosedErr reports errors from closing something the browser already tore down.
func isClosedErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "closed")
}
