package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// Condition is the state a Waiter polls for.
type Condition string

// Condition kinds understood by Waiter.
const (
	Present   Condition = "present"
	Clickable Condition = "clickable"
	Invisible Condition = "invisible"
)

// default wait budget and polling period.
const (
	DefaultTimeout      = 10 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
)

// Waiter blocks until an element condition holds or the time budget is spent.
// It is the only place that synchronizes with asynchronous rendering.
type Waiter struct {
	scope    Searcher
	timeout  time.Duration
	interval time.Duration
}

// WaitOption overrides waiter settings for a single call.
type WaitOption func(*waitParams)

type waitParams struct {
	timeout time.Duration
}

// WithTimeout sets the time budget of one wait.
func WithTimeout(d time.Duration) WaitOption {
	return func(p *waitParams) { p.timeout = d }
}

// NewWaiter creates a waiter searching scope. Non-positive timeout or interval fall back to defaults.
func NewWaiter(scope Searcher, timeout, interval time.Duration) *Waiter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Waiter{scope: scope, timeout: timeout, interval: interval}
}

// Timeout returns the default time budget.
func (w *Waiter) Timeout() time.Duration { return w.timeout }

// Present waits until at least one element matches loc and returns the first one.
func (w *Waiter) Present(ctx context.Context, loc locator.Locator, opts ...WaitOption) (Element, error) {
	els, err := w.until(ctx, loc, Present, opts)
	if err != nil {
		return nil, err
	}
	return els[0], nil
}

// PresentAll waits until at least one element matches loc and returns all matches.
func (w *Waiter) PresentAll(ctx context.Context, loc locator.Locator, opts ...WaitOption) ([]Element, error) {
	return w.until(ctx, loc, Present, opts)
}

// Clickable waits until the first element matching loc is visible and enabled.
func (w *Waiter) Clickable(ctx context.Context, loc locator.Locator, opts ...WaitOption) (Element, error) {
	els, err := w.until(ctx, loc, Clickable, opts)
	if err != nil {
		return nil, err
	}
	return els[0], nil
}

// Invisible waits until nothing matching loc is visible, absent elements count as invisible.
func (w *Waiter) Invisible(ctx context.Context, loc locator.Locator, opts ...WaitOption) error {
	_, err := w.until(ctx, loc, Invisible, opts)
	return err
}

// until polls the condition immediately and then every interval until it holds,
// the budget elapses (*TimeoutError) or ctx is done.
func (w *Waiter) until(ctx context.Context, loc locator.Locator, cond Condition, opts []WaitOption) ([]Element, error) {
	p := waitParams{timeout: w.timeout}
	for _, opt := range opts {
		opt(&p)
	}

	deadline := time.NewTimer(p.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		els, ok, err := w.check(loc, cond)
		if err != nil {
			return nil, err
		}
		if ok {
			return els, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			// one last look, the condition may have turned true right at the deadline
			if els, ok, err := w.check(loc, cond); err == nil && ok {
				return els, nil
			}
			return nil, &TimeoutError{Locator: loc, Condition: cond, Timeout: p.timeout}
		case <-ticker.C:
		}
	}
}

// check evaluates cond once. element-level errors (detached nodes) make the condition false
// for this round instead of aborting the wait.
func (w *Waiter) check(loc locator.Locator, cond Condition) ([]Element, bool, error) {
	els, err := w.scope.FindAll(loc)
	if err != nil {
		if IsNotFound(err) {
			return nil, cond == Invisible, nil
		}
		return nil, false, err
	}

	switch cond {
	case Present:
		return els, len(els) > 0, nil
	case Clickable:
		if len(els) == 0 {
			return nil, false, nil
		}
		visible, vErr := els[0].Visible()
		if vErr != nil || !visible {
			return nil, false, nil //nolint:nilerr // node may be re-rendering, poll again
		}
		enabled, eErr := els[0].Enabled()
		if eErr != nil || !enabled {
			return nil, false, nil //nolint:nilerr // same as above
		}
		return els, true, nil
	case Invisible:
		for _, el := range els {
			visible, vErr := el.Visible()
			if vErr == nil && visible {
				return nil, false, nil
			}
		}
		return nil, true, nil
	default:
		return nil, false, fmt.Errorf("unknown wait condition %q", cond)
	}
}
