// Package journey drives the complete purchase flow through the page objects, tracking the
// current screen and timing every step against its budget.
package journey

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AndresValenciaC/swagcheck/pkg/pages"
)

// Step names one timed part of the purchase flow.
type Step string

// steps in execution order.
const (
	StepLogin      Step = "login"
	StepProducts   Step = "product_selection"
	StepCart       Step = "cart_navigation"
	StepInfo       Step = "checkout_information"
	StepReview     Step = "order_review"
	StepCompletion Step = "order_completion"
	StepTotal      Step = "total" // the whole flow, only used in budgets and violations
)

// Steps lists the timed steps in the order Run executes them.
var Steps = []Step{StepLogin, StepProducts, StepCart, StepInfo, StepReview, StepCompletion}

// Params are the values typed into the storefront.
type Params struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	ZipCode   string
}

// Logger receives one line per step.
type Logger interface {
	Print(format string, args ...any)
}

// Sink stores named artifacts of a run, such as step durations and failure screenshots.
type Sink interface {
	Text(name, body string) error
	Image(name string, png []byte) error
}

// StepTiming is the measured duration of one step.
type StepTiming struct {
	Step     Step
	Duration time.Duration
}

// Timings holds the durations of the steps that ran, in order.
type Timings struct {
	Steps []StepTiming
	Total time.Duration
}

// Get returns the duration of step, ok is false when it did not run.
func (t Timings) Get(step Step) (time.Duration, bool) {
	if step == StepTotal {
		return t.Total, len(t.Steps) > 0
	}
	for _, st := range t.Steps {
		if st.Step == step {
			return st.Duration, true
		}
	}
	return 0, false
}

// Budgets are the maximum allowed durations. A zero budget is not checked.
type Budgets struct {
	Total time.Duration
	Steps map[Step]time.Duration
}

// DefaultBudgets returns the stock limits: 30s overall, 5s login, 2s to reach checkout from
// the listing and 3s for every other step.
func DefaultBudgets() Budgets {
	return Budgets{
		Total: 30 * time.Second,
		Steps: map[Step]time.Duration{
			StepLogin:      5 * time.Second,
			StepProducts:   3 * time.Second,
			StepCart:       2 * time.Second,
			StepInfo:       3 * time.Second,
			StepReview:     3 * time.Second,
			StepCompletion: 3 * time.Second,
		},
	}
}

// Violation is a step that did not finish strictly within its budget.
type Violation struct {
	Step   Step
	Took   time.Duration
	Budget time.Duration
}

func (v Violation) String() string {
	return fmt.Sprintf("%s took %s, budget %s", v.Step, v.Took.Round(time.Millisecond), v.Budget)
}

// Over lists the steps, and the total, that reached their budget. Steps that did not run are skipped.
func (t Timings) Over(b Budgets) []Violation {
	var res []Violation
	for _, st := range t.Steps {
		if limit := b.Steps[st.Step]; limit > 0 && st.Duration >= limit {
			res = append(res, Violation{Step: st.Step, Took: st.Duration, Budget: limit})
		}
	}
	if b.Total > 0 && len(t.Steps) > 0 && t.Total >= b.Total {
		res = append(res, Violation{Step: StepTotal, Took: t.Total, Budget: b.Total})
	}
	return res
}

// Summary renders the timings as "step: 1.23s" lines.
func (t Timings) Summary() string {
	var sb strings.Builder
	for _, st := range t.Steps {
		fmt.Fprintf(&sb, "%s: %.2fs\n", st.Step, st.Duration.Seconds())
	}
	fmt.Fprintf(&sb, "%s: %.2fs\n", StepTotal, t.Total.Seconds())
	return sb.String()
}

// Result is what Run observed.
type Result struct {
	Timings  Timings
	Products []string // products put into the cart
	Failed   Step     // step that returned the error, empty on success
}

// Option customizes Run.
type Option func(*runner)

// WithLogger reports step progress to l.
func WithLogger(l Logger) Option { return func(r *runner) { r.log = l } }

// WithSink stores step durations and failure screenshots in s.
func WithSink(s Sink) Option { return func(r *runner) { r.sink = s } }

// WithTracker records screen changes in t instead of a private tracker.
func WithTracker(t *Tracker) Option { return func(r *runner) { r.tracker = t } }

type runner struct {
	site    *pages.Site
	log     Logger
	sink    Sink
	tracker *Tracker
	now     func() time.Time
	res     Result
}

// Run logs in, buys a random set of products, checks out and returns to the listing.
// Each step is timed. On failure the result holds the steps that completed and the failed one.
func Run(ctx context.Context, site *pages.Site, p Params, opts ...Option) (Result, error) {
	r := &runner{site: site, tracker: &Tracker{}, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.tracker.Reset()

	started := r.now()
	steps := []struct {
		step Step
		fn   func(context.Context) error
	}{
		{step: StepLogin, fn: func(ctx context.Context) error { return r.login(ctx, p) }},
		{step: StepProducts, fn: r.selectProducts},
		{step: StepCart, fn: r.cart},
		{step: StepInfo, fn: func(ctx context.Context) error { return r.information(ctx, p) }},
		{step: StepReview, fn: r.review},
		{step: StepCompletion, fn: r.completion},
	}

	for _, s := range steps {
		err := r.run(ctx, s.step, s.fn)
		r.res.Timings.Total = r.now().Sub(started)
		if err != nil {
			r.res.Failed = s.step
			return r.res, fmt.Errorf("step %s: %w", s.step, err)
		}
	}
	r.text("performance summary", r.res.Timings.Summary())
	return r.res, nil
}

// run times one step. A failed step still records its duration.
func (r *runner) run(ctx context.Context, step Step, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.printf("step %s started", step)
	start := r.now()
	err := fn(ctx)
	took := r.now().Sub(start)
	r.res.Timings.Steps = append(r.res.Timings.Steps, StepTiming{Step: step, Duration: took})

	if err != nil {
		r.printf("step %s failed after %s: %v", step, took.Round(time.Millisecond), err)
		r.screenshot(string(step) + " failure")
		return err
	}
	r.printf("step %s done in %s", step, took.Round(time.Millisecond))
	r.text(string(step)+" duration", fmt.Sprintf("%s: %.2f seconds", step, took.Seconds()))
	return nil
}

func (r *runner) login(ctx context.Context, p Params) error {
	if err := r.site.Login.Open(ctx); err != nil {
		return err
	}
	return r.site.Login.Login(p.Username, p.Password)
}

func (r *runner) selectProducts(ctx context.Context) error {
	if err := r.site.Products.WaitReady(ctx); err != nil {
		return err
	}
	if err := r.tracker.Advance(ProductListing); err != nil {
		return err
	}
	names, err := r.site.Products.SelectRandomProducts(ctx)
	if err != nil {
		return err
	}
	if err := r.site.Products.AddSelectedToCart(ctx); err != nil {
		return err
	}
	r.res.Products = names
	r.printf("added to cart: %s", strings.Join(names, ", "))
	return nil
}

func (r *runner) cart(ctx context.Context) error {
	if err := r.site.Products.OpenCart(); err != nil {
		return err
	}
	if err := r.site.Cart.WaitReady(ctx); err != nil {
		return err
	}
	if err := r.tracker.Advance(Cart); err != nil {
		return err
	}
	return r.site.Cart.Checkout()
}

func (r *runner) information(ctx context.Context, p Params) error {
	if err := r.site.Info.WaitReady(ctx); err != nil {
		return err
	}
	if err := r.tracker.Advance(CheckoutInfo); err != nil {
		return err
	}
	if err := r.site.Info.Fill(p.FirstName, p.LastName, p.ZipCode); err != nil {
		return err
	}
	return r.site.Info.Continue()
}

func (r *runner) review(ctx context.Context) error {
	if err := r.site.Overview.WaitReady(ctx); err != nil {
		return err
	}
	if err := r.tracker.Advance(CheckoutOverview); err != nil {
		return err
	}
	return r.site.Overview.Finish()
}

func (r *runner) completion(ctx context.Context) error {
	if err := r.site.Complete.WaitReady(ctx); err != nil {
		return err
	}
	if err := r.tracker.Advance(CheckoutComplete); err != nil {
		return err
	}
	if err := r.site.Complete.ReturnHome(); err != nil {
		return err
	}
	if err := r.site.Products.WaitReady(ctx); err != nil {
		return err
	}
	return r.tracker.Advance(ProductListing)
}

func (r *runner) printf(format string, args ...any) {
	if r.log != nil {
		r.log.Print(format, args...)
	}
}

// text and screenshot never fail the run, artifacts are best effort.
func (r *runner) text(name, body string) {
	if r.sink == nil {
		return
	}
	if err := r.sink.Text(name, body); err != nil {
		r.printf("save %s: %v", name, err)
	}
}

func (r *runner) screenshot(name string) {
	if r.sink == nil {
		return
	}
	png, err := r.site.Driver.Screenshot()
	if err != nil {
		r.printf("screenshot %s: %v", name, err)
		return
	}
	if err := r.sink.Image(name, png); err != nil {
		r.printf("save %s: %v", name, err)
	}
}
