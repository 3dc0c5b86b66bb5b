package journey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/browser/mocks"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/pages"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
)

// fakeStore imitates the storefront screens behind a mock driver. Clicks switch screens
// the way the real application does.
type fakeStore struct {
	screen  State
	screens map[State]map[locator.Locator][]browser.Element
	typed   map[locator.Locator]string
	cart    []string
	failOn  locator.Locator // clicking this returns an error
}

func newFakeStore(products ...string) *fakeStore {
	s := &fakeStore{screen: LoggedOut, typed: map[locator.Locator]string{}}
	s.screens = map[State]map[locator.Locator][]browser.Element{
		LoggedOut: {
			locator.Login.Username: {s.input(locator.Login.Username)},
			locator.Login.Password: {s.input(locator.Login.Password)},
			locator.Login.Submit:   {s.button(locator.Login.Submit, ProductListing)},
		},
		ProductListing: {
			locator.Products.AppLogo:  {s.el("Swag Labs", nil)},
			locator.Products.CartLink: {s.button(locator.Products.CartLink, Cart)},
		},
		Cart: {
			locator.Cart.Title:    {s.el("Your Cart", nil)},
			locator.Cart.Checkout: {s.button(locator.Cart.Checkout, CheckoutInfo)},
		},
		CheckoutInfo: {
			locator.CheckoutInfo.Title:     {s.el("Checkout: Your Information", nil)},
			locator.CheckoutInfo.FirstName: {s.input(locator.CheckoutInfo.FirstName)},
			locator.CheckoutInfo.LastName:  {s.input(locator.CheckoutInfo.LastName)},
			locator.CheckoutInfo.ZipCode:   {s.input(locator.CheckoutInfo.ZipCode)},
			locator.CheckoutInfo.Continue:  {s.button(locator.CheckoutInfo.Continue, CheckoutOverview)},
		},
		CheckoutOverview: {
			locator.CheckoutOverview.Subtotal: {s.el("Item total: $0.00", nil)},
			locator.CheckoutOverview.Finish:   {s.button(locator.CheckoutOverview.Finish, CheckoutComplete)},
		},
		CheckoutComplete: {
			locator.CheckoutComplete.ThankYou: {s.el("Thank you for your order!", nil)},
			locator.CheckoutComplete.BackHome: {s.button(locator.CheckoutComplete.BackHome, ProductListing)},
		},
	}

	listing := s.screens[ProductListing]
	for _, name := range products {
		add := s.el(pages.LabelAddToCart, nil)
		add.ClickFunc = func() error {
			s.cart = append(s.cart, name)
			listing[locator.RemoveFromCart(name)] = []browser.Element{s.el(pages.LabelRemove, nil)}
			return nil
		}
		card := map[locator.Locator][]browser.Element{
			locator.Products.ItemName: {s.el(name, nil)},
			locator.AddToCart(name):   {add},
		}
		listing[locator.Products.Item] = append(listing[locator.Products.Item], s.el("", card))
	}
	return s
}

func (s *fakeStore) driver() *mocks.DriverMock {
	return &mocks.DriverMock{
		NavigateFunc: func(string) error {
			s.screen = LoggedOut
			return nil
		},
		FindFunc:       func(l locator.Locator) (browser.Element, error) { return find(s.screens[s.screen], l) },
		FindAllFunc:    func(l locator.Locator) ([]browser.Element, error) { return s.screens[s.screen][l], nil },
		ScreenshotFunc: func() ([]byte, error) { return []byte("png:" + s.screen.String()), nil },
	}
}

func find(els map[locator.Locator][]browser.Element, l locator.Locator) (browser.Element, error) {
	if found := els[l]; len(found) > 0 {
		return found[0], nil
	}
	return nil, &browser.NotFoundError{Locator: l}
}

func (s *fakeStore) el(txt string, children map[locator.Locator][]browser.Element) *mocks.ElementMock {
	return &mocks.ElementMock{
		TextFunc:    func() (string, error) { return txt, nil },
		VisibleFunc: func() (bool, error) { return true, nil },
		EnabledFunc: func() (bool, error) { return true, nil },
		FindFunc:    func(l locator.Locator) (browser.Element, error) { return find(children, l) },
		FindAllFunc: func(l locator.Locator) ([]browser.Element, error) { return children[l], nil },
	}
}

func (s *fakeStore) input(l locator.Locator) *mocks.ElementMock {
	el := s.el("", nil)
	el.ClearFunc = func() error { s.typed[l] = ""; return nil }
	el.TypeFunc = func(v string) error { s.typed[l] += v; return nil }
	return el
}

func (s *fakeStore) button(l locator.Locator, next State) *mocks.ElementMock {
	el := s.el("", nil)
	el.ClickFunc = func() error {
		if l == s.failOn {
			return errors.New("element is not attached to the DOM")
		}
		s.screen = next
		return nil
	}
	return el
}

type memSink struct {
	texts  map[string]string
	images map[string][]byte
}

func newMemSink() *memSink {
	return &memSink{texts: map[string]string{}, images: map[string][]byte{}}
}

func (m *memSink) Text(name, body string) error {
	m.texts[name] = body
	return nil
}

func (m *memSink) Image(name string, png []byte) error {
	m.images[name] = png
	return nil
}

type lineLog struct{ lines []string }

func (l *lineLog) Print(format string, args ...any) { l.lines = append(l.lines, fmt.Sprintf(format, args...)) }

var params = Params{Username: "standard_user", Password: "secret_sauce", FirstName: "Andres", LastName: "Valencia", ZipCode: "760001"}

func newSite(drv browser.Driver) *pages.Site {
	return pages.NewSite(drv, browser.NewWaiter(drv, 100*time.Millisecond, 2*time.Millisecond),
		"https://www.saucedemo.com/", pick.New(5))
}

func TestRun(t *testing.T) {
	store := newFakeStore("Sauce Labs Backpack", "Sauce Labs Bike Light", "Sauce Labs Onesie")
	sink, log := newMemSink(), &lineLog{}
	tracker := &Tracker{}
	var visited []State
	tracker.OnChange(func(_, cur State) { visited = append(visited, cur) })

	res, err := Run(context.Background(), newSite(store.driver()), params,
		WithSink(sink), WithLogger(log), WithTracker(tracker))
	require.NoError(t, err)

	assert.Empty(t, res.Failed)
	assert.Equal(t, []State{ProductListing, Cart, CheckoutInfo, CheckoutOverview, CheckoutComplete, ProductListing}, visited)
	assert.Equal(t, ProductListing, tracker.Get())

	require.NotEmpty(t, res.Products)
	assert.ElementsMatch(t, res.Products, store.cart, "cart holds exactly the selected products")

	assert.Equal(t, "standard_user", store.typed[locator.Login.Username])
	assert.Equal(t, "secret_sauce", store.typed[locator.Login.Password])
	assert.Equal(t, "Andres", store.typed[locator.CheckoutInfo.FirstName])
	assert.Equal(t, "760001", store.typed[locator.CheckoutInfo.ZipCode])

	require.Len(t, res.Timings.Steps, len(Steps))
	for i, st := range res.Timings.Steps {
		assert.Equal(t, Steps[i], st.Step)
		assert.Contains(t, sink.texts, string(st.Step)+" duration")
	}
	assert.GreaterOrEqual(t, res.Timings.Total, res.Timings.Steps[0].Duration)
	assert.Contains(t, sink.texts["performance summary"], "order_completion: ")
	assert.Empty(t, sink.images)
	assert.Empty(t, res.Timings.Over(DefaultBudgets()), "fake store is fast")
	assert.Contains(t, strings.Join(log.lines, "\n"), "step login done in")
}

func TestRun_StepFailure(t *testing.T) {
	store := newFakeStore("Sauce Labs Fleece Jacket")
	store.failOn = locator.CheckoutOverview.Finish
	sink, log := newMemSink(), &lineLog{}

	res, err := Run(context.Background(), newSite(store.driver()), params, WithSink(sink), WithLogger(log))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step order_review")
	assert.Contains(t, err.Error(), "not attached")

	assert.Equal(t, StepReview, res.Failed)
	require.Len(t, res.Timings.Steps, 5, "failed step timed too")
	_, ok := res.Timings.Get(StepCompletion)
	assert.False(t, ok)

	assert.Equal(t, []byte("png:checkout-overview"), sink.images["order_review failure"])
	assert.NotContains(t, sink.texts, "performance summary")
	assert.Contains(t, strings.Join(log.lines, "\n"), "step order_review failed")
}

func TestRun_LoginRejected(t *testing.T) {
	store := newFakeStore("Sauce Labs Onesie")
	store.screens[LoggedOut][locator.Login.Submit] = []browser.Element{store.button(locator.Login.Submit, LoggedOut)}

	res, err := Run(context.Background(), newSite(store.driver()), params)
	require.Error(t, err)
	assert.True(t, browser.IsTimeout(err), "listing never shows")
	assert.Equal(t, StepProducts, res.Failed)
}

func TestRun_Canceled(t *testing.T) {
	store := newFakeStore("Sauce Labs Onesie")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, newSite(store.driver()), params)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StepLogin, res.Failed)
	assert.Empty(t, res.Timings.Steps)
}

func TestTimings_Over(t *testing.T) {
	tm := Timings{
		Steps: []StepTiming{
			{Step: StepLogin, Duration: 4 * time.Second},
			{Step: StepProducts, Duration: 3 * time.Second},
			{Step: StepCart, Duration: 2500 * time.Millisecond},
		},
		Total: 31 * time.Second,
	}

	got := tm.Over(DefaultBudgets())
	assert.Equal(t, []Violation{
		{Step: StepProducts, Took: 3 * time.Second, Budget: 3 * time.Second},
		{Step: StepCart, Took: 2500 * time.Millisecond, Budget: 2 * time.Second},
		{Step: StepTotal, Took: 31 * time.Second, Budget: 30 * time.Second},
	}, got)
	assert.Equal(t, "cart_navigation took 2.5s, budget 2s", got[1].String())

	assert.Empty(t, tm.Over(Budgets{}), "zero budgets are not checked")
	assert.Empty(t, Timings{}.Over(DefaultBudgets()))
}

func TestTimings_GetAndSummary(t *testing.T) {
	tm := Timings{Steps: []StepTiming{{Step: StepLogin, Duration: 1234 * time.Millisecond}}, Total: 2 * time.Second}

	d, ok := tm.Get(StepLogin)
	assert.True(t, ok)
	assert.Equal(t, 1234*time.Millisecond, d)

	d, ok = tm.Get(StepTotal)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Second, d)

	assert.Equal(t, "login: 1.23s\ntotal: 2.00s\n", tm.Summary())
}
