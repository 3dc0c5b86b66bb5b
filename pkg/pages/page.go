// Package pages holds one page object per storefront screen. Page objects find elements through
// the locator tables, synchronize through browser.Waiter and return plain values to scenarios.
// They assume the previous screen's action already happened and never check the flow themselves.
package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
)

// wait budgets of individual interactions.
const (
	toggleTimeout      = 3 * time.Second  // add control flips to remove
	removeReadyTimeout = 10 * time.Second // remove control becomes clickable in the cart
	removeGoneTimeout  = 5 * time.Second  // removed line disappears
	checkoutTimeout    = 5 * time.Second  // checkout screens render, form errors show up
)

// control labels of the product toggle.
const (
	LabelAddToCart = "Add to cart"
	LabelRemove    = "Remove"
)

// ErrPrecondition reports a page found in a state the scenario setup does not allow,
// as opposed to a failed check.
var ErrPrecondition = errors.New("precondition violated")

// ErrNoSelection is returned when products are added before any were selected.
var ErrNoSelection = errors.New("no products selected")

// PreconditionError describes a product control found with an unexpected label.
type PreconditionError struct {
	Product string
	Label   string
}

func (e *PreconditionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("product %q: no toggle control, expected %q", e.Product, LabelAddToCart)
	}
	return fmt.Sprintf("product %q: control reads %q, expected %q", e.Product, e.Label, LabelAddToCart)
}

// Is makes errors.Is(err, ErrPrecondition) true for *PreconditionError.
func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

// Site bundles the page objects of one session.
type Site struct {
	Driver   browser.Driver
	Login    *LoginPage
	Products *ProductsPage
	Cart     *CartPage
	Info     *CheckoutInfoPage
	Overview *CheckoutOverviewPage
	Complete *CheckoutCompletePage
}

// NewSite binds all page objects to driver d. Waits go through w, random choices through p.
func NewSite(d browser.Driver, w *browser.Waiter, loginURL string, p *pick.Picker) *Site {
	pg := page{d: d, w: w}
	return &Site{
		Driver:   d,
		Login:    &LoginPage{page: pg, url: loginURL},
		Products: &ProductsPage{page: pg, picker: p},
		Cart:     &CartPage{page: pg, picker: p},
		Info:     &CheckoutInfoPage{page: pg},
		Overview: &CheckoutOverviewPage{page: pg},
		Complete: &CheckoutCompletePage{page: pg},
	}
}

// page is the part shared by all page objects.
type page struct {
	d browser.Driver
	w *browser.Waiter
}

// text reads the text of the first element matching loc under scope, without waiting.
func text(scope browser.Searcher, loc locator.Locator) (string, error) {
	el, err := scope.Find(loc)
	if err != nil {
		return "", err
	}
	txt, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", loc, err)
	}
	return txt, nil
}

// texts reads the text of every element matching loc under scope, without waiting.
func texts(scope browser.Searcher, loc locator.Locator) ([]string, error) {
	els, err := scope.FindAll(loc)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(els))
	for _, el := range els {
		txt, err := el.Text()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", loc, err)
		}
		res = append(res, txt)
	}
	return res, nil
}

// click clicks the first element matching loc, without waiting.
func click(scope browser.Searcher, loc locator.Locator) error {
	el, err := scope.Find(loc)
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	return nil
}
