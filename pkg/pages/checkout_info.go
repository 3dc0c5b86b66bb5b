package pages

import (
	"context"
	"fmt"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// CheckoutInfoPage is the "Your Information" form.
type CheckoutInfoPage struct {
	page
}

// WaitReady waits for the form heading.
func (p *CheckoutInfoPage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.CheckoutInfo.Title, browser.WithTimeout(checkoutTimeout)); err != nil {
		return fmt.Errorf("checkout information page: %w", err)
	}
	return nil
}

// Title returns the page heading.
func (p *CheckoutInfoPage) Title() (string, error) {
	return text(p.d, locator.CheckoutInfo.Title)
}

// Fill types the given values. Blank values are left out so the form's own validation reports them.
func (p *CheckoutInfoPage) Fill(first, last, zip string) error {
	fields := []struct {
		loc locator.Locator
		val string
	}{
		{loc: locator.CheckoutInfo.FirstName, val: first},
		{loc: locator.CheckoutInfo.LastName, val: last},
		{loc: locator.CheckoutInfo.ZipCode, val: zip},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		el, err := p.d.Find(f.loc)
		if err != nil {
			return err
		}
		if err := el.Type(f.val); err != nil {
			return fmt.Errorf("type into %s: %w", f.loc, err)
		}
	}
	return nil
}

// Continue submits the form.
func (p *CheckoutInfoPage) Continue() error {
	return click(p.d, locator.CheckoutInfo.Continue)
}

// ErrorMessage waits for the validation error and returns its text.
func (p *CheckoutInfoPage) ErrorMessage(ctx context.Context) (string, error) {
	el, err := p.w.Present(ctx, locator.CheckoutInfo.Error, browser.WithTimeout(checkoutTimeout))
	if err != nil {
		return "", fmt.Errorf("checkout error message: %w", err)
	}
	return el.Text()
}
