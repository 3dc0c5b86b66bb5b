package pages

import (
	"context"
	"fmt"

	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// CheckoutCompletePage is the order confirmation.
type CheckoutCompletePage struct {
	page
}

// WaitReady waits for the confirmation header.
func (p *CheckoutCompletePage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.CheckoutComplete.ThankYou); err != nil {
		return fmt.Errorf("checkout complete page: %w", err)
	}
	return nil
}

// Title returns the page heading, "Checkout: Complete!".
func (p *CheckoutCompletePage) Title() (string, error) {
	return text(p.d, locator.CheckoutComplete.Title)
}

// ThankYouMessage returns the confirmation header.
func (p *CheckoutCompletePage) ThankYouMessage() (string, error) {
	return text(p.d, locator.CheckoutComplete.ThankYou)
}

// ReturnHome goes back to the product listing.
func (p *CheckoutCompletePage) ReturnHome() error {
	return click(p.d, locator.CheckoutComplete.BackHome)
}
