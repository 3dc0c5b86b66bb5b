package pages

import (
	"context"
	"fmt"
	"slices"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
)

// CartPage lists the products added to the cart.
type CartPage struct {
	page
	picker *pick.Picker
}

// WaitReady waits for the "Your Cart" heading.
func (p *CartPage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.Cart.Title); err != nil {
		return fmt.Errorf("cart page: %w", err)
	}
	return nil
}

// Title returns the page heading.
func (p *CartPage) Title() (string, error) {
	return text(p.d, locator.Cart.Title)
}

// ProductNames returns the names of the products in the cart, in display order.
func (p *CartPage) ProductNames() ([]string, error) {
	return texts(p.d, locator.Cart.ItemName)
}

// Quantities returns the quantity label of every cart line.
func (p *CartPage) Quantities() ([]string, error) {
	return texts(p.d, locator.Cart.ItemQuantity)
}

// RemoveProduct removes the named product, or a random one when name is empty, and waits until
// its line is gone. It reports false without error when the cart is empty or does not hold the
// product. Waits that run out are returned as errors.
func (p *CartPage) RemoveProduct(ctx context.Context, name string) (bool, error) {
	names, err := p.ProductNames()
	if err != nil {
		return false, err
	}
	if len(names) == 0 {
		return false, nil
	}
	if name == "" {
		name, _ = pick.One(p.picker, names)
	}
	if !slices.Contains(names, name) {
		return false, nil
	}

	btn, err := p.w.Clickable(ctx, locator.RemoveFromCart(name), browser.WithTimeout(removeReadyTimeout))
	if err != nil {
		return false, fmt.Errorf("remove %q: %w", name, err)
	}
	if err := btn.Click(); err != nil {
		return false, fmt.Errorf("remove %q: click: %w", name, err)
	}
	if err := p.w.Invisible(ctx, locator.CartItemNamed(name), browser.WithTimeout(removeGoneTimeout)); err != nil {
		return false, fmt.Errorf("remove %q: %w", name, err)
	}
	return true, nil
}

// Checkout clicks the checkout button.
func (p *CartPage) Checkout() error {
	return click(p.d, locator.Cart.Checkout)
}
