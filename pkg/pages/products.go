package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
)

// ProductsPage is the inventory listing. It remembers the products picked by
// SelectRandomProducts until the next selection.
type ProductsPage struct {
	page
	picker *pick.Picker

	selected []browser.Element
	names    []string
}

// ToggleResult records one product control before and after it was clicked.
type ToggleResult struct {
	Product string
	Initial string
	Final   string
}

// WaitReady waits for the app header and at least one product card.
func (p *ProductsPage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.Products.AppLogo); err != nil {
		return fmt.Errorf("products page: %w", err)
	}
	if _, err := p.w.PresentAll(ctx, locator.Products.Item); err != nil {
		return fmt.Errorf("products page: %w", err)
	}
	return nil
}

// Title returns the page heading, "Products" on the inventory screen.
func (p *ProductsPage) Title() (string, error) {
	return text(p.d, locator.Products.Title)
}

// SelectRandomProducts picks a random non-empty subset of the listed products and remembers it.
// It returns the display names of the picked products.
func (p *ProductsPage) SelectRandomProducts(ctx context.Context) ([]string, error) {
	items, err := p.w.PresentAll(ctx, locator.Products.Item)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	chosen := pick.Subset(p.picker, items)
	names := make([]string, 0, len(chosen))
	for _, item := range chosen {
		name, err := text(item, locator.Products.ItemName)
		if err != nil {
			return nil, fmt.Errorf("product name: %w", err)
		}
		names = append(names, name)
	}

	p.selected, p.names = chosen, names
	return p.SelectedNames(), nil
}

// SelectedNames returns the names picked by the last SelectRandomProducts call.
func (p *ProductsPage) SelectedNames() []string {
	return append([]string(nil), p.names...)
}

// ProductNames returns the names of all listed products in page order.
func (p *ProductsPage) ProductNames() ([]string, error) {
	return texts(p.d, locator.Products.ItemName)
}

// Prices returns the price label of every listed product.
func (p *ProductsPage) Prices() ([]string, error) {
	return texts(p.d, locator.Products.ItemPrice)
}

// AddSelectedToCart clicks the add control of every selected product and waits for that
// product's control to turn into a remove control before moving on.
func (p *ProductsPage) AddSelectedToCart(ctx context.Context) error {
	if len(p.selected) == 0 {
		return ErrNoSelection
	}
	for i, item := range p.selected {
		if err := p.toggle(ctx, item, p.names[i]); err != nil {
			return err
		}
	}
	return nil
}

// VerifyToggleBehavior samples products independently of the remembered selection, checks that
// each control reads "Add to cart", clicks it and waits for it to read "Remove".
// A control with any other initial label is a *PreconditionError.
func (p *ProductsPage) VerifyToggleBehavior(ctx context.Context) ([]ToggleResult, error) {
	items, err := p.w.PresentAll(ctx, locator.Products.Item)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var res []ToggleResult
	for _, item := range pick.Subset(p.picker, items) {
		name, err := text(item, locator.Products.ItemName)
		if err != nil {
			return res, fmt.Errorf("product name: %w", err)
		}
		initial, err := text(item, locator.AddToCart(name))
		if browser.IsNotFound(err) {
			// no add control, report whatever the product shows instead
			shown, rerr := text(item, locator.RemoveFromCart(name))
			if rerr != nil && !browser.IsNotFound(rerr) {
				return res, rerr
			}
			return res, &PreconditionError{Product: name, Label: shown}
		}
		if err != nil {
			return res, err
		}
		if initial != LabelAddToCart {
			return res, &PreconditionError{Product: name, Label: initial}
		}

		if err := p.toggle(ctx, item, name); err != nil {
			return res, err
		}
		final, err := text(p.d, locator.RemoveFromCart(name))
		if err != nil {
			return res, err
		}
		res = append(res, ToggleResult{Product: name, Initial: initial, Final: final})
	}
	return res, nil
}

// toggle clicks the add control of the named product inside item and waits for its remove control.
func (p *ProductsPage) toggle(ctx context.Context, item browser.Element, name string) error {
	if err := click(item, locator.AddToCart(name)); err != nil {
		return fmt.Errorf("add %q to cart: %w", name, err)
	}
	if _, err := p.w.Present(ctx, locator.RemoveFromCart(name), browser.WithTimeout(toggleTimeout)); err != nil {
		return fmt.Errorf("add %q to cart: %w", name, err)
	}
	return nil
}

// BadgeCount returns the number on the cart badge, 0 when the badge is not shown.
func (p *ProductsPage) BadgeCount() (int, error) {
	txt, err := text(p.d, locator.Products.CartBadge)
	if browser.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(txt)
	if err != nil {
		return 0, fmt.Errorf("cart badge %q: %w", txt, err)
	}
	return n, nil
}

// OpenCart clicks the cart icon.
func (p *ProductsPage) OpenCart() error {
	return click(p.d, locator.Products.CartLink)
}
