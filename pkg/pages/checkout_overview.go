package pages

import (
	"context"
	"fmt"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/money"
)

// price labels of the order summary.
const (
	subtotalLabel = "Item total: "
	taxLabel      = "Tax: "
	totalLabel    = "Total: "
)

// CheckoutOverviewPage is the order review screen.
type CheckoutOverviewPage struct {
	page
}

// LineItem is one order line as displayed, read fresh on every call.
type LineItem struct {
	Quantity    string
	Name        string
	Description string
	Price       string
}

// WaitReady waits for the order summary.
func (p *CheckoutOverviewPage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.CheckoutOverview.Subtotal, browser.WithTimeout(checkoutTimeout)); err != nil {
		return fmt.Errorf("checkout overview page: %w", err)
	}
	return nil
}

// Title returns the page heading.
func (p *CheckoutOverviewPage) Title() (string, error) {
	return text(p.d, locator.CheckoutOverview.Title)
}

// Items returns the order lines.
func (p *CheckoutOverviewPage) Items() ([]LineItem, error) {
	rows, err := p.d.FindAll(locator.CheckoutOverview.LineItem)
	if err != nil {
		return nil, err
	}

	res := make([]LineItem, 0, len(rows))
	for i, row := range rows {
		var li LineItem
		for _, f := range []struct {
			dst *string
			loc locator.Locator
		}{
			{dst: &li.Quantity, loc: locator.CheckoutOverview.ItemQuantity},
			{dst: &li.Name, loc: locator.CheckoutOverview.ItemName},
			{dst: &li.Description, loc: locator.CheckoutOverview.ItemDescription},
			{dst: &li.Price, loc: locator.CheckoutOverview.ItemPrice},
		} {
			if *f.dst, err = text(row, f.loc); err != nil {
				return nil, fmt.Errorf("order line %d: %w", i+1, err)
			}
		}
		res = append(res, li)
	}
	return res, nil
}

// ItemNames returns the product name of every order line.
func (p *CheckoutOverviewPage) ItemNames() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.Name)
	}
	return res, nil
}

// ItemPrices returns the price label of every order line.
func (p *CheckoutOverviewPage) ItemPrices() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.Price)
	}
	return res, nil
}

// ItemsTotal adds up the line prices, independently of the displayed subtotal.
func (p *CheckoutOverviewPage) ItemsTotal() (money.Amount, error) {
	prices, err := p.ItemPrices()
	if err != nil {
		return 0, err
	}
	amounts := make([]money.Amount, 0, len(prices))
	for _, s := range prices {
		a, err := money.Parse(s)
		if err != nil {
			return 0, err
		}
		amounts = append(amounts, a)
	}
	total, err := money.Sum(amounts...)
	if err != nil {
		return 0, fmt.Errorf("items total: %w", err)
	}
	return total, nil
}

// Subtotal returns the displayed "Item total".
func (p *CheckoutOverviewPage) Subtotal() (money.Amount, error) {
	return p.amount(locator.CheckoutOverview.Subtotal, subtotalLabel)
}

// Tax returns the displayed tax.
func (p *CheckoutOverviewPage) Tax() (money.Amount, error) {
	return p.amount(locator.CheckoutOverview.Tax, taxLabel)
}

// Total returns the displayed order total.
func (p *CheckoutOverviewPage) Total() (money.Amount, error) {
	return p.amount(locator.CheckoutOverview.Total, totalLabel)
}

// Finish places the order.
func (p *CheckoutOverviewPage) Finish() error {
	return click(p.d, locator.CheckoutOverview.Finish)
}

func (p *CheckoutOverviewPage) amount(loc locator.Locator, label string) (money.Amount, error) {
	s, err := text(p.d, loc)
	if err != nil {
		return 0, err
	}
	return money.ParseLabeled(label, s)
}
