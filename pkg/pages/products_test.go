package pages

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/browser/mocks"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

var catalog = []string{
	"Sauce Labs Backpack", "Sauce Labs Bike Light", "Sauce Labs Bolt T-Shirt",
	"Sauce Labs Fleece Jacket", "Sauce Labs Onesie", "Test.allTheThings() T-Shirt (Red)",
}

func TestProductsPage_Snapshot(t *testing.T) {
	site := snapshotSite(t, "inventory.html")

	title, err := site.Products.Title()
	require.NoError(t, err)
	assert.Equal(t, "Products", title)

	names, err := site.Products.ProductNames()
	require.NoError(t, err)
	assert.Equal(t, catalog, names)

	prices, err := site.Products.Prices()
	require.NoError(t, err)
	assert.Equal(t, []string{"$29.99", "$9.99", "$15.99", "$49.99", "$7.99", "$15.99"}, prices)

	n, err := site.Products.BadgeCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProductsPage_SelectRandomProducts(t *testing.T) {
	site := snapshotSite(t, "inventory.html")
	assert.Empty(t, site.Products.SelectedNames())

	for range 20 {
		names, err := site.Products.SelectRandomProducts(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, names)
		assert.Subset(t, catalog, names)
		assert.Equal(t, names, site.Products.SelectedNames())
	}

	names := site.Products.SelectedNames()
	names[0] = "changed"
	assert.NotEqual(t, "changed", site.Products.SelectedNames()[0], "selection is copied")
}

func TestProductsPage_BadgeAbsent(t *testing.T) {
	site, _ := mockSite(dom{})
	n, err := site.Products.BadgeCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	site, _ = mockSite(dom{locator.Products.CartBadge: elements(node("many", nil))})
	_, err = site.Products.BadgeCount()
	require.ErrorContains(t, err, `cart badge "many"`)
}

// storefront builds a fake listing where clicking a product's add control
// swaps it for a remove control, as the real page does.
func storefront(names ...string) (dom, map[string]*mocks.ElementMock) {
	d := dom{locator.Products.AppLogo: elements(node("Swag Labs", nil))}
	buttons := map[string]*mocks.ElementMock{}
	for _, name := range names {
		card := dom{locator.Products.ItemName: elements(node(name, nil))}
		btn := node(LabelAddToCart, nil)
		btn.ClickFunc = func() error {
			delete(card, locator.AddToCart(name))
			d[locator.RemoveFromCart(name)] = elements(node(LabelRemove, nil))
			return nil
		}
		card[locator.AddToCart(name)] = elements(btn)
		buttons[name] = btn
		d[locator.Products.Item] = append(d[locator.Products.Item], node("", card))
	}
	return d, buttons
}

func TestProductsPage_AddSelectedToCart(t *testing.T) {
	d, buttons := storefront(catalog...)
	site, _ := mockSite(d)
	ctx := context.Background()

	require.ErrorIs(t, site.Products.AddSelectedToCart(ctx), ErrNoSelection)

	require.NoError(t, site.Products.WaitReady(ctx))
	selected, err := site.Products.SelectRandomProducts(ctx)
	require.NoError(t, err)
	require.NoError(t, site.Products.AddSelectedToCart(ctx))

	for name, btn := range buttons {
		if slices.Contains(selected, name) {
			assert.Len(t, btn.ClickCalls(), 1, "%s clicked once", name)
			assert.NotEmpty(t, d[locator.RemoveFromCart(name)], "%s shows remove", name)
			continue
		}
		assert.Empty(t, btn.ClickCalls(), "%s not selected", name)
	}
}

func TestProductsPage_AddSelectedToCart_NoToggle(t *testing.T) {
	d, buttons := storefront("Sauce Labs Onesie")
	buttons["Sauce Labs Onesie"].ClickFunc = func() error { return nil } // click lost
	site, _ := mockSite(d)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := site.Products.SelectRandomProducts(ctx)
	require.NoError(t, err)
	err = site.Products.AddSelectedToCart(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, browser.IsTimeout(err))
	assert.Contains(t, err.Error(), `add "Sauce Labs Onesie" to cart`)
}

func TestProductsPage_VerifyToggleBehavior(t *testing.T) {
	t.Run("add turns into remove", func(t *testing.T) {
		d, _ := storefront(catalog...)
		site, _ := mockSite(d)

		res, err := site.Products.VerifyToggleBehavior(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, res)
		for _, r := range res {
			assert.Contains(t, catalog, r.Product)
			assert.Equal(t, LabelAddToCart, r.Initial)
			assert.Equal(t, LabelRemove, r.Final)
		}
	})

	t.Run("unexpected label", func(t *testing.T) {
		d, buttons := storefront("Sauce Labs Onesie")
		buttons["Sauce Labs Onesie"].TextFunc = func() (string, error) { return "Sold out", nil }
		site, _ := mockSite(d)

		_, err := site.Products.VerifyToggleBehavior(context.Background())
		require.ErrorIs(t, err, ErrPrecondition)
		var pe *PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "Sauce Labs Onesie", pe.Product)
		assert.Equal(t, "Sold out", pe.Label)
		assert.Empty(t, buttons["Sauce Labs Onesie"].ClickCalls())
	})

	t.Run("already in cart", func(t *testing.T) {
		name := "Sauce Labs Backpack"
		card := dom{
			locator.Products.ItemName:    elements(node(name, nil)),
			locator.RemoveFromCart(name): elements(node(LabelRemove, nil)),
		}
		site, _ := mockSite(dom{locator.Products.Item: elements(node("", card))})

		_, err := site.Products.VerifyToggleBehavior(context.Background())
		var pe *PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, PreconditionError{Product: name, Label: LabelRemove}, *pe)
		assert.Contains(t, err.Error(), `control reads "Remove", expected "Add to cart"`)
	})

	t.Run("remove label read from the page", func(t *testing.T) {
		name := "Sauce Labs Fleece Jacket"
		card := dom{
			locator.Products.ItemName:    elements(node(name, nil)),
			locator.RemoveFromCart(name): elements(node("Remove from cart", nil)),
		}
		site, _ := mockSite(dom{locator.Products.Item: elements(node("", card))})

		_, err := site.Products.VerifyToggleBehavior(context.Background())
		var pe *PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "Remove from cart", pe.Label)
	})

	t.Run("no toggle control", func(t *testing.T) {
		name := "Sauce Labs Bolt T-Shirt"
		card := dom{locator.Products.ItemName: elements(node(name, nil))}
		site, _ := mockSite(dom{locator.Products.Item: elements(node("", card))})

		_, err := site.Products.VerifyToggleBehavior(context.Background())
		require.ErrorIs(t, err, ErrPrecondition)
		var pe *PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, PreconditionError{Product: name}, *pe)
		assert.EqualError(t, err, `product "Sauce Labs Bolt T-Shirt": no toggle control, expected "Add to cart"`)
	})
}

func TestProductsPage_OpenCart(t *testing.T) {
	link := node("", nil)
	site, _ := mockSite(dom{locator.Products.CartLink: elements(link)})
	require.NoError(t, site.Products.OpenCart())
	assert.Len(t, link.ClickCalls(), 1)
}
