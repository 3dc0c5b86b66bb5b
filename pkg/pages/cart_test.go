package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

func TestCartPage_Snapshot(t *testing.T) {
	site := snapshotSite(t, "cart.html")

	names, err := site.Cart.ProductNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sauce Labs Backpack", "Sauce Labs Onesie"}, names)

	again, err := site.Cart.ProductNames()
	require.NoError(t, err)
	assert.Equal(t, names, again, "reads are stable")

	qty, err := site.Cart.Quantities()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, qty)
}

// cartOf builds a fake cart where clicking a product's remove control drops its line.
func cartOf(names ...string) dom {
	d := dom{}
	for _, name := range names {
		line := node(name, nil)
		btn := node(LabelRemove, nil)
		btn.ClickFunc = func() error {
			delete(d, locator.CartItemNamed(name))
			delete(d, locator.RemoveFromCart(name))
			kept := d[locator.Cart.ItemName][:0:0]
			for _, el := range d[locator.Cart.ItemName] {
				if el != browser.Element(line) {
					kept = append(kept, el)
				}
			}
			d[locator.Cart.ItemName] = kept
			return nil
		}
		d[locator.Cart.ItemName] = append(d[locator.Cart.ItemName], line)
		d[locator.CartItemNamed(name)] = elements(line)
		d[locator.RemoveFromCart(name)] = elements(btn)
	}
	return d
}

func TestCartPage_RemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("named product", func(t *testing.T) {
		site, _ := mockSite(cartOf("Sauce Labs Backpack", "Sauce Labs Onesie", "Sauce Labs Bike Light"))

		ok, err := site.Cart.RemoveProduct(ctx, "Sauce Labs Onesie")
		require.NoError(t, err)
		assert.True(t, ok)

		names, err := site.Cart.ProductNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"Sauce Labs Backpack", "Sauce Labs Bike Light"}, names)
	})

	t.Run("random product", func(t *testing.T) {
		site, _ := mockSite(cartOf("Sauce Labs Backpack", "Sauce Labs Onesie"))

		ok, err := site.Cart.RemoveProduct(ctx, "")
		require.NoError(t, err)
		assert.True(t, ok)

		names, err := site.Cart.ProductNames()
		require.NoError(t, err)
		assert.Len(t, names, 1)
	})

	t.Run("empty cart", func(t *testing.T) {
		site, _ := mockSite(dom{})
		ok, err := site.Cart.RemoveProduct(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("product not in cart", func(t *testing.T) {
		d := cartOf("Sauce Labs Backpack")
		site, _ := mockSite(d)
		ok, err := site.Cart.RemoveProduct(ctx, "Sauce Labs Fleece Jacket")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Len(t, d[locator.Cart.ItemName], 1)
	})

	t.Run("line never disappears", func(t *testing.T) {
		d := cartOf("Sauce Labs Backpack")
		d[locator.RemoveFromCart("Sauce Labs Backpack")] = elements(node(LabelRemove, nil))
		site, _ := mockSite(d)

		wctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		ok, err := site.Cart.RemoveProduct(wctx, "Sauce Labs Backpack")
		require.Error(t, err, "waits are errors, not a false result")
		assert.False(t, ok)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestCartPage_Checkout(t *testing.T) {
	btn := node("Checkout", nil)
	site, _ := mockSite(dom{
		locator.Cart.Title:    elements(node("Your Cart", nil)),
		locator.Cart.Checkout: elements(btn),
	})

	require.NoError(t, site.Cart.WaitReady(context.Background()))
	title, err := site.Cart.Title()
	require.NoError(t, err)
	assert.Equal(t, "Your Cart", title)

	require.NoError(t, site.Cart.Checkout())
	assert.Len(t, btn.ClickCalls(), 1)
}
