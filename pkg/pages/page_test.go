package pages

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/browser/mocks"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
	"github.com/AndresValenciaC/swagcheck/pkg/pick"
)

const loginURL = "https://www.saucedemo.com/"

// snapshotSite binds a site to a saved page from testdata.
func snapshotSite(t *testing.T, fixture string) *Site {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", fixture))
	require.NoError(t, err)
	defer f.Close()

	s, err := browser.NewSnapshot(f, loginURL+fixture)
	require.NoError(t, err)
	return NewSite(s, browser.NewWaiter(s, 50*time.Millisecond, 5*time.Millisecond), loginURL, pick.New(1))
}

// dom is a mutable fake document keyed by locator, clicks in tests rewrite it.
type dom map[locator.Locator][]browser.Element

func (d dom) find(l locator.Locator) (browser.Element, error) {
	if els := d[l]; len(els) > 0 {
		return els[0], nil
	}
	return nil, &browser.NotFoundError{Locator: l}
}

func (d dom) findAll(l locator.Locator) ([]browser.Element, error) {
	return d[l], nil
}

func (d dom) driver() *mocks.DriverMock {
	return &mocks.DriverMock{
		FindFunc:     d.find,
		FindAllFunc:  d.findAll,
		NavigateFunc: func(string) error { return nil },
	}
}

// node makes a visible, enabled fake element with the given text and children.
func node(txt string, children dom) *mocks.ElementMock {
	if children == nil {
		children = dom{}
	}
	return &mocks.ElementMock{
		TextFunc:    func() (string, error) { return txt, nil },
		VisibleFunc: func() (bool, error) { return true, nil },
		EnabledFunc: func() (bool, error) { return true, nil },
		FindFunc:    children.find,
		FindAllFunc: children.findAll,
		ClickFunc:   func() error { return nil },
		ClearFunc:   func() error { return nil },
		TypeFunc:    func(string) error { return nil },
	}
}

// mockSite binds a site to a fake document with a short wait budget.
func mockSite(d dom) (*Site, *mocks.DriverMock) {
	drv := d.driver()
	return NewSite(drv, browser.NewWaiter(drv, 100*time.Millisecond, 2*time.Millisecond), loginURL, pick.New(7)), drv
}

func elements(els ...*mocks.ElementMock) []browser.Element {
	res := make([]browser.Element, 0, len(els))
	for _, e := range els {
		res = append(res, e)
	}
	return res
}
