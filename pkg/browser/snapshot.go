package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// Snapshot is a read-only Driver over a static HTML document. It resolves id, css and class
// locators, rejects xpath and refuses every action that would change the page.
// Used to check page objects against saved copies of the storefront markup.
type Snapshot struct {
	doc *goquery.Document
	url string
}

// NewSnapshot parses an HTML document. url is what URL reports.
func NewSnapshot(r io.Reader, url string) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Snapshot{doc: doc, url: url}, nil
}

// Navigate is not supported by a snapshot.
func (s *Snapshot) Navigate(url string) error {
	return fmt.Errorf("navigate to %s: %w", url, ErrReadOnly)
}

// Title returns the text of the document's title element.
func (s *Snapshot) Title() (string, error) {
	return strings.TrimSpace(s.doc.Find("title").First().Text()), nil
}

// URL returns the url given to NewSnapshot.
func (s *Snapshot) URL() string { return s.url }

// Screenshot is not supported by a snapshot.
func (s *Snapshot) Screenshot() ([]byte, error) {
	return nil, fmt.Errorf("screenshot: %w", ErrReadOnly)
}

// Find returns the first node matching loc.
func (s *Snapshot) Find(loc locator.Locator) (Element, error) {
	return first(loc)(s.FindAll(loc))
}

// FindAll returns all nodes matching loc.
func (s *Snapshot) FindAll(loc locator.Locator) ([]Element, error) {
	return findIn(s.doc.Selection, loc)
}

// node is a single matched node of a snapshot.
type node struct {
	sel *goquery.Selection
}

func findIn(scope *goquery.Selection, loc locator.Locator) ([]Element, error) {
	css, ok := loc.CSSSelector()
	if !ok {
		return nil, fmt.Errorf("%s: %w", loc, ErrUnsupportedStrategy)
	}
	var res []Element
	scope.Find(css).Each(func(_ int, sel *goquery.Selection) {
		res = append(res, &node{sel: sel})
	})
	return res, nil
}

func (n *node) Find(loc locator.Locator) (Element, error) {
	return first(loc)(n.FindAll(loc))
}

func (n *node) FindAll(loc locator.Locator) ([]Element, error) {
	return findIn(n.sel, loc)
}

// Text returns the node text with whitespace runs collapsed, close to what a browser renders.
func (n *node) Text() (string, error) {
	return strings.Join(strings.Fields(n.sel.Text()), " "), nil
}

func (n *node) Click() error { return fmt.Errorf("click: %w", ErrReadOnly) }
func (n *node) Type(string) error { return fmt.Errorf("type: %w", ErrReadOnly) }
func (n *node) Clear() error { return fmt.Errorf("clear: %w", ErrReadOnly) }

// Visible is false when the node or any ancestor carries the hidden attribute or an inline display:none.
func (n *node) Visible() (bool, error) {
	for sel := n.sel; sel.Length() > 0; sel = sel.Parent() {
		if _, hidden := sel.Attr("hidden"); hidden {
			return false, nil
		}
		style, _ := sel.Attr("style")
		if strings.Contains(strings.ReplaceAll(strings.ToLower(style), " ", ""), "display:none") {
			return false, nil
		}
	}
	return true, nil
}

// Enabled is false for nodes carrying the disabled attribute.
func (n *node) Enabled() (bool, error) {
	_, disabled := n.sel.Attr("disabled")
	return !disabled, nil
}
