// Package locator defines how page elements are found: a strategy plus a selector string,
// and the per-page tables of named locators for the Swag Labs storefront.
package locator

import (
	"fmt"
	"strings"
)

// Strategy is the lookup mechanism used to resolve a selector.
type Strategy string

// Strategy constants supported by every driver.
const (
	ByID        Strategy = "id"
	ByCSS       Strategy = "css"
	ByXPath     Strategy = "xpath"
	ByClassName Strategy = "class"
)

// Locator identifies zero or more DOM nodes. It is never validated up front,
// a broken selector fails only when used.
type Locator struct {
	Strategy Strategy
	Selector string
}

// ID returns a locator matching the element with the given id attribute.
func ID(id string) Locator { return Locator{Strategy: ByID, Selector: id} }

// CSS returns a locator for a css selector.
func CSS(sel string) Locator { return Locator{Strategy: ByCSS, Selector: sel} }

// XPath returns a locator for an xpath expression.
func XPath(expr string) Locator { return Locator{Strategy: ByXPath, Selector: expr} }

// ClassName returns a locator matching elements carrying the given class token.
func ClassName(name string) Locator { return Locator{Strategy: ByClassName, Selector: name} }

// String returns "strategy=selector", used in error messages and logs.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Selector)
}

// CSSSelector renders the locator as a css selector. xpath has no css form, ok is false for it.
func (l Locator) CSSSelector() (sel string, ok bool) {
	switch l.Strategy {
	case ByID:
		return fmt.Sprintf("[id=%q]", l.Selector), true
	case ByCSS:
		return l.Selector, true
	case ByClassName:
		return "." + l.Selector, true
	default:
		return "", false
	}
}

// Playwright renders the locator in playwright selector-engine syntax.
func (l Locator) Playwright() string {
	if l.Strategy == ByXPath {
		return "xpath=" + l.Selector
	}
	if sel, ok := l.CSSSelector(); ok {
		return "css=" + sel
	}
	return l.Selector
}

// Slug converts a product display name into the identifier fragment the storefront uses
// for its per-product controls: lower-cased, whitespace runs replaced with a single hyphen.
// "Sauce Labs Bolt T-Shirt" becomes "sauce-labs-bolt-t-shirt".
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// XPathLiteral quotes s as an xpath string literal. xpath 1.0 has no escape sequences,
// so a value holding both quote kinds is assembled with concat().
func XPathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if p != "" {
			quoted = append(quoted, "'"+p+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
