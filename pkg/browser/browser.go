// Package browser provides the browser session used by page objects: a small Driver/Element
// abstraction, its playwright implementation, a read-only HTML snapshot driver and the
// polling Waiter that synchronizes with asynchronous rendering.
package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

//go:generate moq -out mocks/driver.go -pkg mocks -skip-ensure -fmt goimports . Driver
//go:generate moq -out mocks/element.go -pkg mocks -skip-ensure -fmt goimports . Element

// Searcher resolves locators immediately, without waiting.
type Searcher interface {
	// Find returns the first element matching loc or a *NotFoundError.
	Find(loc locator.Locator) (Element, error)
	// FindAll returns every element matching loc, an empty slice when nothing matches.
	FindAll(loc locator.Locator) ([]Element, error)
}

// Driver is a browser session bound to one page.
type Driver interface {
	Searcher
	Navigate(url string) error
	Title() (string, error)
	URL() string
	Screenshot() ([]byte, error)
}

// Element is a handle to a single DOM node. Lookups through an Element are scoped to it.
type Element interface {
	Searcher
	Text() (string, error)
	Click() error
	Type(text string) error
	Clear() error
	Visible() (bool, error)
	Enabled() (bool, error)
}

var (
	// ErrElementNotFound reports an immediate lookup that matched nothing.
	ErrElementNotFound = errors.New("element not found")
	// ErrTimeout reports a wait that ran out of its time budget.
	ErrTimeout = errors.New("wait timed out")
	// ErrReadOnly is returned by drivers that cannot change page state.
	ErrReadOnly = errors.New("driver is read-only")
	// ErrUnsupportedStrategy is returned when a driver cannot resolve a locator strategy.
	ErrUnsupportedStrategy = errors.New("unsupported locator strategy")
)

// NotFoundError carries the locator of a failed immediate lookup.
type NotFoundError struct {
	Locator locator.Locator
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element not found: %s", e.Locator)
}

// Is makes errors.Is(err, ErrElementNotFound) true for *NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrElementNotFound }

// TimeoutError describes a wait that never saw its condition hold.
type TimeoutError struct {
	Locator   locator.Locator
	Condition Condition
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %s to be %s", e.Timeout, e.Locator, e.Condition)
}

// Is makes errors.Is(err, ErrTimeout) true for *TimeoutError.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// IsNotFound reports whether err is an immediate lookup miss.
func IsNotFound(err error) bool { return errors.Is(err, ErrElementNotFound) }

// IsTimeout reports whether err is an exhausted wait.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }
