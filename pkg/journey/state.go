package journey

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// State is the storefront screen a session is on.
type State int

// screens in purchase order.
const (
	LoggedOut State = iota
	ProductListing
	Cart
	CheckoutInfo
	CheckoutOverview
	CheckoutComplete
)

var stateNames = map[State]string{
	LoggedOut:        "logged-out",
	ProductListing:   "product-listing",
	Cart:             "cart",
	CheckoutInfo:     "checkout-info",
	CheckoutOverview: "checkout-overview",
	CheckoutComplete: "checkout-complete",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// transitions lists the screens reachable from each screen.
var transitions = map[State][]State{
	LoggedOut:        {ProductListing},
	ProductListing:   {Cart},
	Cart:             {CheckoutInfo},
	CheckoutInfo:     {CheckoutOverview},
	CheckoutOverview: {CheckoutComplete},
	CheckoutComplete: {ProductListing},
}

// CanTransition reports whether the purchase flow allows moving from one screen to another.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

// ErrInvalidTransition is returned when a step skips or repeats part of the flow.
var ErrInvalidTransition = errors.New("invalid transition")

// Tracker stores the current screen of one session in a thread-safe way.
// The zero value starts at LoggedOut.
type Tracker struct {
	mu       sync.RWMutex
	state    State
	onChange func(old, cur State)
}

// OnChange registers a callback fired after every accepted transition.
// only one callback is supported; subsequent calls replace the previous one.
func (t *Tracker) OnChange(fn func(old, cur State)) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

// Advance moves to the given screen, or returns ErrInvalidTransition leaving the state unchanged.
func (t *Tracker) Advance(to State) error {
	t.mu.Lock()
	old := t.state
	if !CanTransition(old, to) {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, old, to)
	}
	t.state = to
	cb := t.onChange
	t.mu.Unlock()

	if cb != nil {
		cb(old, to)
	}
	return nil
}

// Reset goes back to LoggedOut without firing the callback, used when a new session starts.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.state = LoggedOut
	t.mu.Unlock()
}

// Get returns the current screen.
func (t *Tracker) Get() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}
