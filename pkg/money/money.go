// Package money parses and adds the dollar amounts shown by the storefront.
// Amounts are whole cents so that sums compare exactly.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount is returned for text that is not a dollar amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrOverflow is returned when a sum does not fit into an Amount.
	ErrOverflow = errors.New("amount overflow")
)

// maxDollars is the largest whole-dollar part that still fits with any two-digit cents.
const maxDollars = (math.MaxInt64 - 99) / 100

// Amount is a non-negative sum of money in cents.
type Amount int64

// Cents makes an amount from a number of cents.
func Cents(c int64) Amount { return Amount(c) }

// Parse reads "$29.99", "29.99", "$7" or "$1,049.50". At most two fractional digits are accepted.
func Parse(s string) (Amount, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !digits(whole) || (hasFrac && (len(frac) == 0 || len(frac) > 2 || !digits(frac))) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars > maxDollars {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, raw)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64) // two digits, checked above
	return Amount(dollars*100 + cents), nil
}

// ParseLabeled parses text such as "Item total: $39.98" whose amount follows label.
func ParseLabeled(label, s string) (Amount, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), label)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no %q prefix", ErrInvalidAmount, s, label)
	}
	return Parse(rest)
}

// Sum adds amounts, zero for none.
func Sum(amounts ...Amount) (Amount, error) {
	var total Amount
	for _, a := range amounts {
		next, err := total.Add(a)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// Add returns a+b, or ErrOverflow when the result exceeds the largest Amount.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > math.MaxInt64-a {
		return 0, fmt.Errorf("%w: %s + %s", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Cents returns the amount in cents.
func (a Amount) Cents() int64 { return int64(a) }

// String formats as "$12.34".
func (a Amount) String() string {
	return fmt.Sprintf("$%d.%02d", int64(a)/100, int64(a)%100)
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
