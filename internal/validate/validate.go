package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q sanitizes a search query: trims and truncates to a sane length.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// Qty parses a quantity and clamps it to [1, max]. max <= 0 means no upper
// bound beyond an abuse guard of 50 (the stock clamp is a view concern; the
// cart store itself never caps).
func Qty(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		n = 1
	}
	if max <= 0 || max > 50 {
		max = 50
	}
	if n > max {
		n = max
	}
	return n
}

// ID validates a simple resource identifier (product/category ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Price parses a price bound, falling back to def on garbage or negatives.
func Price(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// CheckoutForm carries the shipping/payment fields of the checkout page.
type CheckoutForm struct {
	FullName      string
	Email         string
	Address       string
	City          string
	State         string
	Zip           string
	Country       string
	PaymentMethod string // credit | paypal
	Notes         string
}

// Check returns the first human-readable problem with the form, or ok.
func (f CheckoutForm) Check() (string, bool) {
	if len(strings.TrimSpace(f.FullName)) < 2 {
		return "Full name is required", false
	}
	if _, ok := Email(f.Email); !ok {
		return "Please enter a valid email address", false
	}
	if len(strings.TrimSpace(f.Address)) < 5 {
		return "Address is required", false
	}
	if len(strings.TrimSpace(f.City)) < 2 {
		return "City is required", false
	}
	if len(strings.TrimSpace(f.State)) < 2 {
		return "State is required", false
	}
	if len(strings.TrimSpace(f.Zip)) < 3 {
		return "Postal/ZIP code is required", false
	}
	if len(strings.TrimSpace(f.Country)) < 2 {
		return "Country is required", false
	}
	if f.PaymentMethod != "credit" && f.PaymentMethod != "paypal" {
		return "Please choose a payment method", false
	}
	return "", true
}
