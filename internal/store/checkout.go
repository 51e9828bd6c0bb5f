package store

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyCart is returned when an order is placed over an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// Checkout simulates order processing: there is no payment or inventory
// backend, so placing an order is a bounded delay followed by clearing the
// cart. Shipping details are validated at the handler layer.
type Checkout struct {
	Cart     *CartStore
	notifier Notifier
	delay    time.Duration
}

func NewCheckout(cart *CartStore, notifier Notifier, delay time.Duration) *Checkout {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Checkout{Cart: cart, notifier: notifier, delay: delay}
}

// Place runs the simulated processing delay, then clears the cart. It
// returns early (cart untouched) when ctx is cancelled mid-delay.
func (c *Checkout) Place(ctx context.Context) error {
	if len(c.Cart.Items()) == 0 {
		return ErrEmptyCart
	}
	if err := wait(ctx, c.delay); err != nil {
		return err
	}
	c.Cart.ClearCart()
	c.notifier.Notify(Notification{
		Title:       "Order placed successfully!",
		Description: "Thank you for your purchase. Your order is being processed.",
	})
	return nil
}

// Totals derives the order summary from the cart subtotal: 8% tax and free
// shipping over $100.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

func (c *Checkout) Totals() Totals {
	sub := c.Cart.Subtotal()
	t := Totals{Subtotal: sub, Tax: sub * 0.08}
	if sub <= 100 {
		t.Shipping = 15
	}
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}
