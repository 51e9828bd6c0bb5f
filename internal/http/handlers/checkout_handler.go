package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopwave/internal/log"
	"shopwave/internal/store"
	"shopwave/internal/validate"
)

type CheckoutHandler struct {
	Cart     *store.CartStore
	Auth     *store.AuthStore
	Checkout *store.Checkout
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	if len(h.Cart.Items()) == 0 {
		return c.Redirect("/products")
	}
	return render(c, "checkout", fiber.Map{
		"Items":  h.Cart.Items(),
		"Totals": h.Checkout.Totals(),
		"Err":    "",
	})
}

func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	form := validate.CheckoutForm{
		FullName:      c.FormValue("fullName"),
		Email:         c.FormValue("email"),
		Address:       c.FormValue("address"),
		City:          c.FormValue("city"),
		State:         c.FormValue("state"),
		Zip:           c.FormValue("zip"),
		Country:       c.FormValue("country"),
		PaymentMethod: c.FormValue("paymentMethod"),
		Notes:         c.FormValue("notes"),
	}
	if msg, ok := form.Check(); !ok {
		return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
			"Items":  h.Cart.Items(),
			"Totals": h.Checkout.Totals(),
			"Err":    msg,
		})
	}

	if err := h.Checkout.Place(c.Context()); err != nil {
		if err == store.ErrEmptyCart {
			return c.Redirect("/products")
		}
		applog.Warn(c, "checkout.cancelled", nil)
		return nil
	}
	applog.Audit(c, "checkout.placed", map[string]any{"email": form.Email})
	return c.Redirect("/account")
}
