package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopwave/internal/catalog"
	applog "shopwave/internal/log"
	"shopwave/internal/store"
	"shopwave/internal/validate"
)

type CartHandler struct {
	Cart *store.CartStore
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{
		"Items":      h.Cart.Items(),
		"TotalItems": h.Cart.TotalItems(),
		"Subtotal":   h.Cart.Subtotal(),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, ok := catalog.ProductByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	// Stock clamp lives here; the store itself enforces no cap.
	qty := validate.Qty(c.FormValue("qty"), p.Stock)
	h.Cart.AddItem(p, qty)
	applog.Info(c, "cart.add", map[string]any{"product": p.ID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	max := 0
	if p, ok := catalog.ProductByID(id); ok {
		max = p.Stock
	}
	qty := validate.Qty(c.FormValue("qty"), max)
	h.Cart.UpdateQuantity(id, qty)
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Cart.RemoveItem(id)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.ClearCart()
	return c.Redirect("/cart")
}
