package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopwave/internal/catalog"
	"shopwave/internal/store"
)

type AccountHandler struct {
	Auth *store.AuthStore
}

// Account shows the signed-in user and their order history. Orders are
// static sample data; there is no order placement pipeline.
func (h *AccountHandler) Account(c *fiber.Ctx) error {
	return render(c, "account", fiber.Map{
		"Orders": catalog.SampleOrders,
	})
}
