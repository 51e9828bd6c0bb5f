package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopwave/internal/store"
)

// RequireUser redirects to the login page (with a return target) when no
// session is active.
func RequireUser(auth *store.AuthStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := auth.User()
		if u == nil {
			return c.Redirect("/login?redirect=" + c.Path())
		}
		c.Locals("user", u)
		return c.Next()
	}
}
