package handlers

import "github.com/gofiber/fiber/v2"

// render wraps c.Render, injecting the values every page needs: the signed
// in user, the cart badge count, and the CSRF token for forms.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if n := c.Locals("cartCount"); n != nil {
		data["CartCount"] = n
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
