package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopwave/internal/log"
	"shopwave/internal/store"
)

type AuthHandler struct {
	Auth *store.AuthStore
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")

	ok, err := h.Auth.Login(c.Context(), email, pass)
	if err != nil {
		// Client went away mid-delay; nothing to render.
		applog.Warn(c, "auth.login.cancelled", nil)
		return nil
	}
	if !ok {
		applog.Warn(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err": "Please enter both email and password",
		})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect(redirectTarget(c))
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	pass := c.FormValue("password")

	ok, err := h.Auth.Register(c.Context(), name, email, pass)
	if err != nil {
		applog.Warn(c, "auth.register.cancelled", nil)
		return nil
	}
	if !ok {
		applog.Warn(c, "auth.register.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
			"Err": "Please fill in all fields",
		})
	}
	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect(redirectTarget(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout()
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

// redirectTarget honors a same-site ?redirect=/path after login/register.
func redirectTarget(c *fiber.Ctx) string {
	to := c.Query("redirect")
	if to == "" || to[0] != '/' {
		return "/"
	}
	return to
}
