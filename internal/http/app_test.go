package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"shopwave/internal/config"
	"shopwave/internal/http/handlers"
	"shopwave/internal/storage"
	"shopwave/internal/store"
)

// newApp builds the route surface of the real app over in-memory stores,
// without the rate-limit/csrf middleware so tests exercise handler logic.
func newApp(t *testing.T) (*fiber.App, *store.CartStore, *store.AuthStore) {
	t.Helper()
	records, err := storage.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	cart := store.NewCartStore(records, store.NotifierFunc(func(store.Notification) {}))
	auth := store.NewAuthStore(records, store.NotifierFunc(func(store.Notification) {}), 0)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(func(c *fiber.Ctx) error {
		if u := auth.User(); u != nil {
			c.Locals("user", u)
		}
		c.Locals("cartCount", cart.TotalItems())
		return c.Next()
	})

	deps := handlers.NewDeps(cart, auth, config.Config{})
	app.Get("/", deps.ProductHandler.Home)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Get("/checkout", handlers.RequireUser(auth), deps.CheckoutHandler.Form)
	app.Post("/checkout", handlers.RequireUser(auth), deps.CheckoutHandler.Place)
	app.Get("/account", handlers.RequireUser(auth), deps.AccountHandler.Account)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	return app, cart, auth
}

func postForm(app *fiber.App, path string, form url.Values) (*http.Response, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return app.Test(req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
