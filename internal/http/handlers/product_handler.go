package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopwave/internal/catalog"
	"shopwave/internal/validate"
)

type ProductHandler struct{}

func (h *ProductHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Featured":   catalog.Featured(),
		"Categories": catalog.Categories,
	})
}

// List renders the product grid for the criteria carried in the query
// string: category, q, min, max, sort.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	crit := catalog.DefaultCriteria()
	crit.MaxPrice = catalog.MaxPrice()

	if cat := c.Query("category"); cat != "" {
		if _, ok := catalog.CategoryByID(cat); ok {
			crit.Category = cat
		}
	}
	crit.SearchText = validate.Q(c.Query("q"))
	crit.MinPrice = validate.Price(c.Query("min"), crit.MinPrice)
	crit.MaxPrice = validate.Price(c.Query("max"), crit.MaxPrice)
	if s := c.Query("sort"); catalog.ValidSortKey(s) {
		crit.SortKey = s
	}

	products := catalog.FilterAndSort(catalog.Products, crit)

	title := "All Products"
	if cat, ok := catalog.CategoryByID(crit.Category); ok && cat.ID != "all" {
		title = cat.Name
	}
	return render(c, "products", fiber.Map{
		"Title":      title,
		"Products":   products,
		"Categories": catalog.Categories,
		"Criteria":   crit,
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, ok := catalog.ProductByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"Product": p})
}
