package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/swaupd/OsBlogApp/internal/catalog"
)

// CatalogHandler serves the static reference data: the OS blog entries and
// the shop products.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/os", h.HandleListOS)
	router.Get("/os/:slug", h.HandleGetOS)
	router.Get("/products", h.HandleListProducts)
}

// HandleListOS returns all operating system entries.
func (h *CatalogHandler) HandleListOS(c *fiber.Ctx) error {
	return c.JSON(catalog.OperatingSystems())
}

// HandleGetOS returns one operating system entry by slug.
func (h *CatalogHandler) HandleGetOS(c *fiber.Ctx) error {
	slug := c.Params("slug")
	os, ok := catalog.OSBySlug(slug)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No entry for operating system %q", slug),
		})
	}
	return c.JSON(os)
}

// HandleListProducts returns the shop catalog.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	return c.JSON(catalog.Products())
}
