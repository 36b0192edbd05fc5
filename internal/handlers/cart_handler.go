package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/swaupd/OsBlogApp/internal/catalog"
	"github.com/swaupd/OsBlogApp/internal/services"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Patch("/:productId/quantity", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:productId", h.HandleRemoveItem)
}

// HandleGetCart returns the current cart with its derived summary.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.cartService.Items()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":   items,
		"summary": h.cartService.Summarize(items),
	})
}

// AddItemRequest represents the request body for adding a product to the
// cart. Quantity defaults to 1.
type AddItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleAddItem adds a catalog product to the cart, merging with an existing
// line item for the same product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid productId is required",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %d not found", req.ProductID),
		})
	}

	items, err := h.cartService.AddItem(product, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%s added to cart!", product.Name),
		"items":   items,
		"summary": h.cartService.Summarize(items),
	})
}

// UpdateQuantityRequest represents the request body for a quantity change.
// Delta may be negative; driving a quantity to zero or below removes the
// line item.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// HandleUpdateQuantity applies a quantity delta to one line item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be a number",
		})
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A non-zero delta is required",
			"error":   err.Error(),
		})
	}

	items, err := h.cartService.UpdateQuantity(productID, req.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":   items,
		"summary": h.cartService.Summarize(items),
	})
}

// HandleRemoveItem removes one line item from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be a number",
		})
	}

	items, err := h.cartService.RemoveItem(productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":   items,
		"summary": h.cartService.Summarize(items),
	})
}
