package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/services"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	cartService     *services.CartService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService, cartService *services.CartService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleBegin)
	checkoutRoutes.Post("/", h.HandleSubmit)
}

// HandleBegin enters the checkout flow, returning the order summary the form
// is shown against. An empty cart refuses entry and redirects to the cart.
func (h *CheckoutHandler) HandleBegin(c *fiber.Ctx) error {
	items, err := h.checkoutService.Begin()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":   items,
		"summary": h.cartService.Summarize(items),
	})
}

// HandleSubmit submits the shipping/payment form. On success the cart is
// cleared and the order confirmation is returned; on a validation failure
// the client keeps the form for correction.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	var form models.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing checkout form body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	confirmation, err := h.checkoutService.Submit(form)
	if err != nil {
		return writeError(c, err)
	}

	log.Printf("Order %s placed for %.2f", confirmation.ID, confirmation.Summary.Total)
	return c.JSON(fiber.Map{
		"message": "Order placed successfully! Thank you for your purchase.",
		"order":   confirmation,
	})
}
