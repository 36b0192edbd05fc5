package services

import (
	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/repositories"
)

// taxRate is applied to the subtotal in summaries. Shipping is free.
const taxRate = 0.07

// CartService handles cart business logic. Every mutation re-reads the full
// persisted sequence first, so a change made from another screen between
// operations is always picked up.
type CartService struct {
	cart repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cart repositories.CartRepository) *CartService {
	return &CartService{cart: cart}
}

// Items returns the current persisted cart.
func (s *CartService) Items() ([]models.CartItem, error) {
	return s.cart.Load()
}

// AddItem merges quantity into the existing line item for the product, or
// appends a new line item carrying a snapshot of the product's display fields.
// The snapshot is what the cart shows from then on, regardless of later
// catalog prices.
func (s *CartService) AddItem(product models.Product, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	items, err := s.cart.Load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Image:       product.Image,
			Description: product.Description,
			Quantity:    quantity,
		})
	}

	if err := s.cart.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity applies delta to the matching line item's quantity. A result
// of zero or less removes the line item entirely. An unknown product id leaves
// the cart untouched.
func (s *CartService) UpdateQuantity(productID, delta int) ([]models.CartItem, error) {
	items, err := s.cart.Load()
	if err != nil {
		return nil, err
	}

	found := false
	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			if q := item.Quantity + delta; q > 0 {
				item.Quantity = q
				next = append(next, item)
			}
			continue
		}
		next = append(next, item)
	}
	if !found {
		return items, nil
	}

	if err := s.cart.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// RemoveItem filters the line item with the matching product id out of the
// sequence.
func (s *CartService) RemoveItem(productID int) ([]models.CartItem, error) {
	items, err := s.cart.Load()
	if err != nil {
		return nil, err
	}

	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}

	if err := s.cart.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Total is the sum of price times quantity over items. No stored aggregate is
// authoritative; this is always recomputed.
func (s *CartService) Total(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Summarize derives the display totals for items: subtotal, 7% tax, free
// shipping, grand total.
func (s *CartService) Summarize(items []models.CartItem) models.CartSummary {
	subtotal := s.Total(items)
	tax := subtotal * taxRate
	return models.CartSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: 0,
		Total:    subtotal + tax,
	}
}

// Clear persists an empty cart. Used by checkout when an order commits.
func (s *CartService) Clear() error {
	return s.cart.Clear()
}
