package repositories

import "github.com/swaupd/OsBlogApp/internal/models"

// CartRepository defines the interface for cart data access. Callers re-read
// the full sequence before each mutation and save the whole result; the
// repository never caches an authoritative copy.
type CartRepository interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
	Clear() error
}
