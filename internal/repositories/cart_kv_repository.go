package repositories

import (
	"github.com/swaupd/OsBlogApp/internal/apperrors"
	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/store"
)

// KVCartRepository keeps the cart line item sequence under the store's cart
// key, rewritten wholesale on every save.
type KVCartRepository struct {
	kv store.KVStore
}

// NewKVCartRepository creates a new instance of KVCartRepository.
func NewKVCartRepository(kv store.KVStore) *KVCartRepository {
	return &KVCartRepository{kv: kv}
}

// Load reads the persisted cart. An absent key reads as an empty sequence.
func (r *KVCartRepository) Load() ([]models.CartItem, error) {
	var items []models.CartItem
	if _, err := r.kv.Get(store.CartKey, &items); err != nil {
		return nil, &apperrors.StorageError{Op: "get", Key: store.CartKey, Err: err}
	}
	return items, nil
}

// Save replaces the persisted cart with items.
func (r *KVCartRepository) Save(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	if err := r.kv.Set(store.CartKey, items); err != nil {
		return &apperrors.StorageError{Op: "set", Key: store.CartKey, Err: err}
	}
	return nil
}

// Clear persists an empty sequence.
func (r *KVCartRepository) Clear() error {
	return r.Save(nil)
}
