package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swaupd/OsBlogApp/internal/apperrors"
	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/repositories"
	"github.com/swaupd/OsBlogApp/internal/services"
	"github.com/swaupd/OsBlogApp/internal/store"
)

func newCartService() (*services.CartService, *store.MockStore) {
	kv := store.NewMockStore()
	return services.NewCartService(repositories.NewKVCartRepository(kv)), kv
}

var (
	winLicense = models.Product{ID: 1, Name: "Windows 11 Pro License", Price: 199.99, Image: "assets/windows-image.jpg", Description: "Official Windows 11 Pro license key for one PC."}
	usbDrive   = models.Product{ID: 4, Name: "Multi-OS USB Boot Drive", Price: 39.99, Image: "assets/usb.png", Description: "32GB USB drive pre-configured for booting multiple operating systems."}
)

func TestCartService_AddItemMergesByProductID(t *testing.T) {
	cartService, _ := newCartService()

	_, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)
	_, err = cartService.AddItem(winLicense, 2)
	assert.NoError(t, err)
	items, err := cartService.AddItem(usbDrive, 1)
	assert.NoError(t, err)

	// One line item per distinct product id, quantity is the sum of adds.
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 4, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartService_AddItemSnapshotsProductFields(t *testing.T) {
	cartService, _ := newCartService()

	_, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)

	// A later catalog price change must not touch the line item.
	repriced := winLicense
	repriced.Price = 249.99
	items, err := cartService.AddItem(repriced, 1)
	assert.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 199.99, items[0].Price, 0.001)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartService, _ := newCartService()
	_, err := cartService.AddItem(winLicense, 2)
	assert.NoError(t, err)
	_, err = cartService.AddItem(usbDrive, 1)
	assert.NoError(t, err)

	items, err := cartService.UpdateQuantity(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)
	// The other line item is untouched.
	assert.Equal(t, 1, items[1].Quantity)

	items, err = cartService.UpdateQuantity(1, -4)
	assert.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)

	// Driving the quantity to zero removes the line item entirely.
	items, err = cartService.UpdateQuantity(1, -1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 4, items[0].ProductID)
}

func TestCartService_UpdateQuantityUnknownProduct(t *testing.T) {
	cartService, _ := newCartService()
	before, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)

	items, err := cartService.UpdateQuantity(99, -1)
	assert.NoError(t, err)
	assert.Equal(t, before, items)
}

func TestCartService_SingleItemReducedToZeroEmptiesCart(t *testing.T) {
	cartService, _ := newCartService()
	_, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)

	items, err := cartService.UpdateQuantity(1, -1)
	assert.NoError(t, err)
	assert.Empty(t, items)

	// The empty sequence is what got persisted, too.
	items, err = cartService.Items()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, _ := newCartService()
	_, err := cartService.AddItem(winLicense, 2)
	assert.NoError(t, err)
	_, err = cartService.AddItem(usbDrive, 1)
	assert.NoError(t, err)

	items, err := cartService.RemoveItem(1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 4, items[0].ProductID)
}

func TestCartService_TotalAndSummary(t *testing.T) {
	cartService, _ := newCartService()
	_, err := cartService.AddItem(winLicense, 2) // 399.98
	assert.NoError(t, err)
	items, err := cartService.AddItem(usbDrive, 3) // 119.97
	assert.NoError(t, err)

	subtotal := cartService.Total(items)
	assert.InDelta(t, 519.95, subtotal, 0.001)

	summary := cartService.Summarize(items)
	assert.InDelta(t, subtotal, summary.Subtotal, 0.001)
	assert.InDelta(t, subtotal*0.07, summary.Tax, 0.001)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.InDelta(t, subtotal*1.07, summary.Total, 0.001)

	assert.Equal(t, 0.0, cartService.Total(nil))
}

func TestCartService_Clear(t *testing.T) {
	cartService, _ := newCartService()
	_, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)

	assert.NoError(t, cartService.Clear())

	items, err := cartService.Items()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_AddItemStorageFailure(t *testing.T) {
	cartService, kv := newCartService()
	_, err := cartService.AddItem(winLicense, 1)
	assert.NoError(t, err)

	kv.FailSet = true
	_, err = cartService.AddItem(usbDrive, 1)
	var serr *apperrors.StorageError
	assert.True(t, errors.As(err, &serr))
	kv.FailSet = false

	// The failed write left the persisted cart as it was.
	items, err := cartService.Items()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
}
