package store_test

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/store"
)

func TestMain(m *testing.M) {
	// The store logs degraded reads; keep test output clean.
	log.SetOutput(os.Stdout)
	os.Exit(m.Run())
}

// newSQLiteStore opens a GORMStore on a throwaway database file.
func newSQLiteStore(t *testing.T) *store.GORMStore {
	t.Helper()
	kv, err := store.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	return kv
}

func TestGORMStore_RoundTrip(t *testing.T) {
	kv := newSQLiteStore(t)

	users := []models.User{
		{ID: "u-1", Username: "alice", Email: "alice@example.com", Password: "secret1"},
		{ID: "u-2", Username: "bob", Email: "bob@example.com", Password: "secret2"},
	}
	assert.NoError(t, kv.Set(store.UsersKey, users))

	var got []models.User
	found, err := kv.Get(store.UsersKey, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, users, got)
}

func TestGORMStore_SetReplacesWholeValue(t *testing.T) {
	kv := newSQLiteStore(t)

	assert.NoError(t, kv.Set(store.CartKey, []models.CartItem{
		{ProductID: 1, Name: "Windows 11 Pro License", Price: 199.99, Quantity: 1},
		{ProductID: 4, Name: "Multi-OS USB Boot Drive", Price: 39.99, Quantity: 2},
	}))
	assert.NoError(t, kv.Set(store.CartKey, []models.CartItem{}))

	var got []models.CartItem
	found, err := kv.Get(store.CartKey, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestGORMStore_GetAbsentKey(t *testing.T) {
	kv := newSQLiteStore(t)

	var got []models.User
	found, err := kv.Get(store.UsersKey, &got)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestBootstrap_Idempotent(t *testing.T) {
	kv := newSQLiteStore(t)

	assert.NoError(t, store.Bootstrap(kv))
	assert.NoError(t, store.Bootstrap(kv))

	var users []models.User
	found, err := kv.Get(store.UsersKey, &users)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, users)

	var cart []models.CartItem
	found, err = kv.Get(store.CartKey, &cart)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, cart)
}

func TestBootstrap_DoesNotClobberExistingData(t *testing.T) {
	kv := newSQLiteStore(t)
	assert.NoError(t, store.Bootstrap(kv))

	users := []models.User{{ID: "u-1", Username: "alice", Email: "alice@example.com", Password: "secret1"}}
	assert.NoError(t, kv.Set(store.UsersKey, users))

	assert.NoError(t, store.Bootstrap(kv))

	var got []models.User
	found, err := kv.Get(store.UsersKey, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, users, got)
}

func TestMockStore_RoundTrip(t *testing.T) {
	kv := store.NewMockStore()

	cart := []models.CartItem{{ProductID: 3, Name: "Linux Administration Course", Price: 149.99, Quantity: 1}}
	assert.NoError(t, kv.Set(store.CartKey, cart))

	var got []models.CartItem
	found, err := kv.Get(store.CartKey, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cart, got)
}

func TestMockStore_SimulatedFailures(t *testing.T) {
	kv := store.NewMockStore()
	assert.NoError(t, kv.Set(store.CartKey, []models.CartItem{{ProductID: 1, Quantity: 1}}))

	// A failed write surfaces an error and leaves the old value in place.
	kv.FailSet = true
	assert.Error(t, kv.Set(store.CartKey, []models.CartItem{}))
	kv.FailSet = false

	var got []models.CartItem
	found, err := kv.Get(store.CartKey, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, got, 1)

	// A failed read degrades to absent, even though the value is there.
	kv.FailGet = true
	found, err = kv.Get(store.CartKey, &got)
	assert.NoError(t, err)
	assert.False(t, found)
}
